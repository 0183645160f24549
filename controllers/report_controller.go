package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"teampulse/models"
	"teampulse/utils"
)

type ReportController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewReportController(db *gorm.DB, logger *log.Logger) *ReportController {
	return &ReportController{
		DB:     db,
		Logger: logger,
	}
}

// ExportFeedback renders one feedback entry as a PDF attachment.
func (rc *ReportController) ExportFeedback(c *fiber.Ctx) error {
	var feedback models.Feedback
	if err := rc.DB.First(&feedback, utils.ParseUint(c.Params("id"))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Feedback not found", nil)
		}
		return utils.InternalError(c, "Failed to fetch feedback", err)
	}

	var employee, manager models.User
	if err := rc.DB.First(&employee, feedback.EmployeeID).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch employee", err)
	}
	if err := rc.DB.First(&manager, feedback.ManagerID).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch manager", err)
	}

	report := utils.FeedbackReport{
		FeedbackID:   feedback.ID,
		EmployeeName: employee.Name,
		ManagerName:  manager.Name,
		SubmittedAt:  feedback.CreatedAt,
		Strengths:    feedback.Strengths,
		Improvements: feedback.Improvements,
	}

	payload, err := utils.BuildFeedbackReport(report)
	if err != nil {
		return utils.InternalError(c, "Failed to render report", err)
	}

	rc.Logger.Printf("exported feedback %d (%d bytes)", feedback.ID, len(payload))

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", report.Filename()))
	return c.Send(payload)
}
