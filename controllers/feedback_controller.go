package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"teampulse/models"
	"teampulse/utils"
)

type FeedbackController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewFeedbackController(db *gorm.DB, logger *log.Logger) *FeedbackController {
	return &FeedbackController{
		DB:     db,
		Logger: logger,
	}
}

type SubmitFeedbackRequest struct {
	EmployeeID   uint   `json:"employee_id" validate:"required"`
	ManagerID    uint   `json:"manager_id" validate:"required"`
	Strengths    string `json:"strengths" validate:"required"`
	Improvements string `json:"improvements" validate:"required"`
	Sentiment    string `json:"sentiment" validate:"required,oneof=positive neutral negative"`
}

type EditFeedbackRequest struct {
	Strengths    *string `json:"strengths"`
	Improvements *string `json:"improvements"`
	Sentiment    *string `json:"sentiment" validate:"omitempty,oneof=positive neutral negative"`
}

type AcknowledgeRequest struct {
	FeedbackID uint `json:"feedback_id" validate:"required"`
	EmployeeID uint `json:"employee_id" validate:"required"`
}

// EmployeeFeedbackItem is a feedback row as seen by the receiving employee,
// with the author's name and the acknowledged flag joined in.
type EmployeeFeedbackItem struct {
	ID           uint      `json:"id"`
	ManagerID    uint      `json:"manager_id"`
	ManagerName  string    `json:"manager_name"`
	Strengths    string    `json:"strengths"`
	Improvements string    `json:"improvements"`
	Sentiment    string    `json:"sentiment"`
	CreatedAt    time.Time `json:"timestamp"`
	Acknowledged bool      `json:"acknowledged" gorm:"-"`
}

// ManagerFeedbackItem is a feedback row as seen by its author.
type ManagerFeedbackItem struct {
	ID           uint      `json:"id"`
	EmployeeID   uint      `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Strengths    string    `json:"strengths"`
	Improvements string    `json:"improvements"`
	Sentiment    string    `json:"sentiment"`
	CreatedAt    time.Time `json:"timestamp"`
}

type userInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type FeedbackDetail struct {
	ID           uint      `json:"id"`
	EmployeeID   uint      `json:"employee_id"`
	ManagerID    uint      `json:"manager_id"`
	Strengths    string    `json:"strengths"`
	Improvements string    `json:"improvements"`
	Sentiment    string    `json:"sentiment"`
	CreatedAt    time.Time `json:"timestamp"`
	Employee     userInfo  `json:"employee"`
	Manager      userInfo  `json:"manager"`
}

// SubmitFeedback creates a feedback entry. The store assigns the timestamp.
func (fc *FeedbackController) SubmitFeedback(c *fiber.Ctx) error {
	var req SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	feedback := models.Feedback{
		EmployeeID:   req.EmployeeID,
		ManagerID:    req.ManagerID,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Sentiment:    req.Sentiment,
	}

	if err := fc.DB.Create(&feedback).Error; err != nil {
		return utils.InternalError(c, "Failed to submit feedback", err)
	}

	fc.Logger.Printf("feedback %d submitted for employee %d", feedback.ID, feedback.EmployeeID)

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(&feedback))
}

// EditFeedback overwrites only the fields present in the request; absent
// fields keep their stored values. The creation timestamp never changes.
func (fc *FeedbackController) EditFeedback(c *fiber.Ctx) error {
	var req EditFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	var feedback models.Feedback
	if err := fc.DB.First(&feedback, utils.ParseUint(c.Params("id"))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Feedback not found", nil)
		}
		return utils.InternalError(c, "Failed to fetch feedback", err)
	}

	if req.Strengths != nil {
		feedback.Strengths = *req.Strengths
	}
	if req.Improvements != nil {
		feedback.Improvements = *req.Improvements
	}
	if req.Sentiment != nil {
		feedback.Sentiment = *req.Sentiment
	}

	if err := fc.DB.Save(&feedback).Error; err != nil {
		return utils.InternalError(c, "Failed to update feedback", err)
	}

	return c.JSON(utils.SuccessResponse(&feedback))
}

// DeleteFeedback removes a feedback entry together with its comments,
// acknowledgements and tags in one transaction, so no dependents dangle.
func (fc *FeedbackController) DeleteFeedback(c *fiber.Ctx) error {
	id := utils.ParseUint(c.Params("id"))

	var feedback models.Feedback
	if err := fc.DB.First(&feedback, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Feedback not found", nil)
		}
		return utils.InternalError(c, "Failed to fetch feedback", err)
	}

	err := fc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feedback_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("feedback_id = ?", id).Delete(&models.Acknowledgement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("feedback_id = ?", id).Delete(&models.Tag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&feedback).Error
	})
	if err != nil {
		return utils.InternalError(c, "Failed to delete feedback", err)
	}

	fc.Logger.Printf("feedback %d deleted", id)

	return c.JSON(fiber.Map{"success": true, "message": "Feedback deleted successfully"})
}

// GetFeedback returns one entry with employee and manager display info.
func (fc *FeedbackController) GetFeedback(c *fiber.Ctx) error {
	var feedback models.Feedback
	if err := fc.DB.First(&feedback, utils.ParseUint(c.Params("id"))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Feedback not found", nil)
		}
		return utils.InternalError(c, "Failed to fetch feedback", err)
	}

	var employee, manager models.User
	if err := fc.DB.First(&employee, feedback.EmployeeID).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch employee", err)
	}
	if err := fc.DB.First(&manager, feedback.ManagerID).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch manager", err)
	}

	return c.JSON(utils.SuccessResponse(FeedbackDetail{
		ID:           feedback.ID,
		EmployeeID:   feedback.EmployeeID,
		ManagerID:    feedback.ManagerID,
		Strengths:    feedback.Strengths,
		Improvements: feedback.Improvements,
		Sentiment:    feedback.Sentiment,
		CreatedAt:    feedback.CreatedAt,
		Employee:     userInfo{Name: employee.Name, Email: employee.Email},
		Manager:      userInfo{Name: manager.Name, Email: manager.Email},
	}))
}

// ListEmployeeFeedback returns an employee's feedback, newest first. Each
// row carries the manager's name and whether the employee has acknowledged
// it (at least one acknowledgement row, counted once).
func (fc *FeedbackController) ListEmployeeFeedback(c *fiber.Ctx) error {
	employeeID := utils.ParseUint(c.Params("employeeID"))

	var items []EmployeeFeedbackItem
	if err := fc.DB.Model(&models.Feedback{}).
		Select("feedbacks.id, feedbacks.manager_id, feedbacks.strengths, feedbacks.improvements, feedbacks.sentiment, feedbacks.created_at, users.name AS manager_name").
		Joins("JOIN users ON users.id = feedbacks.manager_id").
		Where("feedbacks.employee_id = ?", employeeID).
		Order("feedbacks.created_at DESC").
		Scan(&items).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch feedback", err)
	}

	var acks []models.Acknowledgement
	if err := fc.DB.Where("employee_id = ?", employeeID).Find(&acks).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch acknowledgements", err)
	}

	acknowledged := make(map[uint]bool, len(acks))
	for _, ack := range acks {
		acknowledged[ack.FeedbackID] = true
	}
	for i := range items {
		items[i].Acknowledged = acknowledged[items[i].ID]
	}

	return c.JSON(utils.SuccessResponse(items))
}

// ListManagerFeedback returns the entries a manager authored, newest first,
// with the employee's name joined in.
func (fc *FeedbackController) ListManagerFeedback(c *fiber.Ctx) error {
	managerID := utils.ParseUint(c.Params("managerID"))

	var items []ManagerFeedbackItem
	if err := fc.DB.Model(&models.Feedback{}).
		Select("feedbacks.id, feedbacks.employee_id, feedbacks.strengths, feedbacks.improvements, feedbacks.sentiment, feedbacks.created_at, users.name AS employee_name").
		Joins("JOIN users ON users.id = feedbacks.employee_id").
		Where("feedbacks.manager_id = ?", managerID).
		Order("feedbacks.created_at DESC").
		Scan(&items).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch feedback", err)
	}

	return c.JSON(utils.SuccessResponse(items))
}

// Acknowledge appends an acknowledgement row. No duplicate guard; repeated
// acknowledgements of the same entry are stored as-is.
func (fc *FeedbackController) Acknowledge(c *fiber.Ctx) error {
	var req AcknowledgeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	ack := models.Acknowledgement{
		FeedbackID: req.FeedbackID,
		EmployeeID: req.EmployeeID,
	}
	if err := fc.DB.Create(&ack).Error; err != nil {
		return utils.InternalError(c, "Failed to acknowledge feedback", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(&ack))
}

// GetAcknowledgements lists the acknowledgement rows for one entry.
func (fc *FeedbackController) GetAcknowledgements(c *fiber.Ctx) error {
	var acks []models.Acknowledgement
	if err := fc.DB.Where("feedback_id = ?", utils.ParseUint(c.Params("feedbackID"))).
		Find(&acks).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch acknowledgements", err)
	}

	return c.JSON(utils.SuccessResponse(acks))
}
