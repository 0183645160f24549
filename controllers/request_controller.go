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

type RequestController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewRequestController(db *gorm.DB, logger *log.Logger) *RequestController {
	return &RequestController{
		DB:     db,
		Logger: logger,
	}
}

type CreateRequestRequest struct {
	RequesterID     uint   `json:"requester_id" validate:"required"`
	TargetManagerID uint   `json:"target_manager_id" validate:"required"`
	Message         string `json:"message"`
	IsAnonymous     bool   `json:"is_anonymous"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved declined"`
}

// ManagerRequestItem is a request as the target manager sees it. The
// requester name is blanked to the anonymous label when applicable.
type ManagerRequestItem struct {
	ID              uint      `json:"id"`
	RequesterID     uint      `json:"requester_id"`
	RequesterName   string    `json:"requester_name"`
	TargetManagerID uint      `json:"target_manager_id"`
	Message         string    `json:"message"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"timestamp"`
	IsAnonymous     bool      `json:"is_anonymous"`
}

// EmployeeRequestItem is a request as its author sees it. The manager name
// is always visible; anonymity only hides the requester from the manager.
type EmployeeRequestItem struct {
	ID              uint      `json:"id"`
	TargetManagerID uint      `json:"target_manager_id"`
	ManagerName     string    `json:"manager_name"`
	Message         string    `json:"message"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"timestamp"`
	IsAnonymous     bool      `json:"is_anonymous"`
}

// CreateRequest files a feedback request; it starts in the pending state.
func (rc *RequestController) CreateRequest(c *fiber.Ctx) error {
	var req CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	request := models.FeedbackRequest{
		RequesterID:     req.RequesterID,
		TargetManagerID: req.TargetManagerID,
		Message:         req.Message,
		Status:          models.RequestStatusPending,
		IsAnonymous:     req.IsAnonymous,
	}
	if err := rc.DB.Create(&request).Error; err != nil {
		return utils.InternalError(c, "Failed to send feedback request", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(&request))
}

// UpdateRequestStatus settles a request. Only approved and declined are
// valid targets; pending cannot be re-entered.
func (rc *RequestController) UpdateRequestStatus(c *fiber.Ctx) error {
	var req UpdateRequestStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	var request models.FeedbackRequest
	if err := rc.DB.First(&request, utils.ParseUint(c.Params("id"))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Feedback request not found", nil)
		}
		return utils.InternalError(c, "Failed to fetch feedback request", err)
	}

	request.Status = req.Status
	if err := rc.DB.Save(&request).Error; err != nil {
		return utils.InternalError(c, "Failed to update feedback request", err)
	}

	rc.Logger.Printf("feedback request %d %s", request.ID, request.Status)

	return c.JSON(utils.SuccessResponse(&request))
}

// ListManagerRequests returns the requests targeting a manager, newest
// first, anonymizing the requester where asked.
func (rc *RequestController) ListManagerRequests(c *fiber.Ctx) error {
	managerID := utils.ParseUint(c.Params("managerID"))

	var items []ManagerRequestItem
	if err := rc.DB.Model(&models.FeedbackRequest{}).
		Select("feedback_requests.id, feedback_requests.requester_id, feedback_requests.target_manager_id, feedback_requests.message, feedback_requests.status, feedback_requests.created_at, feedback_requests.is_anonymous, users.name AS requester_name").
		Joins("JOIN users ON users.id = feedback_requests.requester_id").
		Where("feedback_requests.target_manager_id = ?", managerID).
		Order("feedback_requests.created_at DESC").
		Scan(&items).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch feedback requests", err)
	}

	for i := range items {
		if items[i].IsAnonymous {
			items[i].RequesterName = models.AnonymousLabel
		}
	}

	return c.JSON(utils.SuccessResponse(items))
}

// ListEmployeeRequests returns the requests an employee has filed, newest
// first, with the target manager's name joined in.
func (rc *RequestController) ListEmployeeRequests(c *fiber.Ctx) error {
	employeeID := utils.ParseUint(c.Params("employeeID"))

	var items []EmployeeRequestItem
	if err := rc.DB.Model(&models.FeedbackRequest{}).
		Select("feedback_requests.id, feedback_requests.target_manager_id, feedback_requests.message, feedback_requests.status, feedback_requests.created_at, feedback_requests.is_anonymous, users.name AS manager_name").
		Joins("JOIN users ON users.id = feedback_requests.target_manager_id").
		Where("feedback_requests.requester_id = ?", employeeID).
		Order("feedback_requests.created_at DESC").
		Scan(&items).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch feedback requests", err)
	}

	return c.JSON(utils.SuccessResponse(items))
}
