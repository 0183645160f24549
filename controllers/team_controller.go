package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"teampulse/models"
	"teampulse/utils"
)

type TeamController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewTeamController(db *gorm.DB, logger *log.Logger) *TeamController {
	return &TeamController{
		DB:     db,
		Logger: logger,
	}
}

type TeamMemberRequest struct {
	ManagerID  uint `json:"manager_id" validate:"required"`
	EmployeeID uint `json:"employee_id" validate:"required"`
}

// AddTeamMember creates a managership edge. The exact pair must not exist
// yet; the ids themselves are not cross-checked against roles.
func (tc *TeamController) AddTeamMember(c *fiber.Ctx) error {
	var req TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	var existing models.Team
	if err := tc.DB.Where("manager_id = ? AND employee_id = ?", req.ManagerID, req.EmployeeID).
		First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "This team member relationship already exists", nil)
	}

	edge := models.Team{
		ManagerID:  req.ManagerID,
		EmployeeID: req.EmployeeID,
	}
	if err := tc.DB.Create(&edge).Error; err != nil {
		return utils.InternalError(c, "Failed to add team member", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(&edge))
}

// RemoveTeamMember deletes the managership edge for the given pair.
func (tc *TeamController) RemoveTeamMember(c *fiber.Ctx) error {
	var req TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	var edge models.Team
	if err := tc.DB.Where("manager_id = ? AND employee_id = ?", req.ManagerID, req.EmployeeID).
		First(&edge).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Team member relationship not found", nil)
	}

	if err := tc.DB.Delete(&edge).Error; err != nil {
		return utils.InternalError(c, "Failed to remove team member", err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Team member removed successfully"})
}

// GetTeam returns the users on the employee end of a manager's edges.
func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	managerID := utils.ParseUint(c.Params("managerID"))

	var members []models.User
	if err := tc.DB.
		Joins("JOIN teams ON teams.employee_id = users.id AND teams.deleted_at IS NULL").
		Where("teams.manager_id = ?", managerID).
		Find(&members).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch team", err)
	}

	return c.JSON(utils.SuccessResponse(members))
}

// GetAvailableMembers returns the candidates a manager could still add:
// every non-Manager user minus those already on the team.
func (tc *TeamController) GetAvailableMembers(c *fiber.Ctx) error {
	managerID := utils.ParseUint(c.Params("managerID"))

	onTeam := tc.DB.Model(&models.Team{}).
		Select("employee_id").
		Where("manager_id = ?", managerID)

	var available []models.User
	if err := tc.DB.
		Where("role <> ?", models.RoleManager).
		Where("id NOT IN (?)", onTeam).
		Find(&available).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch available members", err)
	}

	return c.JSON(utils.SuccessResponse(available))
}
