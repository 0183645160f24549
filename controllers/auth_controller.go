package controller

import (
	"errors"
	"log"

	"github.com/badoux/checkmail"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"teampulse/models"
	"teampulse/utils"
)

type AuthController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewAuthController(db *gorm.DB, logger *log.Logger) *AuthController {
	return &AuthController{
		DB:     db,
		Logger: logger,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=Manager Employee"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Role  string       `json:"role"`
	User  *models.User `json:"user"`
}

// Register creates an account. Email must be unused; the password is stored
// only as a bcrypt hash.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := checkmail.ValidateFormat(req.Email); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email address", err)
	}

	// Check if the email is already registered
	var existingUser models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Email address already in use", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalError(c, "Failed to hash password", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleEmployee
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.InternalError(c, "Failed to create user", err)
	}

	ac.Logger.Printf("registered user %d (%s)", user.ID, user.Role)

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(&user))
}

// Login verifies credentials and returns a signed token carrying the
// caller's id and role. A missing account and a wrong password produce the
// same response.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	var user models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password", nil)
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		return utils.InternalError(c, "Failed to generate token", err)
	}

	return c.JSON(LoginResponse{
		Token: token,
		Role:  user.Role,
		User:  &user,
	})
}

// GetUsers lists accounts, optionally filtered by role.
func (ac *AuthController) GetUsers(c *fiber.Ctx) error {
	query := ac.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch users", err)
	}

	return c.JSON(utils.SuccessResponse(users))
}

// GetUser returns a single account by id.
func (ac *AuthController) GetUser(c *fiber.Ctx) error {
	var user models.User
	if err := ac.DB.First(&user, utils.ParseUint(c.Params("id"))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", nil)
		}
		return utils.InternalError(c, "Failed to fetch user", err)
	}

	return c.JSON(utils.SuccessResponse(&user))
}

// GetCurrentUser echoes the authenticated account.
func (ac *AuthController) GetCurrentUser(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.JSON(utils.SuccessResponse(user))
}
