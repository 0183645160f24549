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

type CommentController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewCommentController(db *gorm.DB, logger *log.Logger) *CommentController {
	return &CommentController{
		DB:     db,
		Logger: logger,
	}
}

type AddCommentRequest struct {
	FeedbackID uint   `json:"feedback_id" validate:"required"`
	UserID     uint   `json:"user_id" validate:"required"`
	Text       string `json:"text" validate:"required"`
	IsMarkdown *bool  `json:"is_markdown"`
}

type AddTagRequest struct {
	FeedbackID uint   `json:"feedback_id" validate:"required"`
	TagName    string `json:"tag_name" validate:"required,max=50"`
}

// CommentItem is a comment with the author's name joined in.
type CommentItem struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	UserName   string    `json:"user_name"`
	Text       string    `json:"text"`
	IsMarkdown bool      `json:"is_markdown"`
	CreatedAt  time.Time `json:"timestamp"`
}

// AddComment appends a comment to a feedback entry. Comments are immutable
// once written; markdown rendering defaults to on.
func (cc *CommentController) AddComment(c *fiber.Ctx) error {
	var req AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	isMarkdown := true
	if req.IsMarkdown != nil {
		isMarkdown = *req.IsMarkdown
	}

	comment := models.Comment{
		FeedbackID: req.FeedbackID,
		UserID:     req.UserID,
		Text:       req.Text,
		IsMarkdown: isMarkdown,
	}
	if err := cc.DB.Create(&comment).Error; err != nil {
		return utils.InternalError(c, "Failed to add comment", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(&comment))
}

// ListComments returns a feedback entry's comments oldest first, with the
// commenter's name joined in.
func (cc *CommentController) ListComments(c *fiber.Ctx) error {
	feedbackID := utils.ParseUint(c.Params("feedbackID"))

	var items []CommentItem
	if err := cc.DB.Model(&models.Comment{}).
		Select("comments.id, comments.user_id, comments.text, comments.is_markdown, comments.created_at, users.name AS user_name").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.feedback_id = ?", feedbackID).
		Order("comments.created_at ASC").
		Scan(&items).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch comments", err)
	}

	return c.JSON(utils.SuccessResponse(items))
}

// AddTag attaches a free-text tag to a feedback entry. Repeated tags are
// allowed.
func (cc *CommentController) AddTag(c *fiber.Ctx) error {
	var req AddTagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	tag := models.Tag{
		FeedbackID: req.FeedbackID,
		TagName:    req.TagName,
	}
	if err := cc.DB.Create(&tag).Error; err != nil {
		return utils.InternalError(c, "Failed to add tag", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(&tag))
}

// ListTags returns the tags on a feedback entry.
func (cc *CommentController) ListTags(c *fiber.Ctx) error {
	var tags []models.Tag
	if err := cc.DB.Where("feedback_id = ?", utils.ParseUint(c.Params("feedbackID"))).
		Find(&tags).Error; err != nil {
		return utils.InternalError(c, "Failed to fetch tags", err)
	}

	return c.JSON(utils.SuccessResponse(tags))
}

// DeleteTag removes a tag by id.
func (cc *CommentController) DeleteTag(c *fiber.Ctx) error {
	var tag models.Tag
	if err := cc.DB.First(&tag, utils.ParseUint(c.Params("tagID"))).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Tag not found", nil)
		}
		return utils.InternalError(c, "Failed to fetch tag", err)
	}

	if err := cc.DB.Delete(&tag).Error; err != nil {
		return utils.InternalError(c, "Failed to delete tag", err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Tag deleted successfully"})
}
