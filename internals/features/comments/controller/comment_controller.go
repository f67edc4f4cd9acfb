package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"videoku_backend/internals/features/comments/dto"
	"videoku_backend/internals/features/comments/model"
	videoModel "videoku_backend/internals/features/videos/model"
	helper "videoku_backend/internals/helpers"
)

var validateComment = validator.New()

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// =======================
// ➕ Submit komentar publik
// POST /api/videos/:id/comments
// Komentar masuk dengan is_approved=false; baru tampil setelah dimoderasi.
// =======================
func (ctrl *CommentController) SubmitComment(c *fiber.Ctx) error {
	videoID := c.Params("id")

	var video videoModel.VideoModel
	if err := ctrl.DB.First(&video, "video_id = ?", videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve video")
	}

	var body dto.SubmitCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Phone = strings.TrimSpace(body.Phone)
	body.Content = strings.TrimSpace(body.Content)

	if err := validateComment.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Name, phone and content are required")
	}
	if !dto.IsValidPhone(body.Phone) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Phone number must be exactly 11 digits")
	}

	comment := model.CommentModel{
		CommentVideoID: video.VideoID,
		CommentName:    body.Name,
		CommentPhone:   body.Phone,
		CommentContent: body.Content,
		// is_approved default false — menunggu moderasi
	}

	if err := ctrl.DB.Create(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit comment")
	}

	return helper.JsonCreated(c, "Comment submitted, pending moderation", fiber.Map{
		"comment_id": comment.CommentID,
	})
}
