package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"videoku_backend/internals/configs"
	"videoku_backend/internals/features/comments/dto"
	"videoku_backend/internals/features/comments/model"
	helper "videoku_backend/internals/helpers"
)

type CommentAdminController struct {
	DB *gorm.DB
}

func NewCommentAdminController(db *gorm.DB) *CommentAdminController {
	return &CommentAdminController{DB: db}
}

// =======================
// 📄 Daftar komentar untuk moderasi
// GET /api/a/comments?filter=pending|approved|all&page=1
// Filter tak dikenal jatuh ke pending (perilaku lama).
// =======================
func (ctrl *CommentAdminController) ListComments(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, configs.AdminPerPage, 200)
	filter := c.Query("filter", "pending")

	applyFilter := func(q *gorm.DB) *gorm.DB {
		switch filter {
		case "all":
			return q
		case "approved":
			return q.Where("comment_is_approved = ?", true)
		default:
			filter = "pending"
			return q.Where("comment_is_approved = ?", false)
		}
	}

	var total int64
	if err := applyFilter(ctrl.DB.Model(&model.CommentModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count comments")
	}

	var comments []model.CommentModel
	if err := applyFilter(ctrl.DB).
		Order("comment_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve comments")
	}

	resp := make([]dto.AdminCommentDTO, 0, len(comments))
	for _, cm := range comments {
		resp = append(resp, dto.ToAdminCommentDTO(cm))
	}

	return helper.JsonList(c, "filter="+filter, resp,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// ✅ Setujui komentar (idempotent)
// POST /api/a/comments/:id/approve
// =======================
func (ctrl *CommentAdminController) ApproveComment(c *fiber.Ctx) error {
	id := c.Params("id")

	var comment model.CommentModel
	if err := ctrl.DB.First(&comment, "comment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve comment")
	}

	if !comment.CommentIsApproved {
		if err := ctrl.DB.Model(&model.CommentModel{}).
			Where("comment_id = ?", comment.CommentID).
			UpdateColumn("comment_is_approved", true).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve comment")
		}
		comment.CommentIsApproved = true
	}

	return helper.JsonUpdated(c, "Comment approved", dto.ToAdminCommentDTO(comment))
}

// =======================
// ❌ Tolak komentar (hard delete, tidak bisa dibatalkan)
// POST /api/a/comments/:id/reject
// =======================
func (ctrl *CommentAdminController) RejectComment(c *fiber.Ctx) error {
	id := c.Params("id")

	var comment model.CommentModel
	if err := ctrl.DB.First(&comment, "comment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve comment")
	}

	if err := ctrl.DB.Delete(&model.CommentModel{}, "comment_id = ?", comment.CommentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reject comment")
	}

	return helper.JsonDeleted(c, "Comment rejected and deleted", fiber.Map{
		"comment_id": comment.CommentID,
	})
}
