package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"videoku_backend/internals/configs"
	commentDto "videoku_backend/internals/features/comments/dto"
	commentModel "videoku_backend/internals/features/comments/model"
	"videoku_backend/internals/features/videos/dto"
	"videoku_backend/internals/features/videos/model"
	videoService "videoku_backend/internals/features/videos/service"
	helper "videoku_backend/internals/helpers"
)

type VideoController struct {
	DB *gorm.DB
}

func NewVideoController(db *gorm.DB) *VideoController {
	return &VideoController{DB: db}
}

// =======================
// 📄 Daftar video publik (paginated)
// GET /api/videos?page=1
// =======================
func (ctrl *VideoController) ListVideos(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, configs.VideosPerPage, 100)

	var total int64
	if err := ctrl.DB.Model(&model.VideoModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count videos")
	}

	var videos []model.VideoModel
	if err := ctrl.DB.
		Order(videoService.DisplayOrder).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&videos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve videos")
	}

	return helper.JsonList(c, "OK", dto.ToVideoDTOs(videos),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// 🔍 Detail video + komentar yang sudah disetujui
// GET /api/videos/:id?page=1
// Setiap hit menambah view count (termasuk refresh & bot — tanpa dedup).
// =======================
func (ctrl *VideoController) GetVideoDetail(c *fiber.Ctx) error {
	id := c.Params("id")

	var video model.VideoModel
	if err := ctrl.DB.First(&video, "video_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve video")
	}

	if err := ctrl.DB.Model(&model.VideoModel{}).
		Where("video_id = ?", video.VideoID).
		UpdateColumn("video_view_count", gorm.Expr("video_view_count + 1")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update view count")
	}
	video.VideoViewCount++

	p := helper.ResolvePaging(c, configs.CommentsPerPage, 100)

	var total int64
	if err := ctrl.DB.Model(&commentModel.CommentModel{}).
		Where("comment_video_id = ? AND comment_is_approved = ?", video.VideoID, true).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count comments")
	}

	var comments []commentModel.CommentModel
	if err := ctrl.DB.
		Where("comment_video_id = ? AND comment_is_approved = ?", video.VideoID, true).
		Order("comment_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve comments")
	}

	commentDTOs := make([]commentDto.CommentDTO, 0, len(comments))
	for _, cm := range comments {
		commentDTOs = append(commentDTOs, commentDto.ToCommentDTO(cm))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"video":               dto.ToVideoDTO(video),
		"comments":            commentDTOs,
		"comments_pagination": helper.BuildPaginationFromPage(total, p.Page, p.PerPage),
	})
}
