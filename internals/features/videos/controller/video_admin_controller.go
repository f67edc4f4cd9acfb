package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"videoku_backend/internals/configs"
	commentModel "videoku_backend/internals/features/comments/model"
	"videoku_backend/internals/features/videos/dto"
	"videoku_backend/internals/features/videos/model"
	videoService "videoku_backend/internals/features/videos/service"
	helper "videoku_backend/internals/helpers"
	ossHelper "videoku_backend/internals/helpers/oss"
)

var validateVideo = validator.New()

type VideoAdminController struct {
	DB *gorm.DB
}

func NewVideoAdminController(db *gorm.DB) *VideoAdminController {
	return &VideoAdminController{DB: db}
}

// =======================
// 📄 Daftar video (admin, paginated)
// GET /api/a/videos?page=1
// =======================
func (ctrl *VideoAdminController) ListVideos(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, configs.AdminPerPage, 200)

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
// ➕ Tambah video
// POST /api/a/videos (multipart form)
// =======================
func (ctrl *VideoAdminController) CreateVideo(c *fiber.Ctx) error {
	var body dto.CreateVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Title = strings.TrimSpace(body.Title)
	body.VideoURL = strings.TrimSpace(body.VideoURL)
	if err := validateVideo.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Title and video URL are required")
	}

	thumbnailURL := strings.TrimSpace(body.ThumbnailURL)
	if fh, err := c.FormFile("thumbnail"); err == nil && fh != nil {
		// file thumbnail ditulis ke OSS dulu, baru row DB dibuat
		uploaded, err := ossHelper.UploadThumbnail(fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		thumbnailURL = uploaded
	}

	orderIndex := 0
	if body.OrderIndex != nil {
		orderIndex = *body.OrderIndex
	} else {
		next, err := videoService.NextOrderIndex(ctrl.DB)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign order index")
		}
		orderIndex = next
	}

	video := model.VideoModel{
		VideoTitle:        body.Title,
		VideoDescription:  strings.TrimSpace(body.Description),
		VideoURL:          helper.RewriteMediaURL(body.VideoURL, configs.MediaRewriteHosts),
		VideoThumbnailURL: thumbnailURL,
		VideoVodID:        strings.TrimSpace(body.VodVideoID),
		VideoOrderIndex:   orderIndex,
	}

	if err := ctrl.DB.Create(&video).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create video")
	}

	return helper.JsonCreated(c, "Video created", dto.ToVideoDTO(video))
}

// =======================
// ✏️ Edit video (partial)
// POST /api/a/videos/:id
// =======================
func (ctrl *VideoAdminController) UpdateVideo(c *fiber.Ctx) error {
	id := c.Params("id")

	var video model.VideoModel
	if err := ctrl.DB.First(&video, "video_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve video")
	}

	var body dto.UpdateVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVideo.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if body.Title != nil {
		if t := strings.TrimSpace(*body.Title); t != "" {
			video.VideoTitle = t
		}
	}
	if body.Description != nil {
		video.VideoDescription = strings.TrimSpace(*body.Description)
	}
	if body.VideoURL != nil {
		if u := strings.TrimSpace(*body.VideoURL); u != "" {
			video.VideoURL = helper.RewriteMediaURL(u, configs.MediaRewriteHosts)
		}
	}
	if body.ThumbnailURL != nil {
		video.VideoThumbnailURL = strings.TrimSpace(*body.ThumbnailURL)
	}
	if fh, err := c.FormFile("thumbnail"); err == nil && fh != nil {
		uploaded, err := ossHelper.UploadThumbnail(fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		video.VideoThumbnailURL = uploaded
	}
	if body.VodVideoID != nil {
		video.VideoVodID = strings.TrimSpace(*body.VodVideoID)
	}
	if body.OrderIndex != nil {
		video.VideoOrderIndex = *body.OrderIndex
	}
	if body.ViewCount != nil && *body.ViewCount >= 0 {
		video.VideoViewCount = *body.ViewCount
	}

	if err := ctrl.DB.Save(&video).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update video")
	}

	return helper.JsonUpdated(c, "Video updated", dto.ToVideoDTO(video))
}

// =======================
// 🗑️ Hapus video + seluruh komentarnya
// POST /api/a/videos/:id/delete
// =======================
func (ctrl *VideoAdminController) DeleteVideo(c *fiber.Ctx) error {
	id := c.Params("id")

	var video model.VideoModel
	if err := ctrl.DB.First(&video, "video_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve video")
	}

	// hapus komentar + video dalam satu transaksi (selain FK cascade di DB)
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&commentModel.CommentModel{}, "comment_video_id = ?", video.VideoID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.VideoModel{}, "video_id = ?", video.VideoID).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete video")
	}

	return helper.JsonDeleted(c, "Video deleted", fiber.Map{"video_id": video.VideoID})
}

// =======================
// 🔢 Update view count cepat (API)
// POST /api/a/videos/:id/view-count
// =======================
func (ctrl *VideoAdminController) UpdateViewCount(c *fiber.Ctx) error {
	id := c.Params("id")

	var video model.VideoModel
	if err := ctrl.DB.First(&video, "video_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve video")
	}

	var body dto.UpdateViewCountRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.ViewCount == nil || *body.ViewCount < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid view count")
	}

	if err := ctrl.DB.Model(&model.VideoModel{}).
		Where("video_id = ?", video.VideoID).
		UpdateColumn("video_view_count", *body.ViewCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update view count")
	}

	return helper.JsonUpdated(c, "View count updated", fiber.Map{
		"video_id":   video.VideoID,
		"view_count": *body.ViewCount,
	})
}

// =======================
// ↕️ Geser urutan video (swap dengan tetangga)
// POST /api/a/videos/:id/reorder  (direction=up|down)
// =======================
func (ctrl *VideoAdminController) ReorderVideo(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.ReorderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVideo.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "direction must be up or down")
	}

	moved, err := videoService.Reorder(ctrl.DB, id, body.Direction)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reorder video")
	}

	msg := "Video moved"
	if !moved {
		msg = "Video already at the boundary"
	}
	return helper.JsonOK(c, msg, fiber.Map{
		"video_id": id,
		"moved":    moved,
	})
}

// =======================
// 🧹 Rapikan order index jadi 1..N
// POST /api/a/videos/normalize
// =======================
func (ctrl *VideoAdminController) NormalizeVideos(c *fiber.Ctx) error {
	count, err := videoService.Normalize(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to normalize order")
	}
	return helper.JsonOK(c, "Order normalized", fiber.Map{"count": count})
}
