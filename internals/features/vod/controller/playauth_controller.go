package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	videoModel "videoku_backend/internals/features/videos/model"
	vodService "videoku_backend/internals/features/vod/service"
	helper "videoku_backend/internals/helpers"
)

type PlayAuthController struct {
	DB *gorm.DB
}

func NewPlayAuthController(db *gorm.DB) *PlayAuthController {
	return &PlayAuthController{DB: db}
}

// =======================
// 🎫 Ambil play-auth untuk sebuah video
// GET /api/videos/:id/playauth
// Token berumur pendek — di-fetch per sesi playback, tanpa cache/retry.
// =======================
func (ctrl *PlayAuthController) GetPlayAuth(c *fiber.Ctx) error {
	id := c.Params("id")

	var video videoModel.VideoModel
	if err := ctrl.DB.First(&video, "video_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve video")
	}
	if video.VideoVodID == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Video has no VOD id")
	}

	auth, err := vodService.GetPlayAuth(video.VideoVodID)
	if err != nil {
		// teruskan pesan provider apa adanya
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	return helper.JsonOK(c, "OK", auth)
}
