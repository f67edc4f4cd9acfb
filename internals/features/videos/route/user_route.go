package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"videoku_backend/internals/features/videos/controller"
)

// 🌐 Route publik: katalog video
func AllVideoRoutes(api fiber.Router, db *gorm.DB) {
	videoCtrl := controller.NewVideoController(db)

	videos := api.Group("/videos")
	videos.Get("/", videoCtrl.ListVideos)        // 📄 daftar video
	videos.Get("/:id", videoCtrl.GetVideoDetail) // 🔍 detail + komentar approved (view count naik)
}
