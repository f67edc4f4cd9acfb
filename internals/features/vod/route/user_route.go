package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"videoku_backend/internals/features/vod/controller"
)

// 🌐 Route publik: tukar id video dengan play-auth VOD
func VodRoutes(api fiber.Router, db *gorm.DB) {
	playAuthCtrl := controller.NewPlayAuthController(db)

	api.Get("/videos/:id/playauth", playAuthCtrl.GetPlayAuth)
}
