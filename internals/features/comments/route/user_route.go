package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"videoku_backend/internals/features/comments/controller"
	"videoku_backend/internals/middlewares"
)

// 🌐 Route publik: submit komentar (masuk antrian moderasi)
func AllCommentRoutes(api fiber.Router, db *gorm.DB) {
	commentCtrl := controller.NewCommentController(db)

	api.Post("/videos/:id/comments",
		middlewares.CommentRateLimiter(),
		commentCtrl.SubmitComment,
	)
}
