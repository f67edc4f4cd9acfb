package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"videoku_backend/internals/features/comments/controller"
)

// 🔐 Route admin: moderasi komentar
func CommentAdminRoutes(api fiber.Router, db *gorm.DB) {
	commentCtrl := controller.NewCommentAdminController(db)

	admin := api.Group("/comments")
	admin.Get("/", commentCtrl.ListComments)               // 📄 ?filter=pending|approved|all
	admin.Post("/:id/approve", commentCtrl.ApproveComment) // ✅ setujui (idempotent)
	admin.Post("/:id/reject", commentCtrl.RejectComment)   // ❌ tolak = hard delete
}
