// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "videoku_backend/internals/features/admins/route"
	commentRoute "videoku_backend/internals/features/comments/route"
	videoRoute "videoku_backend/internals/features/videos/route"
	vodRoute "videoku_backend/internals/features/vod/route"
	authMiddleware "videoku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	adminRoute.AuthRoutes(public, db)
	videoRoute.AllVideoRoutes(public, db)
	vodRoute.VodRoutes(public, db)
	commentRoute.AllCommentRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (session gate)...")
	admin := app.Group("/api/a", authMiddleware.AdminAuthMiddleware(db))

	adminRoute.DashboardAdminRoutes(admin, db)
	videoRoute.VideoAdminRoutes(admin, db)
	commentRoute.CommentAdminRoutes(admin, db)
}
