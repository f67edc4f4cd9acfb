package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"videoku_backend/internals/features/admins/controller"
	"videoku_backend/internals/middlewares"
)

// 🌐 Route auth (publik): login & logout
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Get("/logout", authCtrl.Logout)
}

// 🔐 Route admin: dashboard ringkas
func DashboardAdminRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api.Get("/dashboard", authCtrl.Dashboard)
}
