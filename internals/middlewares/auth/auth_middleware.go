// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminModel "videoku_backend/internals/features/admins/model"
	authService "videoku_backend/internals/features/admins/service"
	helper "videoku_backend/internals/helpers"
)

// AdminAuthMiddleware menjaga semua route /api/a: token wajib valid dan
// admin-nya masih ada serta aktif. admin_id disimpan di Locals.
func AdminAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Login required")
		}

		adminID, err := authService.ParseAccessToken(tokenString)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired session")
		}

		var admin adminModel.AdminModel
		if err := db.First(&admin, "admin_id = ?", adminID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired session")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify session")
		}
		if !admin.AdminIsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
		}

		c.Locals("admin_id", admin.AdminID)
		c.Locals("admin_username", admin.AdminUsername)
		return c.Next()
	}
}
