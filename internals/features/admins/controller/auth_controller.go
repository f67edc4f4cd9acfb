package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"videoku_backend/internals/configs"
	"videoku_backend/internals/features/admins/dto"
	"videoku_backend/internals/features/admins/model"
	authService "videoku_backend/internals/features/admins/service"
	commentModel "videoku_backend/internals/features/comments/model"
	videoModel "videoku_backend/internals/features/videos/model"
	helper "videoku_backend/internals/helpers"
)

var validateAuth = validator.New()

// Pesan sengaja generik: jangan bocorkan apakah username-nya yang salah
// atau password-nya.
const msgInvalidCredentials = "Invalid username or password"

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =======================
// 🔐 Login admin
// POST /api/auth/login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Username and password are required")
	}

	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "admin_username = ?", body.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, msgInvalidCredentials)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve admin")
	}
	if !admin.AdminIsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, msgInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, msgInvalidCredentials)
	}

	token, err := authService.CreateAccessToken(&admin, time.Now().UTC())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session token")
	}

	helper.SetAccessTokenCookie(c, token, configs.AccessTokenTTLH*3600)

	return helper.JsonOK(c, "Login success", dto.LoginResponse{
		AccessToken: token,
		Username:    admin.AdminUsername,
	})
}

// =======================
// 🚪 Logout admin
// GET /api/auth/logout
// =======================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	helper.ClearAccessTokenCookie(c)
	return helper.JsonOK(c, "Logged out", nil)
}

// =======================
// 📊 Dashboard admin (hitungan ringkas)
// GET /api/a/dashboard
// =======================
func (ctrl *AuthController) Dashboard(c *fiber.Ctx) error {
	var counts dto.DashboardDTO

	if err := ctrl.DB.Model(&videoModel.VideoModel{}).Count(&counts.VideoCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count videos")
	}
	if err := ctrl.DB.Model(&commentModel.CommentModel{}).Count(&counts.CommentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count comments")
	}
	if err := ctrl.DB.Model(&commentModel.CommentModel{}).
		Where("comment_is_approved = ?", false).
		Count(&counts.PendingCommentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count pending comments")
	}

	return helper.JsonOK(c, "OK", counts)
}
