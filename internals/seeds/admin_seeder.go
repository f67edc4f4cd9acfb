package seeds

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"videoku_backend/internals/configs"
	adminModel "videoku_backend/internals/features/admins/model"
	commentModel "videoku_backend/internals/features/comments/model"
	videoModel "videoku_backend/internals/features/videos/model"
)

// Migrate membuat/menyesuaikan skema tabel.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&videoModel.VideoModel{},
		&commentModel.CommentModel{},
		&adminModel.AdminModel{},
	)
}

// SeedDefaultAdmin membuat admin default HANYA kalau belum ada admin sama
// sekali. Kredensial default untuk first-run setup — wajib dirotasi sebelum
// diekspos ke production.
func SeedDefaultAdmin(db *gorm.DB) error {
	var existing adminModel.AdminModel
	err := db.First(&existing).Error
	if err == nil {
		return nil // sudah ada admin
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	username := configs.GetEnv("SEED_ADMIN_USERNAME", "admin")
	password := configs.GetEnv("SEED_ADMIN_PASSWORD", "admin123")
	email := configs.GetEnv("SEED_ADMIN_EMAIL", "admin@example.com")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := adminModel.AdminModel{
		AdminUsername: username,
		AdminEmail:    email,
		AdminPassword: string(hash),
		AdminIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Default admin dibuat: %s (segera ganti password-nya!)", username)
	return nil
}

// Run menjalankan migrasi + seeding first-run.
func Run(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return err
	}
	return SeedDefaultAdmin(db)
}
