package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"videoku_backend/internals/features/videos/controller"
)

// 🔐 Route admin: kelola video + urutan tampil
func VideoAdminRoutes(api fiber.Router, db *gorm.DB) {
	videoCtrl := controller.NewVideoAdminController(db)

	admin := api.Group("/videos")
	admin.Get("/", videoCtrl.ListVideos)                     // 📄 daftar video (admin)
	admin.Post("/", videoCtrl.CreateVideo)                   // ➕ tambah video
	admin.Post("/normalize", videoCtrl.NormalizeVideos)      // 🧹 rapikan order index (daftar dulu sebelum /:id)
	admin.Post("/:id", videoCtrl.UpdateVideo)                // ✏️ edit video
	admin.Post("/:id/delete", videoCtrl.DeleteVideo)         // 🗑️ hapus video + komentarnya
	admin.Post("/:id/view-count", videoCtrl.UpdateViewCount) // 🔢 update view count (JSON)
	admin.Post("/:id/reorder", videoCtrl.ReorderVideo)       // ↕️ geser urutan
}
