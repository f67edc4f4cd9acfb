package service

import (
	"errors"

	"gorm.io/gorm"

	"videoku_backend/internals/features/videos/model"
)

// Urutan tampil: order index kecil dulu, lalu video terbaru dulu.
const DisplayOrder = "video_order_index ASC, video_created_at DESC"

var ErrInvalidDirection = errors.New("direction must be up or down")

// NextOrderIndex mengembalikan MAX(order_index)+1 — video baru masuk paling belakang.
func NextOrderIndex(db *gorm.DB) (int, error) {
	var next int
	err := db.Model(&model.VideoModel{}).
		Select("COALESCE(MAX(video_order_index), 0) + 1").
		Scan(&next).Error
	return next, err
}

// Reorder menukar order index sebuah video dengan tetangganya pada arah yang diminta.
// Mengembalikan moved=false (tanpa error) jika video sudah di ujung daftar.
// Kedua update dilakukan dalam satu transaksi supaya tidak ada swap setengah jalan.
func Reorder(db *gorm.DB, videoID, direction string) (moved bool, err error) {
	if direction != "up" && direction != "down" {
		return false, ErrInvalidDirection
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var current model.VideoModel
		if err := tx.First(&current, "video_id = ?", videoID).Error; err != nil {
			return err
		}

		// Tetangga langsung pada urutan tampil. Toleran terhadap index
		// duplikat/renggang: cukup strictly less / strictly greater.
		neighborQuery := tx.Model(&model.VideoModel{})
		if direction == "up" {
			neighborQuery = neighborQuery.
				Where("video_order_index < ?", current.VideoOrderIndex).
				Order("video_order_index DESC, video_created_at ASC")
		} else {
			neighborQuery = neighborQuery.
				Where("video_order_index > ?", current.VideoOrderIndex).
				Order("video_order_index ASC, video_created_at DESC")
		}

		var neighbor model.VideoModel
		if err := neighborQuery.First(&neighbor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// sudah di ujung, bukan error
				return nil
			}
			return err
		}

		if err := tx.Model(&model.VideoModel{}).
			Where("video_id = ?", current.VideoID).
			UpdateColumn("video_order_index", neighbor.VideoOrderIndex).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.VideoModel{}).
			Where("video_id = ?", neighbor.VideoID).
			UpdateColumn("video_order_index", current.VideoOrderIndex).Error; err != nil {
			return err
		}

		moved = true
		return nil
	})
	return moved, err
}

// Normalize menulis ulang order index menjadi 1..N rapat, mengikuti urutan tampil
// saat ini. Dipakai untuk memperbaiki index yang bolong atau tabrakan.
func Normalize(db *gorm.DB) (count int64, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var videos []model.VideoModel
		if err := tx.Order(DisplayOrder).Find(&videos).Error; err != nil {
			return err
		}
		for i, v := range videos {
			want := i + 1
			if v.VideoOrderIndex == want {
				continue
			}
			if err := tx.Model(&model.VideoModel{}).
				Where("video_id = ?", v.VideoID).
				UpdateColumn("video_order_index", want).Error; err != nil {
				return err
			}
		}
		count = int64(len(videos))
		return nil
	})
	return count, err
}
