package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	commentModel "videoku_backend/internals/features/comments/model"
)

type VideoModel struct {
	VideoID           string    `gorm:"column:video_id;primaryKey;type:uuid" json:"video_id"`
	VideoTitle        string    `gorm:"column:video_title;type:varchar(200);not null" json:"video_title"`
	VideoDescription  string    `gorm:"column:video_description;type:text" json:"video_description"`
	VideoURL          string    `gorm:"column:video_url;type:varchar(500);not null" json:"video_url"`
	VideoThumbnailURL string    `gorm:"column:video_thumbnail_url;type:varchar(500)" json:"video_thumbnail_url"`
	VideoVodID        string    `gorm:"column:video_vod_id;type:varchar(128)" json:"video_vod_id"` // ID video di Aliyun VOD (dipakai untuk play-auth)
	VideoViewCount    int64     `gorm:"column:video_view_count;not null;default:0" json:"video_view_count"`
	VideoOrderIndex   int       `gorm:"column:video_order_index;not null;default:0" json:"video_order_index"`
	VideoCreatedAt    time.Time `gorm:"column:video_created_at;autoCreateTime" json:"video_created_at"`
	VideoUpdatedAt    time.Time `gorm:"column:video_updated_at;autoUpdateTime" json:"video_updated_at"`

	Comments []commentModel.CommentModel `gorm:"foreignKey:CommentVideoID;references:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.VideoID == "" {
		v.VideoID = uuid.NewString()
	}
	return nil
}
