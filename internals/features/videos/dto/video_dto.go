package dto

import (
	"time"

	"videoku_backend/internals/features/videos/model"
)

// ============================
// Response DTO
// ============================

type VideoDTO struct {
	VideoID           string    `json:"video_id"`
	VideoTitle        string    `json:"video_title"`
	VideoDescription  string    `json:"video_description"`
	VideoURL          string    `json:"video_url"`
	VideoThumbnailURL string    `json:"video_thumbnail_url"`
	VideoVodID        string    `json:"video_vod_id,omitempty"`
	VideoViewCount    int64     `json:"video_view_count"`
	VideoOrderIndex   int       `json:"video_order_index"`
	VideoCreatedAt    time.Time `json:"video_created_at"`
	VideoUpdatedAt    time.Time `json:"video_updated_at"`
}

// ============================
// Create / Update Request DTO
// (multipart form dari panel admin)
// ============================

type CreateVideoRequest struct {
	Title        string `form:"title" validate:"required,max=200"`
	Description  string `form:"description"`
	VideoURL     string `form:"video_url" validate:"required,max=500"`
	ThumbnailURL string `form:"thumbnail_url" validate:"max=500"`
	OrderIndex   *int   `form:"order_index"` // kosong → taruh paling belakang (max+1)
	VodVideoID   string `form:"vod_video_id" validate:"max=128"`
}

type UpdateVideoRequest struct {
	Title        *string `form:"title" validate:"omitempty,max=200"`
	Description  *string `form:"description"`
	VideoURL     *string `form:"video_url" validate:"omitempty,max=500"`
	ThumbnailURL *string `form:"thumbnail_url" validate:"omitempty,max=500"`
	OrderIndex   *int    `form:"order_index"`
	VodVideoID   *string `form:"vod_video_id" validate:"omitempty,max=128"`
	ViewCount    *int64  `form:"view_count"` // override manual, harus >= 0
}

type UpdateViewCountRequest struct {
	ViewCount *int64 `form:"view_count" json:"view_count"`
}

type ReorderRequest struct {
	Direction string `form:"direction" json:"direction" validate:"required,oneof=up down"`
}

// ============================
// Converter
// ============================

func ToVideoDTO(m model.VideoModel) VideoDTO {
	return VideoDTO{
		VideoID:           m.VideoID,
		VideoTitle:        m.VideoTitle,
		VideoDescription:  m.VideoDescription,
		VideoURL:          m.VideoURL,
		VideoThumbnailURL: m.VideoThumbnailURL,
		VideoVodID:        m.VideoVodID,
		VideoViewCount:    m.VideoViewCount,
		VideoOrderIndex:   m.VideoOrderIndex,
		VideoCreatedAt:    m.VideoCreatedAt,
		VideoUpdatedAt:    m.VideoUpdatedAt,
	}
}

func ToVideoDTOs(models []model.VideoModel) []VideoDTO {
	out := make([]VideoDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToVideoDTO(m))
	}
	return out
}
