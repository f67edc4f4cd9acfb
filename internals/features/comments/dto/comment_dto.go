package dto

import (
	"time"

	"videoku_backend/internals/features/comments/model"
)

// ============================
// Public response DTO (tanpa nomor HP)
// ============================

type CommentDTO struct {
	CommentID        string    `json:"comment_id"`
	CommentVideoID   string    `json:"comment_video_id"`
	CommentName      string    `json:"comment_name"`
	CommentContent   string    `json:"comment_content"`
	CommentCreatedAt time.Time `json:"comment_created_at"`
}

// ============================
// Admin response DTO (moderasi)
// ============================

type AdminCommentDTO struct {
	CommentID         string    `json:"comment_id"`
	CommentVideoID    string    `json:"comment_video_id"`
	CommentName       string    `json:"comment_name"`
	CommentPhone      string    `json:"comment_phone"`
	CommentContent    string    `json:"comment_content"`
	CommentIsApproved bool      `json:"comment_is_approved"`
	CommentCreatedAt  time.Time `json:"comment_created_at"`
}

// ============================
// Submit Request DTO
// ============================

type SubmitCommentRequest struct {
	Name    string `form:"name" json:"name" validate:"required,max=100"`
	Phone   string `form:"phone" json:"phone" validate:"required"`
	Content string `form:"content" json:"content" validate:"required"`
}

// IsValidPhone: nomor HP harus persis 11 digit ASCII.
func IsValidPhone(phone string) bool {
	if len(phone) != 11 {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

// ============================
// Converter
// ============================

func ToCommentDTO(m model.CommentModel) CommentDTO {
	return CommentDTO{
		CommentID:        m.CommentID,
		CommentVideoID:   m.CommentVideoID,
		CommentName:      m.CommentName,
		CommentContent:   m.CommentContent,
		CommentCreatedAt: m.CommentCreatedAt,
	}
}

func ToAdminCommentDTO(m model.CommentModel) AdminCommentDTO {
	return AdminCommentDTO{
		CommentID:         m.CommentID,
		CommentVideoID:    m.CommentVideoID,
		CommentName:       m.CommentName,
		CommentPhone:      m.CommentPhone,
		CommentContent:    m.CommentContent,
		CommentIsApproved: m.CommentIsApproved,
		CommentCreatedAt:  m.CommentCreatedAt,
	}
}
