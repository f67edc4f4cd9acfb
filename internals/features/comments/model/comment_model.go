package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	CommentID         string    `gorm:"column:comment_id;primaryKey;type:uuid" json:"comment_id"`
	CommentVideoID    string    `gorm:"column:comment_video_id;type:uuid;not null;index" json:"comment_video_id"`
	CommentName       string    `gorm:"column:comment_name;type:varchar(100);not null" json:"comment_name"`
	CommentPhone      string    `gorm:"column:comment_phone;type:varchar(20);not null" json:"-"` // nomor HP tidak diekspos ke publik
	CommentContent    string    `gorm:"column:comment_content;type:text;not null" json:"comment_content"`
	CommentIsApproved bool      `gorm:"column:comment_is_approved;not null;default:false" json:"comment_is_approved"`
	CommentCreatedAt  time.Time `gorm:"column:comment_created_at;autoCreateTime" json:"comment_created_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (m *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if m.CommentID == "" {
		m.CommentID = uuid.NewString()
	}
	return nil
}
