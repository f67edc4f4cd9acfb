package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	AdminID        string    `gorm:"column:admin_id;primaryKey;type:uuid" json:"admin_id"`
	AdminUsername  string    `gorm:"column:admin_username;type:varchar(80);uniqueIndex;not null" json:"admin_username"`
	AdminEmail     string    `gorm:"column:admin_email;type:varchar(120);uniqueIndex;not null" json:"admin_email"`
	AdminPassword  string    `gorm:"column:admin_password;type:varchar(200);not null" json:"-"` // hash bcrypt, jangan pernah plaintext
	AdminIsActive  bool      `gorm:"column:admin_is_active;not null;default:true" json:"admin_is_active"`
	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == "" {
		m.AdminID = uuid.NewString()
	}
	return nil
}
