package model

import (
	"time"

	"gorm.io/gorm"
)

type AdminModel struct {
	AdminID   uint   `gorm:"primaryKey;column:admin_id" json:"id"`
	AdminName string `gorm:"type:varchar(120);not null;column:admin_name" json:"name"`
	// Uniqueness lives in a partial index scoped to live rows (see Migrate).
	AdminEmail string `gorm:"type:varchar(120);not null;column:admin_email;index" json:"email"`
	AdminPhone string `gorm:"type:varchar(32);not null;column:admin_phone" json:"phone"`
	// bcrypt hash, never the raw password
	AdminPassword string  `gorm:"not null;column:admin_password" json:"-"`
	AdminPicture  *string `gorm:"column:admin_picture" json:"picture,omitempty"`

	AdminCreatedAt time.Time      `gorm:"column:admin_created_at;autoCreateTime" json:"createdAt"`
	AdminUpdatedAt time.Time      `gorm:"column:admin_updated_at;autoUpdateTime" json:"updatedAt"`
	AdminDeletedAt gorm.DeletedAt `gorm:"column:admin_deleted_at;index" json:"-"`
}

func (AdminModel) TableName() string { return "admins" }

func (m AdminModel) PrimaryKey() uint    { return m.AdminID }
func (AdminModel) PrimaryColumn() string { return "admin_id" }
