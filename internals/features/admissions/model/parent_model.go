package model

import (
	"time"

	"gorm.io/gorm"
)

type ParentModel struct {
	ParentID    uint   `gorm:"primaryKey;column:parent_id" json:"id"`
	ParentName  string `gorm:"type:varchar(120);not null;column:parent_name" json:"name"`
	ParentEmail string `gorm:"type:varchar(120);not null;column:parent_email;index" json:"email"`
	ParentPhone string `gorm:"type:varchar(32);not null;column:parent_phone" json:"phone"`
	// CNIC is unique per branch among live rows, not globally; the partial
	// indexes backing this (and the email) live in Migrate so a soft-deleted
	// parent's CNIC can be admitted again.
	ParentCNIC     string  `gorm:"type:varchar(20);not null;column:parent_cnic;index" json:"cnic"`
	ParentAddress  *string `gorm:"column:parent_address" json:"address,omitempty"`
	ParentPicture  *string `gorm:"column:parent_picture" json:"picture,omitempty"`
	ParentBranchID uint    `gorm:"not null;column:parent_branch_id;index" json:"branchId"`

	Students []StudentModel `gorm:"foreignKey:StudentParentID;constraint:OnDelete:CASCADE" json:"students,omitempty"`

	ParentCreatedAt time.Time      `gorm:"column:parent_created_at;autoCreateTime" json:"createdAt"`
	ParentUpdatedAt time.Time      `gorm:"column:parent_updated_at;autoUpdateTime" json:"updatedAt"`
	ParentDeletedAt gorm.DeletedAt `gorm:"column:parent_deleted_at;index" json:"-"`
}

func (ParentModel) TableName() string { return "parents" }

func (m ParentModel) PrimaryKey() uint    { return m.ParentID }
func (ParentModel) PrimaryColumn() string { return "parent_id" }
