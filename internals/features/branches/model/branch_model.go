package model

import (
	"time"

	"gorm.io/gorm"

	adminModel "schoolms_backend/internals/features/admins/model"
)

type BranchModel struct {
	BranchID uint `gorm:"primaryKey;column:branch_id" json:"id"`
	// name+address pair must be unique among live branches; checked in the
	// handler for a clean message, enforced by a partial index (see Migrate)
	// so a soft-deleted branch can be recreated.
	BranchName    string `gorm:"type:varchar(120);not null;column:branch_name;index" json:"name"`
	BranchAddress string `gorm:"type:varchar(255);not null;column:branch_address" json:"address"`
	BranchAdminID uint   `gorm:"not null;column:branch_admin_id;index" json:"adminId"`

	Admin *adminModel.AdminModel `gorm:"foreignKey:BranchAdminID" json:"admin,omitempty"`

	BranchCreatedAt time.Time      `gorm:"column:branch_created_at;autoCreateTime" json:"createdAt"`
	BranchUpdatedAt time.Time      `gorm:"column:branch_updated_at;autoUpdateTime" json:"updatedAt"`
	BranchDeletedAt gorm.DeletedAt `gorm:"column:branch_deleted_at;index" json:"-"`
}

func (BranchModel) TableName() string { return "branches" }

func (m BranchModel) PrimaryKey() uint    { return m.BranchID }
func (BranchModel) PrimaryColumn() string { return "branch_id" }
