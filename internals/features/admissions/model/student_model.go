package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID        uint    `gorm:"primaryKey;column:student_id" json:"id"`
	StudentFirstName string  `gorm:"type:varchar(80);not null;column:student_first_name" json:"firstName"`
	StudentLastName  string  `gorm:"type:varchar(80);not null;column:student_last_name" json:"lastName"`
	StudentAge       int     `gorm:"not null;column:student_age" json:"age"`
	StudentPicture   *string `gorm:"column:student_picture" json:"picture,omitempty"`

	StudentClassID uint `gorm:"not null;column:student_class_id;index" json:"classId"`
	StudentGradeID uint `gorm:"not null;column:student_grade_id;index" json:"gradeId"`
	// The parent exclusively owns the student lifecycle.
	StudentParentID uint `gorm:"not null;column:student_parent_id;index" json:"parentId"`

	FeeCards  []FeeCardModel         `gorm:"foreignKey:FeeCardStudentID;constraint:OnDelete:CASCADE" json:"feeCards,omitempty"`
	Documents []StudentDocumentModel `gorm:"foreignKey:DocumentStudentID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"createdAt"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"updatedAt"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

func (m StudentModel) PrimaryKey() uint    { return m.StudentID }
func (StudentModel) PrimaryColumn() string { return "student_id" }

type FeeCardModel struct {
	FeeCardID        uint `gorm:"primaryKey;column:fee_card_id" json:"id"`
	FeeCardStudentID uint `gorm:"not null;column:fee_card_student_id;index" json:"studentId"`

	FeeItems []FeeItemModel `gorm:"foreignKey:FeeItemFeeCardID;constraint:OnDelete:CASCADE" json:"feeItems,omitempty"`

	FeeCardCreatedAt time.Time `gorm:"column:fee_card_created_at;autoCreateTime" json:"createdAt"`
	FeeCardUpdatedAt time.Time `gorm:"column:fee_card_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (FeeCardModel) TableName() string { return "fee_cards" }

func (m FeeCardModel) PrimaryKey() uint    { return m.FeeCardID }
func (FeeCardModel) PrimaryColumn() string { return "fee_card_id" }

const FeeItemStatusUnpaid = "unpaid"

type FeeItemModel struct {
	FeeItemID          uint      `gorm:"primaryKey;column:fee_item_id" json:"id"`
	FeeItemFeeCardID   uint      `gorm:"not null;column:fee_item_fee_card_id;index" json:"feeCardId"`
	FeeItemFeeType     string    `gorm:"type:varchar(60);not null;column:fee_item_fee_type" json:"feeType"`
	FeeItemAmount      float64   `gorm:"type:decimal(12,2);not null;column:fee_item_amount" json:"amount"`
	FeeItemPaymentType string    `gorm:"type:varchar(40);not null;column:fee_item_payment_type" json:"paymentType"`
	FeeItemDueDate     time.Time `gorm:"type:date;not null;column:fee_item_due_date" json:"dueDate"`
	FeeItemStatus      string    `gorm:"type:varchar(20);not null;default:'unpaid';column:fee_item_status" json:"status"`

	FeeItemCreatedAt time.Time `gorm:"column:fee_item_created_at;autoCreateTime" json:"createdAt"`
	FeeItemUpdatedAt time.Time `gorm:"column:fee_item_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (FeeItemModel) TableName() string { return "fee_items" }

func (m FeeItemModel) PrimaryKey() uint    { return m.FeeItemID }
func (FeeItemModel) PrimaryColumn() string { return "fee_item_id" }

type StudentDocumentModel struct {
	DocumentID        uint           `gorm:"primaryKey;column:document_id" json:"id"`
	DocumentStudentID uint           `gorm:"not null;column:document_student_id;index" json:"studentId"`
	DocumentName      string         `gorm:"type:varchar(120);not null;column:document_name" json:"name"`
	DocumentPath      string         `gorm:"not null;column:document_path" json:"path"`
	DocumentMeta      datatypes.JSON `gorm:"column:document_meta" json:"meta,omitempty"`

	DocumentCreatedAt time.Time `gorm:"column:document_created_at;autoCreateTime" json:"createdAt"`
}

func (StudentDocumentModel) TableName() string { return "student_documents" }

func (m StudentDocumentModel) PrimaryKey() uint    { return m.DocumentID }
func (StudentDocumentModel) PrimaryColumn() string { return "document_id" }
