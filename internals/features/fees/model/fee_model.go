package model

import (
	"time"

	"gorm.io/gorm"
)

type FeeStructureModel struct {
	FeeStructureID      uint      `gorm:"primaryKey;column:fee_structure_id" json:"id"`
	FeeStructureAmount  float64   `gorm:"type:decimal(12,2);not null;column:fee_structure_amount" json:"amount"`
	FeeStructureDueDate time.Time `gorm:"type:date;not null;column:fee_structure_due_date" json:"dueDate"`
	// One live fee structure per branch via a partial index (see Migrate).
	FeeStructureBranchID uint `gorm:"not null;column:fee_structure_branch_id;index" json:"branchId"`

	FeeStructureCreatedAt time.Time      `gorm:"column:fee_structure_created_at;autoCreateTime" json:"createdAt"`
	FeeStructureUpdatedAt time.Time      `gorm:"column:fee_structure_updated_at;autoUpdateTime" json:"updatedAt"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index" json:"-"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }

func (m FeeStructureModel) PrimaryKey() uint    { return m.FeeStructureID }
func (FeeStructureModel) PrimaryColumn() string { return "fee_structure_id" }

// One payment row per (student, month, year).
type FeePaymentModel struct {
	FeePaymentID             uint       `gorm:"primaryKey;column:fee_payment_id" json:"id"`
	FeePaymentStudentID      uint       `gorm:"not null;column:fee_payment_student_id;uniqueIndex:uq_fee_payments_student_month_year" json:"studentId"`
	FeePaymentFeeStructureID uint       `gorm:"not null;column:fee_payment_fee_structure_id;index" json:"feeStructureId"`
	FeePaymentMonth          string     `gorm:"type:varchar(12);not null;column:fee_payment_month;uniqueIndex:uq_fee_payments_student_month_year" json:"month"`
	FeePaymentYear           int        `gorm:"not null;column:fee_payment_year;uniqueIndex:uq_fee_payments_student_month_year" json:"year"`
	FeePaymentIsPaid         bool       `gorm:"not null;default:false;column:fee_payment_is_paid" json:"isPaid"`
	FeePaymentPaidAt         *time.Time `gorm:"column:fee_payment_paid_at" json:"paidAt,omitempty"`

	FeePaymentCreatedAt time.Time `gorm:"column:fee_payment_created_at;autoCreateTime" json:"createdAt"`
}

func (FeePaymentModel) TableName() string { return "fee_payments" }

func (m FeePaymentModel) PrimaryKey() uint    { return m.FeePaymentID }
func (FeePaymentModel) PrimaryColumn() string { return "fee_payment_id" }
