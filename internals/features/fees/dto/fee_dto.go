package dto

import (
	"time"

	feeModel "schoolms_backend/internals/features/fees/model"
)

type CreateFeeStructureRequest struct {
	Amount   float64   `json:"amount" validate:"required,gt=0"`
	DueDate  time.Time `json:"dueDate" validate:"required"`
	BranchID uint      `json:"branchId" validate:"required"`
}

type PayFeeRequest struct {
	StudentID      uint   `json:"studentId" validate:"required"`
	FeeStructureID uint   `json:"feeStructureId" validate:"required"`
	Month          string `json:"month" validate:"required,oneof=January February March April May June July August September October November December"`
	Year           int    `json:"year" validate:"required,min=2000"`
}

func (in CreateFeeStructureRequest) ToModel() *feeModel.FeeStructureModel {
	return &feeModel.FeeStructureModel{
		FeeStructureAmount:   in.Amount,
		FeeStructureDueDate:  in.DueDate,
		FeeStructureBranchID: in.BranchID,
	}
}

// MonthStatus is one row of the 12-month fee status matrix.
type MonthStatus struct {
	Month  string `json:"month"`
	Status string `json:"status"` // Paid | Unpaid
}
