package dto

import (
	"strings"
	"time"

	admissionModel "schoolms_backend/internals/features/admissions/model"
)

/* ===================== ADMISSION (parent + students in one unit) ===================== */

type AdmissionRequest struct {
	Parent   AdmissionParentInput    `json:"parent" validate:"required"`
	Students []AdmissionStudentInput `json:"students" validate:"required,min=1,dive"`
}

type AdmissionParentInput struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone" validate:"required"`
	CNIC    string  `json:"cnic" validate:"required"`
	Address *string `json:"address"`
	// base64 data URI; decoded to a stored file, never persisted raw
	Picture *string `json:"picture"`
}

type AdmissionStudentInput struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Age       int     `json:"age" validate:"required,gt=0"`
	ClassID   uint    `json:"classId" validate:"required"`
	GradeID   uint    `json:"gradeId" validate:"required"`
	Picture   *string `json:"picture"`

	FeeCards  []AdmissionFeeCardInput  `json:"feeCards" validate:"dive"`
	Documents []AdmissionDocumentInput `json:"documents" validate:"dive"`
}

type AdmissionFeeCardInput struct {
	FeeItems []AdmissionFeeItemInput `json:"feeItems" validate:"dive"`
}

type AdmissionFeeItemInput struct {
	FeeType     string    `json:"feeType" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	PaymentType string    `json:"paymentType" validate:"required"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	Status      string    `json:"status"`
}

type AdmissionDocumentInput struct {
	Name string                 `json:"name" validate:"required"`
	Data string                 `json:"data" validate:"required"`
	Meta map[string]interface{} `json:"meta"`
}

func (in AdmissionParentInput) ToModel(branchID uint) *admissionModel.ParentModel {
	return &admissionModel.ParentModel{
		ParentName:     strings.TrimSpace(in.Name),
		ParentEmail:    strings.ToLower(strings.TrimSpace(in.Email)),
		ParentPhone:    strings.TrimSpace(in.Phone),
		ParentCNIC:     strings.TrimSpace(in.CNIC),
		ParentAddress:  in.Address,
		ParentBranchID: branchID,
	}
}

func (in AdmissionStudentInput) ToModel(parentID uint) *admissionModel.StudentModel {
	return &admissionModel.StudentModel{
		StudentFirstName: strings.TrimSpace(in.FirstName),
		StudentLastName:  strings.TrimSpace(in.LastName),
		StudentAge:       in.Age,
		StudentClassID:   in.ClassID,
		StudentGradeID:   in.GradeID,
		StudentParentID:  parentID,
	}
}

func (in AdmissionFeeItemInput) ToModel(feeCardID uint) admissionModel.FeeItemModel {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = admissionModel.FeeItemStatusUnpaid
	}
	return admissionModel.FeeItemModel{
		FeeItemFeeCardID:   feeCardID,
		FeeItemFeeType:     strings.TrimSpace(in.FeeType),
		FeeItemAmount:      in.Amount,
		FeeItemPaymentType: strings.TrimSpace(in.PaymentType),
		FeeItemDueDate:     in.DueDate,
		FeeItemStatus:      status,
	}
}

/* ===================== SIMPLE CREATES (non-transactional) ===================== */

type CreateParentRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	CNIC     string `json:"cnic" validate:"required"`
	BranchID uint   `json:"branchId" validate:"required"`
}

type CreateStudentRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Age       int    `json:"age" validate:"required,gt=0"`
	ParentID  uint   `json:"parentId" validate:"required"`
	ClassID   uint   `json:"classId" validate:"required"`
	GradeID   uint   `json:"gradeId" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type AdmissionResponse struct {
	Parent   *admissionModel.ParentModel   `json:"parent"`
	Students []admissionModel.StudentModel `json:"students"`
}
