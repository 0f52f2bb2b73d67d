package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeDTO "schoolms_backend/internals/features/fees/dto"
	feeModel "schoolms_backend/internals/features/fees/model"
	helper "schoolms_backend/internals/helpers"
)

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

type FeeController struct {
	DB *gorm.DB
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /fee/create-fee-structure
func (h *FeeController) CreateFeeStructure(c *fiber.Ctx) error {
	var req feeDTO.CreateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	created := req.ToModel()
	if err := h.DB.Create(created).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "A fee structure for this branch already exists")
		}
		log.Printf("create fee structure: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while creating the fee structure")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Fee structure created successfully", created)
}

// POST /fee/pay-fee
func (h *FeeController) PayFee(c *fiber.Ctx) error {
	var req feeDTO.PayFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var dup int64
	if err := h.DB.Model(&feeModel.FeePaymentModel{}).
		Where("fee_payment_student_id = ? AND fee_payment_month = ? AND fee_payment_year = ?",
			req.StudentID, req.Month, req.Year).
		Count(&dup).Error; err != nil {
		log.Printf("pay fee: duplicate check: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while processing the fee payment")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusConflict, "This month's fee is already paid for this student.")
	}

	now := time.Now()
	payment := feeModel.FeePaymentModel{
		FeePaymentStudentID:      req.StudentID,
		FeePaymentFeeStructureID: req.FeeStructureID,
		FeePaymentMonth:          req.Month,
		FeePaymentYear:           req.Year,
		FeePaymentIsPaid:         true,
		FeePaymentPaidAt:         &now,
	}
	if err := h.DB.Create(&payment).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "This month's fee is already paid for this student.")
		}
		log.Printf("pay fee: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while processing the fee payment")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Fee payment recorded successfully", payment)
}

// GET /fee/fee-status/:studentId/:year — all 12 months, Paid or Unpaid.
func (h *FeeController) GetFeeStatus(c *fiber.Ctx) error {
	studentID, err1 := c.ParamsInt("studentId")
	year, err2 := c.ParamsInt("year")
	if err1 != nil || err2 != nil || studentID <= 0 || year <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid studentId or year")
	}

	var payments []feeModel.FeePaymentModel
	if err := h.DB.
		Where("fee_payment_student_id = ? AND fee_payment_year = ?", studentID, year).
		Find(&payments).Error; err != nil {
		log.Printf("fee status: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while retrieving fee status")
	}

	paid := make(map[string]bool, len(payments))
	for _, p := range payments {
		paid[p.FeePaymentMonth] = p.FeePaymentIsPaid
	}

	status := make([]feeDTO.MonthStatus, 0, len(months))
	for _, m := range months {
		s := "Unpaid"
		if paid[m] {
			s = "Paid"
		}
		status = append(status, feeDTO.MonthStatus{Month: m, Status: s})
	}

	return helper.Success(c, "Data fetched successfully", status)
}
