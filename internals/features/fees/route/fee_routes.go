package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "schoolms_backend/internals/features/fees/controller"
)

func FeeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeController.NewFeeController(db)

	r.Post("/create-fee-structure", ctrl.CreateFeeStructure)
	r.Post("/pay-fee", ctrl.PayFee)
	r.Get("/fee-status/:studentId/:year", ctrl.GetFeeStatus)
}
