package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "schoolms_backend/internals/features/admins/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAdminController(db)

	r.Post("/register", ctrl.Register)
	r.Get("/list", ctrl.List)
	r.Get("/:id", ctrl.Detail)
}
