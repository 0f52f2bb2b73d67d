package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "schoolms_backend/internals/features/classes/controller"
)

func ClassRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	r.Post("/create-class", ctrl.CreateClass)
	r.Post("/bulk-create-class", ctrl.BulkCreateClass)
	r.Patch("/grades/add-grades/:id", ctrl.AddGradesToClass)
	r.Post("/grades/create-grades", ctrl.CreateGrade)

	r.Get("/get-classes", ctrl.GetClasses)
	r.Get("/get-single-class/:id", ctrl.GetSingleClass)

	r.Delete("/", ctrl.DeleteClasses)
	r.Delete("/:id", ctrl.DeleteClasses)
}
