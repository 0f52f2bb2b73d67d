package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	admissionController "schoolms_backend/internals/features/admissions/controller"
	"schoolms_backend/internals/middlewares"
)

func AdmissionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := admissionController.NewAdmissionController(db)

	r.Post("/:branchID/register", middlewares.AdmissionRateLimiter(), ctrl.Register)
	r.Post("/create-parent", ctrl.CreateParent)
	r.Post("/create-student", ctrl.CreateStudent)

	r.Get("/parents", ctrl.ListParents)
	r.Get("/students", ctrl.ListStudents)

	r.Delete("/parents", ctrl.DeleteParents)
	r.Delete("/parents/:id", ctrl.DeleteParents)
	r.Delete("/students", ctrl.DeleteStudents)
	r.Delete("/students/:id", ctrl.DeleteStudents)
}
