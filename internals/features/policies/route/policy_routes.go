package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	policyController "schoolms_backend/internals/features/policies/controller"
)

func PolicyRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := policyController.NewPolicyController(db)

	r.Get("/get-policies", ctrl.GetPolicies)
	r.Get("/get-events", ctrl.GetEvents)
	r.Get("/get-exceptions", ctrl.GetExceptions)

	r.Post("/:branchId/:adminId/create-new-policy", ctrl.CreatePolicy)
	r.Post("/events", ctrl.CreateEvent)
	r.Post("/exceptions", ctrl.CreateException)

	r.Delete("/", ctrl.DeletePolicies)
	r.Delete("/:id", ctrl.DeletePolicies)
}
