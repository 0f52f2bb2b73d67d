package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	branchController "schoolms_backend/internals/features/branches/controller"
)

func BranchRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := branchController.NewBranchController(db)

	r.Post("/:adminID/create-branch", ctrl.CreateBranch)
	r.Get("/get-branches", ctrl.GetBranches)
	r.Get("/get-branch/:branchID", ctrl.GetBranchByID)
	r.Patch("/update-branch/:branchID", ctrl.UpdateBranch)

	r.Delete("/", ctrl.DeleteBranches)
	r.Delete("/:id", ctrl.DeleteBranches)
}
