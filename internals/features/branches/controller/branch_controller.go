package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminModel "schoolms_backend/internals/features/admins/model"
	branchDTO "schoolms_backend/internals/features/branches/dto"
	branchModel "schoolms_backend/internals/features/branches/model"
	helper "schoolms_backend/internals/helpers"
)

type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /branch/:adminID/create-branch
func (h *BranchController) CreateBranch(c *fiber.Ctx) error {
	adminID, err := c.ParamsInt("adminID")
	if err != nil || adminID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid admin id")
	}

	var req branchDTO.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin adminModel.AdminModel
	if err := h.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Admin not found")
		}
		log.Printf("create branch: admin lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	branch := req.ToModel(uint(adminID))
	if err := h.DB.Create(branch).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Branch with the same name and address already exists")
		}
		log.Printf("create branch: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Branch created successfully", branch)
}

// GET /branch/get-branches
func (h *BranchController) GetBranches(c *fiber.Ctx) error {
	return helper.List[branchModel.BranchModel](c, h.DB, helper.ListConfig{
		SearchFields: []string{"branch_name", "branch_address"},
		FilterFields: map[string]string{"adminId": "branch_admin_id"},
		Preloads:     []string{"Admin"},
		SortColumns: map[string]string{
			"createdAt": "branch_created_at",
			"name":      "branch_name",
			"id":        "branch_id",
		},
		DefaultSortBy:    "createdAt",
		DefaultSortOrder: "desc",
	})
}

// GET /branch/get-branch/:branchID
func (h *BranchController) GetBranchByID(c *fiber.Ctx) error {
	branchID, err := c.ParamsInt("branchID")
	if err != nil || branchID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid branch id")
	}

	var branch branchModel.BranchModel
	if err := h.DB.Preload("Admin").First(&branch, "branch_id = ?", branchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Branch not found")
		}
		log.Printf("get branch: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.Success(c, "Data fetched successfully", branch)
}

// PATCH /branch/update-branch/:branchID
func (h *BranchController) UpdateBranch(c *fiber.Ctx) error {
	branchID, err := c.ParamsInt("branchID")
	if err != nil || branchID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid branch id")
	}

	var req branchDTO.UpdateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}

	var branch branchModel.BranchModel
	if err := h.DB.First(&branch, "branch_id = ?", branchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Branch not found")
		}
		log.Printf("update branch: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	req.ApplyToModel(&branch)

	// The name+address pair must stay unique among the other branches.
	var dup int64
	if err := h.DB.Model(&branchModel.BranchModel{}).
		Where("branch_id <> ? AND branch_name = ? AND branch_address = ?",
			branchID, branch.BranchName, branch.BranchAddress).
		Count(&dup).Error; err != nil {
		log.Printf("update branch: duplicate check: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Branch with the same name and address already exists")
	}

	if err := h.DB.Save(&branch).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Branch with the same name and address already exists")
		}
		log.Printf("update branch: save: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.Success(c, "Branch updated successfully", branch)
}

// DELETE /branch and /branch/:id
func (h *BranchController) DeleteBranches(c *fiber.Ctx) error {
	return helper.Delete[branchModel.BranchModel](c, h.DB, helper.DeleteConfig{
		SoftDelete: true,
	})
}
