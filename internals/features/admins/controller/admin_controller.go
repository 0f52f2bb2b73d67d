package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	adminDTO "schoolms_backend/internals/features/admins/dto"
	adminModel "schoolms_backend/internals/features/admins/model"
	helper "schoolms_backend/internals/helpers"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /admin/register
func (h *AdminController) Register(c *fiber.Ctx) error {
	var req adminDTO.RegisterAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("register admin: hash: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	admin := req.ToModel(string(hash))
	if err := h.DB.Create(admin).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "An admin with this email already exists")
		}
		log.Printf("register admin: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Admin registered successfully", admin)
}

// GET /admin/:id
func (h *AdminController) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid admin id")
	}

	var admin adminModel.AdminModel
	if err := h.DB.First(&admin, "admin_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Admin not found")
		}
		log.Printf("admin detail: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.Success(c, "Data fetched successfully", admin)
}

// GET /admin/list
func (h *AdminController) List(c *fiber.Ctx) error {
	return helper.List[adminModel.AdminModel](c, h.DB, helper.ListConfig{
		SearchFields: []string{"admin_name", "admin_email"},
		SortColumns: map[string]string{
			"createdAt": "admin_created_at",
			"name":      "admin_name",
			"id":        "admin_id",
		},
		DefaultSortBy:    "createdAt",
		DefaultSortOrder: "desc",
	})
}
