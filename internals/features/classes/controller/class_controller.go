package controller

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classDTO "schoolms_backend/internals/features/classes/dto"
	classModel "schoolms_backend/internals/features/classes/model"
	helper "schoolms_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /class/create-class
func (h *ClassController) CreateClass(c *fiber.Ctx) error {
	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var dup int64
	if err := h.DB.Model(&classModel.ClassModel{}).
		Where("class_name = ?", strings.TrimSpace(req.ClassName)).
		Count(&dup).Error; err != nil {
		log.Printf("create class: duplicate check: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusConflict, "Class with this name already exists")
	}

	created := req.ToModel()
	// Class row and its grades land together; gorm cascades the association
	// inside one transaction.
	if err := h.DB.Create(created).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Class with this name already exists")
		}
		log.Printf("create class: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Class Created Successfully", created)
}

// POST /class/bulk-create-class
//
// Creates several classes, each with its grades, in one transaction. A
// duplicate class name anywhere in the batch aborts the whole batch.
func (h *ClassController) BulkCreateClass(c *fiber.Ctx) error {
	var reqs []classDTO.CreateClassRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Request body must be a non-empty array")
	}
	if len(reqs) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Request body must be a non-empty array")
	}
	for _, req := range reqs {
		if err := helper.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	results := make([]classDTO.BulkClassResult, 0, len(reqs))

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, req := range reqs {
			name := strings.TrimSpace(req.ClassName)

			var dup int64
			if err := tx.Model(&classModel.ClassModel{}).
				Where("class_name = ?", name).
				Count(&dup).Error; err != nil {
				return err
			}
			if dup > 0 {
				return fmt.Errorf("class %s already exists", name)
			}

			created := &classModel.ClassModel{
				ClassName:     name,
				ClassBranchID: req.BranchID,
			}
			if err := tx.Create(created).Error; err != nil {
				return err
			}

			grades := make([]classModel.GradeModel, 0, len(req.Grades))
			for _, g := range req.Grades {
				grades = append(grades, g.ToModel(created.ClassID))
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&grades)
			if res.Error != nil {
				return res.Error
			}

			results = append(results, classDTO.BulkClassResult{
				Class:         created,
				GradesCreated: res.RowsAffected,
			})
		}
		return nil
	})
	if err != nil {
		if strings.Contains(err.Error(), "already exists") || helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		log.Printf("bulk create class: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.Success(c, "Classes and grades created successfully", results)
}

// PATCH /class/grades/add-grades/:id
func (h *ClassController) AddGradesToClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var req classDTO.AddGradesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing classModel.ClassModel
	if err := h.DB.
		Where("class_id = ? AND class_branch_id = ?", classID, req.BranchID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Class not found in this branch")
		}
		log.Printf("add grades: class lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	grades := make([]classModel.GradeModel, 0, len(req.Grades))
	for _, g := range req.Grades {
		grades = append(grades, g.ToModel(existing.ClassID))
	}
	// skip-duplicates semantics: letters already present in the class are
	// silently ignored.
	res := h.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&grades)
	if res.Error != nil {
		log.Printf("add grades: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.Success(c, "Grades added successfully", fiber.Map{
		"gradesAdded": res.RowsAffected,
	})
}

// POST /class/grades/create-grades
func (h *ClassController) CreateGrade(c *fiber.Ctx) error {
	var req classDTO.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := h.DB.Model(&classModel.ClassModel{}).
		Where("class_id = ? AND class_branch_id = ?", req.ClassID, req.BranchID).
		Count(&cnt).Error; err != nil {
		log.Printf("create grade: class lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if cnt == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Class with this ID does not exist in this branch")
	}

	letter := strings.ToUpper(strings.TrimSpace(req.GradeLetter))

	var dup int64
	if err := h.DB.Model(&classModel.GradeModel{}).
		Where("grade_letter = ? AND grade_class_id = ?", letter, req.ClassID).
		Count(&dup).Error; err != nil {
		log.Printf("create grade: duplicate check: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf("A grade with the letter %q already exists for this class.", letter))
	}

	grade := classModel.GradeModel{
		GradeLetter:          letter,
		GradeStudentCapacity: req.StudentCapacity,
		GradeClassID:         req.ClassID,
	}
	if err := h.DB.Create(&grade).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest,
				fmt.Sprintf("A grade with the letter %q already exists for this class.", letter))
		}
		log.Printf("create grade: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grade created successfully", grade)
}

// GET /class/get-classes?branchId=&page=&limit=
func (h *ClassController) GetClasses(c *fiber.Ctx) error {
	branchID := c.QueryInt("branchId")
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	q := h.DB.Model(&classModel.ClassModel{}).Where("class_branch_id = ?", branchID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("get classes: count: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var rows []classModel.ClassModel
	if err := q.Preload("Grades").
		Order("class_id asc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&rows).Error; err != nil {
		log.Printf("get classes: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	summaries := make([]classDTO.ClassSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, classDTO.NewClassSummary(&rows[i]))
	}

	return helper.Success(c, "Data fetched successfully", fiber.Map{
		"classes": summaries,
		"pagination": fiber.Map{
			"currentPage":  page,
			"totalPages":   int(math.Ceil(float64(total) / float64(limit))),
			"totalClasses": total,
			"limit":        limit,
		},
	})
}

// GET /class/get-single-class/:id?branchId=
func (h *ClassController) GetSingleClass(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("id")
	if err != nil || classID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid class id")
	}
	branchID := c.QueryInt("branchId")

	var single classModel.ClassModel
	if err := h.DB.Preload("Grades").
		Where("class_id = ? AND class_branch_id = ?", classID, branchID).
		First(&single).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Class not found in this branch")
		}
		log.Printf("get single class: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.Success(c, "Data fetched successfully", single)
}

// DELETE /class and /class/:id — hard delete, grades cascade with the class.
func (h *ClassController) DeleteClasses(c *fiber.Ctx) error {
	return helper.Delete[classModel.ClassModel](c, h.DB, helper.DeleteConfig{})
}
