package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	admissionDTO "schoolms_backend/internals/features/admissions/dto"
	admissionModel "schoolms_backend/internals/features/admissions/model"
	branchModel "schoolms_backend/internals/features/branches/model"
	classModel "schoolms_backend/internals/features/classes/model"
	helper "schoolms_backend/internals/helpers"
)

type AdmissionController struct {
	DB *gorm.DB
}

func NewAdmissionController(db *gorm.DB) *AdmissionController {
	return &AdmissionController{DB: db}
}

/* ===================== ADMISSION WORKFLOW ===================== */

// POST /admission/:branchID/register
//
// Registers a parent plus one or more dependent students, each with optional
// fee cards / fee items / documents, in one transaction. Every foreign key is
// resolved before the first write so a bad payload leaves no partial rows.
func (h *AdmissionController) Register(c *fiber.Ctx) error {
	branchID := paramUint(c, "branchID")
	if branchID == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "branchId is required")
	}

	var req admissionDTO.AdmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var branch branchModel.BranchModel
	if err := h.DB.First(&branch, "branch_id = ?", branchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "branch not found")
		}
		log.Printf("admission: branch lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to process admission")
	}

	// Duplicate natural key, scoped per branch. The unique index backs this
	// up under concurrent requests.
	var dup int64
	if err := h.DB.Model(&admissionModel.ParentModel{}).
		Where("parent_branch_id = ? AND parent_cnic = ?", branchID, req.Parent.CNIC).
		Count(&dup).Error; err != nil {
		log.Printf("admission: cnic check: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to process admission")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusConflict, "A parent with this CNIC already exists in this branch")
	}

	// Every student's class/grade pair must resolve before any write.
	for i, s := range req.Students {
		var cnt int64
		if err := h.DB.Model(&classModel.GradeModel{}).
			Where("grade_id = ? AND grade_class_id = ?", s.GradeID, s.ClassID).
			Count(&cnt).Error; err != nil {
			log.Printf("admission: grade check: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to process admission")
		}
		if cnt == 0 {
			return helper.Error(c, fiber.StatusBadRequest,
				fmt.Sprintf("student %d: classId/gradeId does not resolve to an existing grade", i+1))
		}
	}

	parent := req.Parent.ToModel(branchID)
	students := make([]admissionModel.StudentModel, 0, len(req.Students))

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.Parent.Picture != nil && *req.Parent.Picture != "" {
			path, err := helper.SaveBase64Image(*req.Parent.Picture, "parents", req.Parent.CNIC)
			if err != nil {
				return err
			}
			parent.ParentPicture = &path
		}
		if err := tx.Create(parent).Error; err != nil {
			return err
		}

		for _, in := range req.Students {
			student := in.ToModel(parent.ParentID)
			if in.Picture != nil && *in.Picture != "" {
				path, err := helper.SaveBase64Image(*in.Picture, "students", in.FirstName+"-"+in.LastName)
				if err != nil {
					return err
				}
				student.StudentPicture = &path
			}
			if err := tx.Create(student).Error; err != nil {
				return err
			}

			for _, card := range in.FeeCards {
				feeCard := admissionModel.FeeCardModel{FeeCardStudentID: student.StudentID}
				if err := tx.Create(&feeCard).Error; err != nil {
					return err
				}
				if len(card.FeeItems) > 0 {
					items := make([]admissionModel.FeeItemModel, 0, len(card.FeeItems))
					for _, it := range card.FeeItems {
						items = append(items, it.ToModel(feeCard.FeeCardID))
					}
					if err := tx.Create(&items).Error; err != nil {
						return err
					}
					feeCard.FeeItems = items
				}
				student.FeeCards = append(student.FeeCards, feeCard)
			}

			for _, d := range in.Documents {
				path, err := helper.SaveBase64Image(d.Data, "documents", d.Name)
				if err != nil {
					return err
				}
				doc := admissionModel.StudentDocumentModel{
					DocumentStudentID: student.StudentID,
					DocumentName:      d.Name,
					DocumentPath:      path,
				}
				if d.Meta != nil {
					meta, err := json.Marshal(d.Meta)
					if err != nil {
						return err
					}
					doc.DocumentMeta = meta
				}
				if err := tx.Create(&doc).Error; err != nil {
					return err
				}
				student.Documents = append(student.Documents, doc)
			}

			students = append(students, *student)
		}
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "A parent with this CNIC already exists in this branch")
		}
		log.Printf("admission: transaction failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to process admission")
	}

	parent.Students = nil
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Admission created successfully", admissionDTO.AdmissionResponse{
		Parent:   parent,
		Students: students,
	})
}

/* ===================== SIMPLE CREATES ===================== */

// POST /admission/create-parent
func (h *AdmissionController) CreateParent(c *fiber.Ctx) error {
	var req admissionDTO.CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var branch branchModel.BranchModel
	if err := h.DB.First(&branch, "branch_id = ?", req.BranchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "branch not found")
		}
		log.Printf("create parent: branch lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while creating the parent")
	}

	parent := admissionDTO.AdmissionParentInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		CNIC:  req.CNIC,
	}.ToModel(req.BranchID)

	if err := h.DB.Create(parent).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "A parent with this email or CNIC already exists")
		}
		log.Printf("create parent: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while creating the parent")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Parent created successfully", parent)
}

// POST /admission/create-student
func (h *AdmissionController) CreateStudent(c *fiber.Ctx) error {
	var req admissionDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := h.DB.Model(&classModel.GradeModel{}).
		Where("grade_id = ? AND grade_class_id = ?", req.GradeID, req.ClassID).
		Count(&cnt).Error; err != nil {
		log.Printf("create student: grade check: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while creating the student")
	}
	if cnt == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "classId/gradeId does not resolve to an existing grade")
	}

	student := admissionDTO.AdmissionStudentInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		ClassID:   req.ClassID,
		GradeID:   req.GradeID,
	}.ToModel(req.ParentID)

	if err := h.DB.Create(student).Error; err != nil {
		log.Printf("create student: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while creating the student")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created successfully", student)
}

/* ===================== LIST / DELETE (generic engines) ===================== */

// GET /admission/parents
func (h *AdmissionController) ListParents(c *fiber.Ctx) error {
	return helper.List[admissionModel.ParentModel](c, h.DB, helper.ListConfig{
		SearchFields: []string{"parent_name", "parent_cnic"},
		FilterFields: map[string]string{"branchId": "parent_branch_id"},
		Preloads:     []string{"Students"},
		SortColumns: map[string]string{
			"createdAt": "parent_created_at",
			"name":      "parent_name",
			"id":        "parent_id",
		},
		DefaultSortBy:    "createdAt",
		DefaultSortOrder: "desc",
	})
}

// GET /admission/students
func (h *AdmissionController) ListStudents(c *fiber.Ctx) error {
	return helper.List[admissionModel.StudentModel](c, h.DB, helper.ListConfig{
		SearchFields: []string{"student_first_name", "student_last_name"},
		FilterFields: map[string]string{
			"classId":  "student_class_id",
			"gradeId":  "student_grade_id",
			"parentId": "student_parent_id",
		},
		Preloads: []string{"FeeCards", "FeeCards.FeeItems"},
		SortColumns: map[string]string{
			"createdAt": "student_created_at",
			"firstName": "student_first_name",
			"age":       "student_age",
			"id":        "student_id",
		},
		DefaultSortBy:    "createdAt",
		DefaultSortOrder: "desc",
	})
}

// DELETE /admission/parents and /admission/parents/:id
func (h *AdmissionController) DeleteParents(c *fiber.Ctx) error {
	return helper.Delete[admissionModel.ParentModel](c, h.DB, helper.DeleteConfig{
		SoftDelete:     true,
		CheckOwnership: h.parentsBelongToBranch,
	})
}

// DELETE /admission/students and /admission/students/:id
func (h *AdmissionController) DeleteStudents(c *fiber.Ctx) error {
	return helper.Delete[admissionModel.StudentModel](c, h.DB, helper.DeleteConfig{
		SoftDelete: true,
	})
}

// parentsBelongToBranch only allows deletes within the branch named in the
// query, so one branch cannot remove another branch's parents.
func (h *AdmissionController) parentsBelongToBranch(c *fiber.Ctx, ids []uint) (bool, error) {
	branchID := atoiQuery(c, "branchId")
	if branchID == 0 {
		// No branch scope requested: nothing to enforce.
		return true, nil
	}
	var cnt int64
	err := h.DB.Model(&admissionModel.ParentModel{}).
		Where("parent_id IN ? AND parent_branch_id <> ?", ids, branchID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

func paramUint(c *fiber.Ctx, name string) uint {
	n, err := c.ParamsInt(name)
	if err != nil || n <= 0 {
		return 0
	}
	return uint(n)
}

func atoiQuery(c *fiber.Ctx, name string) uint {
	n := c.QueryInt(name)
	if n <= 0 {
		return 0
	}
	return uint(n)
}
