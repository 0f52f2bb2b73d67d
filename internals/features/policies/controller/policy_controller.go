package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	policyDTO "schoolms_backend/internals/features/policies/dto"
	policyModel "schoolms_backend/internals/features/policies/model"
	helper "schoolms_backend/internals/helpers"
)

type PolicyController struct {
	DB *gorm.DB
}

func NewPolicyController(db *gorm.DB) *PolicyController {
	return &PolicyController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /policy/:branchId/:adminId/create-new-policy
//
// Creates the policy together with its event/exception links. Referenced
// events and exceptions are matched by natural key and created on demand;
// the whole graph commits or rolls back as one unit.
func (h *PolicyController) CreatePolicy(c *fiber.Ctx) error {
	branchID, err1 := c.ParamsInt("branchId")
	adminID, err2 := c.ParamsInt("adminId")
	if err1 != nil || err2 != nil || branchID <= 0 || adminID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "branchId and adminId are required")
	}

	var req policyDTO.CreatePolicyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if strings.TrimSpace(req.PolicyName) == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Policy name cannot be empty.")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Name scope is global; the unique index is authoritative under races.
	var dup int64
	if err := h.DB.Model(&policyModel.DeductionPolicyModel{}).
		Where("policy_name = ?", strings.TrimSpace(req.PolicyName)).
		Count(&dup).Error; err != nil {
		log.Printf("create policy: duplicate check: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while creating the policy")
	}
	if dup > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Policy already exists.")
	}

	policy := req.ToModel(uint(branchID), uint(adminID))

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(policy).Error; err != nil {
			return err
		}

		for _, in := range req.EventsList {
			event := in.ToModel()
			if err := tx.Where("event_name = ?", event.EventName).
				Attrs(policyModel.EventModel{EventDescription: event.EventDescription}).
				FirstOrCreate(&event).Error; err != nil {
				return err
			}
			join := policyModel.PolicyEventModel{
				PolicyEventPolicyID: policy.PolicyID,
				PolicyEventEventID:  event.EventID,
			}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
			join.Event = &event
			policy.Events = append(policy.Events, join)
		}

		for _, in := range req.ExceptionsList {
			exception := in.ToModel()
			if err := tx.Where("exception_type = ?", exception.ExceptionType).
				Attrs(policyModel.ExceptionModel{
					ExceptionLeaveType: exception.ExceptionLeaveType,
					ExceptionLimit:     exception.ExceptionLimit,
					ExceptionDetails:   exception.ExceptionDetails,
				}).
				FirstOrCreate(&exception).Error; err != nil {
				return err
			}
			join := policyModel.PolicyExceptionModel{
				PolicyExceptionPolicyID:    policy.PolicyID,
				PolicyExceptionExceptionID: exception.ExceptionID,
			}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
			join.Exception = &exception
			policy.Exceptions = append(policy.Exceptions, join)
		}
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Policy already exists.")
		}
		log.Printf("create policy: transaction failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while creating the policy")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Policy created successfully!", policy)
}

// GET /policy/get-policies
func (h *PolicyController) GetPolicies(c *fiber.Ctx) error {
	return helper.List[policyModel.DeductionPolicyModel](c, h.DB, helper.ListConfig{
		SearchFields: []string{"policy_name", "policy_description"},
		FilterFields: map[string]string{"policyType": "policy_type"},
		Preloads:     []string{"Events.Event", "Exceptions.Exception"},
		SortColumns: map[string]string{
			"createdAt":  "policy_created_at",
			"policyName": "policy_name",
			"id":         "policy_id",
		},
		DefaultSortBy:    "createdAt",
		DefaultSortOrder: "desc",
		SearchMode:       true,
	})
}

// DELETE /policy and /policy/:id
func (h *PolicyController) DeletePolicies(c *fiber.Ctx) error {
	return helper.Delete[policyModel.DeductionPolicyModel](c, h.DB, helper.DeleteConfig{
		SoftDelete: true,
	})
}

/* ===================== EVENTS / EXCEPTIONS ===================== */

// POST /policy/events
func (h *PolicyController) CreateEvent(c *fiber.Ctx) error {
	var req policyDTO.EventInput
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	event := req.ToModel()
	if err := h.DB.Create(&event).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "An event with this name already exists")
		}
		log.Printf("create event: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created successfully", event)
}

// POST /policy/exceptions
func (h *PolicyController) CreateException(c *fiber.Ctx) error {
	var req policyDTO.ExceptionInput
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	exception := req.ToModel()
	if err := h.DB.Create(&exception).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "An exception with this type already exists")
		}
		log.Printf("create exception: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create exception")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exception created successfully", exception)
}

// GET /policy/get-events
func (h *PolicyController) GetEvents(c *fiber.Ctx) error {
	var events []policyModel.EventModel
	if err := h.DB.Order("event_name asc").Find(&events).Error; err != nil {
		log.Printf("get events: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to get events")
	}
	return helper.Success(c, "Data fetched successfully", events)
}

// GET /policy/get-exceptions
func (h *PolicyController) GetExceptions(c *fiber.Ctx) error {
	var exceptions []policyModel.ExceptionModel
	if err := h.DB.Order("exception_type asc").Find(&exceptions).Error; err != nil {
		log.Printf("get exceptions: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to get exceptions")
	}
	return helper.Success(c, "Data fetched successfully", exceptions)
}
