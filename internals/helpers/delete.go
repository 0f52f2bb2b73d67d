package helper

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OwnershipCheck decides whether the caller may delete the given rows.
// It runs before any mutation.
type OwnershipCheck func(c *fiber.Ctx, ids []uint) (bool, error)

// DeleteConfig describes how one entity collection is deleted.
type DeleteConfig struct {
	IDParam        string // path param name, defaults to "id"
	SoftDelete     bool   // scope out via deleted_at instead of removing the row
	CheckOwnership OwnershipCheck
}

type deleteIDsRequest struct {
	IDs []uint `json:"ids"`
}

// Delete removes one row (path id) or many rows (body ids, which wins when
// present and non-empty). Bulk delete follows deleteMany semantics: ids that
// match nothing are not an error.
func Delete[T any](c *fiber.Ctx, db *gorm.DB, cfg DeleteConfig) error {
	idParam := cfg.IDParam
	if idParam == "" {
		idParam = "id"
	}

	var body deleteIDsRequest
	// Body is optional for single deletes, so a parse failure is not fatal.
	_ = c.BodyParser(&body)

	if len(body.IDs) > 0 {
		if cfg.CheckOwnership != nil {
			allowed, err := cfg.CheckOwnership(c, body.IDs)
			if err != nil {
				log.Printf("generic delete error: ownership check: %v", err)
				return Error(c, fiber.StatusInternalServerError, "Something went wrong while deleting")
			}
			if !allowed {
				return Error(c, fiber.StatusForbidden, "You are not authorized to delete these items")
			}
		}

		res := deleteByIDs[T](db, cfg.SoftDelete, body.IDs)
		if res.Error != nil {
			log.Printf("generic delete error: %v ids=%v", res.Error, body.IDs)
			return Error(c, fiber.StatusInternalServerError, "Something went wrong while deleting")
		}
		return Success(c, "Items deleted successfully", fiber.Map{
			"deletedCount": res.RowsAffected,
		})
	}

	if raw := c.Params(idParam); raw != "" {
		id := atoiDefault(raw, 0)
		if id <= 0 {
			return Error(c, fiber.StatusBadRequest, "No valid ID(s) provided for deletion")
		}
		if cfg.CheckOwnership != nil {
			allowed, err := cfg.CheckOwnership(c, []uint{uint(id)})
			if err != nil {
				log.Printf("generic delete error: ownership check: %v", err)
				return Error(c, fiber.StatusInternalServerError, "Something went wrong while deleting")
			}
			if !allowed {
				return Error(c, fiber.StatusForbidden, "You are not authorized to delete this item")
			}
		}

		res := deleteByIDs[T](db, cfg.SoftDelete, []uint{uint(id)})
		if res.Error != nil {
			log.Printf("generic delete error: %v id=%d", res.Error, id)
			return Error(c, fiber.StatusInternalServerError, "Something went wrong while deleting")
		}
		return Success(c, "Item deleted successfully", fiber.Map{
			"id":           id,
			"deletedCount": res.RowsAffected,
		})
	}

	return Error(c, fiber.StatusBadRequest, "No valid ID(s) provided for deletion")
}

func deleteByIDs[T any](db *gorm.DB, soft bool, ids []uint) *gorm.DB {
	var model T
	if soft {
		return db.Delete(&model, ids)
	}
	return db.Unscoped().Delete(&model, ids)
}
