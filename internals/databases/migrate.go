package database

import (
	"log"

	"gorm.io/gorm"

	adminModel "schoolms_backend/internals/features/admins/model"
	admissionModel "schoolms_backend/internals/features/admissions/model"
	branchModel "schoolms_backend/internals/features/branches/model"
	classModel "schoolms_backend/internals/features/classes/model"
	feeModel "schoolms_backend/internals/features/fees/model"
	policyModel "schoolms_backend/internals/features/policies/model"
)

// Natural keys on soft-deletable tables are only unique among live rows,
// so the indexes are partial: a soft-deleted branch, parent, policy or fee
// structure does not block recreating the same key. AutoMigrate cannot
// express the WHERE clause, hence raw DDL.
var partialUniqueIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_admins_email
		ON admins (admin_email) WHERE admin_deleted_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_branches_name_address
		ON branches (branch_name, branch_address) WHERE branch_deleted_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_parents_email
		ON parents (parent_email) WHERE parent_deleted_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_parents_cnic_per_branch
		ON parents (parent_branch_id, parent_cnic) WHERE parent_deleted_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_policies_name
		ON deduction_policies (policy_name) WHERE policy_deleted_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_fee_structures_branch
		ON fee_structures (fee_structure_branch_id) WHERE fee_structure_deleted_at IS NULL`,
}

// Migrate creates/updates the schema, including the unique indexes the
// duplicate checks rely on.
func Migrate() {
	err := DB.AutoMigrate(
		&adminModel.AdminModel{},
		&branchModel.BranchModel{},
		&classModel.ClassModel{},
		&classModel.GradeModel{},
		&admissionModel.ParentModel{},
		&admissionModel.StudentModel{},
		&admissionModel.FeeCardModel{},
		&admissionModel.FeeItemModel{},
		&admissionModel.StudentDocumentModel{},
		&feeModel.FeeStructureModel{},
		&feeModel.FeePaymentModel{},
		&policyModel.DeductionPolicyModel{},
		&policyModel.EventModel{},
		&policyModel.ExceptionModel{},
		&policyModel.PolicyEventModel{},
		&policyModel.PolicyExceptionModel{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := applyPartialUniqueIndexes(DB); err != nil {
		log.Fatalf("partial unique indexes failed: %v", err)
	}
	log.Println("schema migrated")
}

func applyPartialUniqueIndexes(db *gorm.DB) error {
	for _, ddl := range partialUniqueIndexes {
		if err := db.Exec(ddl).Error; err != nil {
			return err
		}
	}
	return nil
}
