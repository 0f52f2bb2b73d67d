package dto

import (
	"strings"

	branchModel "schoolms_backend/internals/features/branches/model"
)

type CreateBranchRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type UpdateBranchRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (in CreateBranchRequest) ToModel(adminID uint) *branchModel.BranchModel {
	return &branchModel.BranchModel{
		BranchName:    strings.TrimSpace(in.Name),
		BranchAddress: strings.TrimSpace(in.Address),
		BranchAdminID: adminID,
	}
}

func (in UpdateBranchRequest) ApplyToModel(m *branchModel.BranchModel) {
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		m.BranchName = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil && strings.TrimSpace(*in.Address) != "" {
		m.BranchAddress = strings.TrimSpace(*in.Address)
	}
}
