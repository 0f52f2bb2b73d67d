package dto

import (
	"strings"

	adminModel "schoolms_backend/internals/features/admins/model"
)

type RegisterAdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func (in RegisterAdminRequest) ToModel(hashedPassword string) *adminModel.AdminModel {
	return &adminModel.AdminModel{
		AdminName:     strings.TrimSpace(in.Name),
		AdminEmail:    strings.ToLower(strings.TrimSpace(in.Email)),
		AdminPhone:    strings.TrimSpace(in.Phone),
		AdminPassword: hashedPassword,
	}
}
