package dto

import (
	"strings"

	policyModel "schoolms_backend/internals/features/policies/model"
)

type CreatePolicyRequest struct {
	PolicyName        string  `json:"policyName" validate:"required"`
	PolicyDescription *string `json:"policyDescription"`
	PolicyType        string  `json:"policyType" validate:"required"`

	EventsList     []EventInput     `json:"eventsList" validate:"dive"`
	ExceptionsList []ExceptionInput `json:"exceptionsList" validate:"dive"`
}

type EventInput struct {
	EventName        string  `json:"eventName" validate:"required"`
	EventDescription *string `json:"eventDescription"`
}

type ExceptionInput struct {
	ExceptionType    string  `json:"exceptionType" validate:"required"`
	LeaveType        *string `json:"leaveType"`
	Limit            *int    `json:"limit"`
	ExceptionDetails *string `json:"exceptionDetails"`
}

func (in CreatePolicyRequest) ToModel(branchID, adminID uint) *policyModel.DeductionPolicyModel {
	return &policyModel.DeductionPolicyModel{
		PolicyName:        strings.TrimSpace(in.PolicyName),
		PolicyDescription: in.PolicyDescription,
		PolicyType:        strings.TrimSpace(in.PolicyType),
		PolicyBranchID:    branchID,
		PolicyAdminID:     adminID,
	}
}

func (in EventInput) ToModel() policyModel.EventModel {
	return policyModel.EventModel{
		EventName:        strings.TrimSpace(in.EventName),
		EventDescription: in.EventDescription,
	}
}

func (in ExceptionInput) ToModel() policyModel.ExceptionModel {
	return policyModel.ExceptionModel{
		ExceptionType:      strings.TrimSpace(in.ExceptionType),
		ExceptionLeaveType: in.LeaveType,
		ExceptionLimit:     in.Limit,
		ExceptionDetails:   in.ExceptionDetails,
	}
}
