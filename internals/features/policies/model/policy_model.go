package model

import (
	"time"

	"gorm.io/gorm"
)

type DeductionPolicyModel struct {
	PolicyID uint `gorm:"primaryKey;column:policy_id" json:"id"`
	// Name uniqueness is global, matching the duplicate check scope.
	// Unique among live policies via a partial index (see Migrate).
	PolicyName        string  `gorm:"type:varchar(120);not null;column:policy_name;index" json:"policyName"`
	PolicyDescription *string `gorm:"column:policy_description" json:"policyDescription,omitempty"`
	PolicyType        string  `gorm:"type:varchar(60);not null;column:policy_type" json:"policyType"`
	PolicyBranchID    uint    `gorm:"not null;column:policy_branch_id;index" json:"branchId"`
	PolicyAdminID     uint    `gorm:"not null;column:policy_admin_id;index" json:"adminId"`

	Events     []PolicyEventModel     `gorm:"foreignKey:PolicyEventPolicyID;constraint:OnDelete:CASCADE" json:"events,omitempty"`
	Exceptions []PolicyExceptionModel `gorm:"foreignKey:PolicyExceptionPolicyID;constraint:OnDelete:CASCADE" json:"exceptionsList,omitempty"`

	PolicyCreatedAt time.Time      `gorm:"column:policy_created_at;autoCreateTime" json:"createdAt"`
	PolicyUpdatedAt time.Time      `gorm:"column:policy_updated_at;autoUpdateTime" json:"updatedAt"`
	PolicyDeletedAt gorm.DeletedAt `gorm:"column:policy_deleted_at;index" json:"-"`
}

func (DeductionPolicyModel) TableName() string { return "deduction_policies" }

func (m DeductionPolicyModel) PrimaryKey() uint    { return m.PolicyID }
func (DeductionPolicyModel) PrimaryColumn() string { return "policy_id" }

type EventModel struct {
	EventID          uint    `gorm:"primaryKey;column:event_id" json:"id"`
	EventName        string  `gorm:"type:varchar(120);not null;column:event_name;uniqueIndex:uq_events_name" json:"eventName"`
	EventDescription *string `gorm:"column:event_description" json:"eventDescription,omitempty"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"createdAt"`
}

func (EventModel) TableName() string { return "events" }

func (m EventModel) PrimaryKey() uint    { return m.EventID }
func (EventModel) PrimaryColumn() string { return "event_id" }

type ExceptionModel struct {
	ExceptionID        uint    `gorm:"primaryKey;column:exception_id" json:"id"`
	ExceptionType      string  `gorm:"type:varchar(120);not null;column:exception_type;uniqueIndex:uq_exceptions_type" json:"exceptionType"`
	ExceptionLeaveType *string `gorm:"type:varchar(60);column:exception_leave_type" json:"leaveType,omitempty"`
	ExceptionLimit     *int    `gorm:"column:exception_limit" json:"limit,omitempty"`
	ExceptionDetails   *string `gorm:"column:exception_details" json:"exceptionDetails,omitempty"`

	ExceptionCreatedAt time.Time `gorm:"column:exception_created_at;autoCreateTime" json:"createdAt"`
}

func (ExceptionModel) TableName() string { return "exceptions" }

func (m ExceptionModel) PrimaryKey() uint    { return m.ExceptionID }
func (ExceptionModel) PrimaryColumn() string { return "exception_id" }

// Join rows. Connect-or-create attaches an existing event/exception by its
// natural key, creating it first when none matches.
type PolicyEventModel struct {
	PolicyEventID       uint `gorm:"primaryKey;column:policy_event_id" json:"id"`
	PolicyEventPolicyID uint `gorm:"not null;column:policy_event_policy_id;uniqueIndex:uq_policy_events" json:"policyId"`
	PolicyEventEventID  uint `gorm:"not null;column:policy_event_event_id;uniqueIndex:uq_policy_events" json:"eventId"`

	Event *EventModel `gorm:"foreignKey:PolicyEventEventID" json:"event,omitempty"`
}

func (PolicyEventModel) TableName() string { return "policy_events" }

type PolicyExceptionModel struct {
	PolicyExceptionID          uint `gorm:"primaryKey;column:policy_exception_id" json:"id"`
	PolicyExceptionPolicyID    uint `gorm:"not null;column:policy_exception_policy_id;uniqueIndex:uq_policy_exceptions" json:"policyId"`
	PolicyExceptionExceptionID uint `gorm:"not null;column:policy_exception_exception_id;uniqueIndex:uq_policy_exceptions" json:"exceptionId"`

	Exception *ExceptionModel `gorm:"foreignKey:PolicyExceptionExceptionID" json:"exception,omitempty"`
}

func (PolicyExceptionModel) TableName() string { return "policy_exceptions" }
