package model

import (
	"time"

	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID       uint   `gorm:"primaryKey;column:class_id" json:"id"`
	ClassName     string `gorm:"type:varchar(60);not null;column:class_name;uniqueIndex:uq_classes_name" json:"className"`
	ClassBranchID uint   `gorm:"not null;column:class_branch_id;index" json:"branchId"`

	Grades []GradeModel `gorm:"foreignKey:GradeClassID;constraint:OnDelete:CASCADE" json:"grades,omitempty"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"createdAt"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;autoUpdateTime" json:"updatedAt"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (ClassModel) TableName() string { return "classes" }

func (m ClassModel) PrimaryKey() uint    { return m.ClassID }
func (ClassModel) PrimaryColumn() string { return "class_id" }

type GradeModel struct {
	GradeID              uint   `gorm:"primaryKey;column:grade_id" json:"id"`
	GradeLetter          string `gorm:"type:varchar(4);not null;column:grade_letter;uniqueIndex:uq_grades_letter_per_class" json:"gradeLetter"`
	GradeStudentCapacity int    `gorm:"not null;column:grade_student_capacity" json:"studentCapacity"`
	GradeClassID         uint   `gorm:"not null;column:grade_class_id;index;uniqueIndex:uq_grades_letter_per_class" json:"classId"`

	GradeCreatedAt time.Time `gorm:"column:grade_created_at;autoCreateTime" json:"createdAt"`
	GradeUpdatedAt time.Time `gorm:"column:grade_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (GradeModel) TableName() string { return "grades" }

func (m GradeModel) PrimaryKey() uint    { return m.GradeID }
func (GradeModel) PrimaryColumn() string { return "grade_id" }
