package dto

import (
	"strings"

	classModel "schoolms_backend/internals/features/classes/model"
)

type GradeInput struct {
	GradeLetter     string `json:"gradeLetter" validate:"required,max=4"`
	StudentCapacity int    `json:"studentCapacity" validate:"required,min=1"`
}

type CreateClassRequest struct {
	ClassName string       `json:"className" validate:"required"`
	BranchID  uint         `json:"branchId" validate:"required"`
	Grades    []GradeInput `json:"grades" validate:"required,min=1,dive"`
}

type AddGradesRequest struct {
	BranchID uint         `json:"branchId" validate:"required"`
	Grades   []GradeInput `json:"grades" validate:"required,min=1,dive"`
}

type CreateGradeRequest struct {
	BranchID        uint   `json:"branchId" validate:"required"`
	ClassID         uint   `json:"classId" validate:"required"`
	GradeLetter     string `json:"gradeLetter" validate:"required,max=4"`
	StudentCapacity int    `json:"studentCapacity" validate:"required,min=1"`
}

func (in GradeInput) ToModel(classID uint) classModel.GradeModel {
	return classModel.GradeModel{
		GradeLetter:          strings.ToUpper(strings.TrimSpace(in.GradeLetter)),
		GradeStudentCapacity: in.StudentCapacity,
		GradeClassID:         classID,
	}
}

func (in CreateClassRequest) ToModel() *classModel.ClassModel {
	m := &classModel.ClassModel{
		ClassName:     strings.TrimSpace(in.ClassName),
		ClassBranchID: in.BranchID,
	}
	for _, g := range in.Grades {
		m.Grades = append(m.Grades, g.ToModel(0))
	}
	return m
}

// ClassSummary is the shape get-classes returns per row.
type ClassSummary struct {
	ID              uint     `json:"id"`
	ClassName       string   `json:"className"`
	GradesCount     int      `json:"gradesCount"`
	GradeLetter     []string `json:"gradeLetter"`
	StudentCapacity []int    `json:"studentCapacity"`
	TotalCapacity   int      `json:"totalCapacity"`
}

func NewClassSummary(m *classModel.ClassModel) ClassSummary {
	s := ClassSummary{
		ID:          m.ClassID,
		ClassName:   m.ClassName,
		GradesCount: len(m.Grades),
	}
	for _, g := range m.Grades {
		s.GradeLetter = append(s.GradeLetter, g.GradeLetter)
		s.StudentCapacity = append(s.StudentCapacity, g.GradeStudentCapacity)
		s.TotalCapacity += g.GradeStudentCapacity
	}
	return s
}

type BulkClassResult struct {
	Class         *classModel.ClassModel `json:"class"`
	GradesCreated int64                  `json:"gradesCreated"`
}
