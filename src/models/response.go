package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response คำตอบของผู้ตอบแบบฟอร์มหนึ่งคน
//
// Subject/staff/department/organization ids are denormalized from the
// form's first assignment at submission time so analytics can filter
// without joins. Answers maps question id (as string) to the raw value a
// respondent supplied: string, number, bool, or array of strings.
type Response struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	FormID         primitive.ObjectID     `bson:"formId" json:"formId"`
	SubjectID      string                 `bson:"subjectId,omitempty" json:"subjectId,omitempty"`
	StaffID        string                 `bson:"staffId,omitempty" json:"staffId,omitempty"`
	DepartmentID   primitive.ObjectID     `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
	OrganizationID primitive.ObjectID     `bson:"organizationId,omitempty" json:"organizationId,omitempty"`
	Name           string                 `bson:"name,omitempty" json:"name,omitempty"`
	Email          string                 `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string                 `bson:"phone,omitempty" json:"phone,omitempty"`
	SubmittedAt    time.Time              `bson:"submittedAt" json:"submittedAt"`
	Answers        map[string]interface{} `bson:"answers,omitempty" json:"answers,omitempty"`
}

// SubmitRequest is the public submission payload. Answers is either an
// already-keyed map or an array of {questionId|questionKey, answer} pairs.
type SubmitRequest struct {
	Name    string      `json:"name" validate:"required"`
	Email   string      `json:"email" validate:"omitempty,email"`
	Phone   string      `json:"phone"`
	Answers interface{} `json:"answers"`
}
