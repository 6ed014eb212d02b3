package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Form แบบฟอร์มรับ feedback ของแผนก
//
// Questions holds the raw stored entries: a bare numeric id, a partial
// object carrying only an id, or a fully inlined question object. The
// questions service normalizes them; nothing else branches on the shape.
type Form struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrganizationID primitive.ObjectID `bson:"organizationId" json:"organizationId"`
	DepartmentID   primitive.ObjectID `bson:"departmentId" json:"departmentId"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	AccessCode     string             `bson:"accessCode" json:"accessCode"`
	Audience       string             `bson:"audience,omitempty" json:"audience,omitempty"`
	Semester       string             `bson:"semester,omitempty" json:"semester,omitempty"`
	StaffIDs       []string           `bson:"staffIds,omitempty" json:"staffIds,omitempty"`
	SubjectIDs     []string           `bson:"subjectIds,omitempty" json:"subjectIds,omitempty"`
	Questions      []interface{}      `bson:"questions,omitempty" json:"questions,omitempty"`
	StartDate      *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate        *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// CreateFormRequest รับข้อมูลสร้างฟอร์มจาก client
type CreateFormRequest struct {
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description"`
	Audience    string        `json:"audience"`
	Semester    string        `json:"semester"`
	StaffIDs    []string      `json:"staffIds"`
	SubjectIDs  []string      `json:"subjectIds"`
	Questions   []interface{} `json:"questions"`
	StartDate   *time.Time    `json:"startDate"`
	EndDate     *time.Time    `json:"endDate"`
}

// UpdateFormRequest แก้ไขฟอร์ม - access code ไม่เปลี่ยน
type UpdateFormRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	IsActive    *bool         `json:"isActive"`
	Audience    *string       `json:"audience"`
	Semester    *string       `json:"semester"`
	StaffIDs    []string      `json:"staffIds"`
	SubjectIDs  []string      `json:"subjectIds"`
	Questions   []interface{} `json:"questions"`
	StartDate   *time.Time    `json:"startDate"`
	EndDate     *time.Time    `json:"endDate"`
}

// PublicForm is what an anonymous respondent sees when opening an access
// code: the normalized question list plus display context for the first
// assigned staff/subject.
type PublicForm struct {
	ID          primitive.ObjectID   `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Audience    string               `json:"audience,omitempty"`
	Semester    string               `json:"semester,omitempty"`
	StaffName   string               `json:"staffName,omitempty"`
	SubjectName string               `json:"subjectName,omitempty"`
	Questions   []NormalizedQuestion `json:"questions"`
}
