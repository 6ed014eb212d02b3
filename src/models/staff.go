package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Staff บุคลากรของแผนก
//
// Subjects is a legacy denormalized field kept by deployments that never
// got the staffSubjects mapping collection: either a JSON-encoded array of
// subject ids or a comma-separated string. The filter resolver falls back
// to it when the mapping is missing.
type Staff struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DepartmentID primitive.ObjectID `bson:"departmentId" json:"departmentId"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Position     string             `bson:"position,omitempty" json:"position,omitempty"`
	Subjects     string             `bson:"subjects,omitempty" json:"-"`
}

// Subject วิชาของแผนก
type Subject struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DepartmentID primitive.ObjectID `bson:"departmentId" json:"departmentId"`
	Name         string             `bson:"name" json:"name"`
	Code         string             `bson:"code,omitempty" json:"code,omitempty"`
	Semester     string             `bson:"semester,omitempty" json:"semester,omitempty"`
}
