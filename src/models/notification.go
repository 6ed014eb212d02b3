package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a record the inbox UI reads. Written best-effort by the
// background worker; losing one never fails a submission.
type Notification struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type         string             `bson:"type" json:"type"`
	FormID       primitive.ObjectID `bson:"formId" json:"formId"`
	ResponseID   primitive.ObjectID `bson:"responseId,omitempty" json:"responseId,omitempty"`
	DepartmentID primitive.ObjectID `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
	Title        string             `bson:"title" json:"title"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
