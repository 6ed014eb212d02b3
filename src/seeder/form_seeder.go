package seeder

import (
	"context"
	"log"
	"time"

	DB "Feedstream-Backend/src/database"
	"Feedstream-Backend/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedSampleData creates a department scope with staff, subjects, their
// mapping rows and one feedback form that exercises every stored
// question shape (catalog reference, partial object, inline object) and
// the legacy type vocabulary. Intended for development databases only.
func SeedSampleData(ctx context.Context) error {
	count, err := DB.FormCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("⚠️ Database not empty, skipping sample data seed")
		return nil
	}

	orgID := primitive.NewObjectID()
	deptID := primitive.NewObjectID()

	subjects := []models.Subject{
		{ID: primitive.NewObjectID(), DepartmentID: deptID, Name: "Data Structures", Code: "CS201", Semester: "3"},
		{ID: primitive.NewObjectID(), DepartmentID: deptID, Name: "Operating Systems", Code: "CS301", Semester: "5"},
	}
	staff := []models.Staff{
		{ID: primitive.NewObjectID(), DepartmentID: deptID, Name: "A. Sharma", Email: "a.sharma@example.edu", Position: "Assistant Professor"},
		{ID: primitive.NewObjectID(), DepartmentID: deptID, Name: "R. Iyer", Email: "r.iyer@example.edu", Position: "Professor"},
	}

	for _, s := range subjects {
		if _, err := DB.SubjectCollection.InsertOne(ctx, s); err != nil {
			return err
		}
	}
	for _, s := range staff {
		if _, err := DB.StaffCollection.InsertOne(ctx, s); err != nil {
			return err
		}
	}
	links := []interface{}{
		bson.M{"staffId": staff[0].ID.Hex(), "subjectId": subjects[0].ID.Hex()},
		bson.M{"staffId": staff[1].ID.Hex(), "subjectId": subjects[1].ID.Hex()},
	}
	if _, err := DB.StaffSubjectCollection.InsertMany(ctx, links); err != nil {
		return err
	}

	// catalog question referenced by bare id from the form
	catalogQ := models.Question{
		ID:      primitive.NewObjectID(),
		Text:    "How would you rate the course overall?",
		Type:    "RATING",
		Options: "1|2|3|4|5",
	}
	if _, err := DB.QuestionCollection.InsertOne(ctx, catalogQ); err != nil {
		return err
	}

	now := time.Now()
	form := models.Form{
		ID:             primitive.NewObjectID(),
		OrganizationID: orgID,
		DepartmentID:   deptID,
		Title:          "Course Feedback - Data Structures",
		Description:    "Anonymous end-of-term feedback",
		IsActive:       true,
		AccessCode:     uuid.NewString(),
		Audience:       "students",
		Semester:       "3",
		StaffIDs:       []string{staff[0].ID.Hex()},
		SubjectIDs:     []string{subjects[0].ID.Hex()},
		Questions: []interface{}{
			catalogQ.ID.Hex(), // bare reference into the catalog
			bson.M{
				"id":      "q-clarity",
				"text":    "The lectures were clear and well structured.",
				"type":    "MCQ_S004",
				"options": "Strongly Disagree,Disagree,Neutral,Agree,Strongly Agree",
			},
			bson.M{
				"id":      "q-materials",
				"text":    "Which materials did you use?",
				"type":    "MCQ_M002",
				"options": []string{"Slides", "Textbook", "Recordings", "Lab sheets"},
			},
			bson.M{
				"id":   "q-recommend",
				"text": "Would you recommend this course?",
				"type": "TRUE_FALSE",
			},
			bson.M{
				"id":   "q-comments",
				"text": "Any other comments?",
				"type": "LONG_TEXT",
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := DB.FormCollection.InsertOne(ctx, form); err != nil {
		return err
	}

	log.Printf("✅ Sample data seeded (form access code: %s)", form.AccessCode)
	return nil
}
