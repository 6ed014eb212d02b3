package analytics

import (
	"context"
	"log"
	"time"

	DB "Feedstream-Backend/src/database"
	"Feedstream-Backend/src/models"
	"Feedstream-Backend/src/services/questions"
	"Feedstream-Backend/src/services/responses"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetScopeAnalytics assembles the aggregation inputs for one
// org+department scope and runs the fold. Metadata lookups that fail
// degrade to empty indexes (synthesized labels, keyword-only rating
// inference) rather than failing the query.
func GetScopeAnalytics(ctx context.Context, orgID, deptID primitive.ObjectID, from, to *time.Time, filter Filter) (*models.FormAnalytics, error) {
	rows, err := responses.LoadScope(ctx, orgID, deptID, from, to)
	if err != nil {
		return nil, err
	}

	in := Inputs{
		Questions: loadQuestionIndex(ctx, orgID, deptID),
		Subjects:  loadSubjectIndex(ctx, deptID),
		Staff:     loadStaffIndex(ctx, deptID),
	}

	return Aggregate(rows, in, filter), nil
}

// loadQuestionIndex normalizes every form in scope and indexes the
// canonical questions by id, so answer keys resolve regardless of which
// form (or form version) produced them.
func loadQuestionIndex(ctx context.Context, orgID, deptID primitive.ObjectID) map[string]models.NormalizedQuestion {
	index := map[string]models.NormalizedQuestion{}

	cursor, err := DB.FormCollection.Find(ctx, bson.M{"organizationId": orgID, "departmentId": deptID})
	if err != nil {
		log.Println("⚠️ Warning: form load for question index failed:", err)
		return index
	}
	defer cursor.Close(ctx)

	var forms []models.Form
	if err = cursor.All(ctx, &forms); err != nil {
		log.Println("⚠️ Warning: form decode for question index failed:", err)
		return index
	}

	for i := range forms {
		normalized, err := questions.NormalizeForForm(ctx, &forms[i])
		if err != nil {
			log.Println("⚠️ Warning: question normalization failed for form", forms[i].ID.Hex(), ":", err)
			continue
		}
		for _, q := range normalized {
			if _, seen := index[q.ID]; !seen {
				index[q.ID] = q
			}
		}
	}
	return index
}

func loadSubjectIndex(ctx context.Context, deptID primitive.ObjectID) map[string]models.Subject {
	index := map[string]models.Subject{}

	cursor, err := DB.SubjectCollection.Find(ctx, bson.M{"departmentId": deptID})
	if err != nil {
		log.Println("⚠️ Warning: subject load failed:", err)
		return index
	}
	defer cursor.Close(ctx)

	var subjects []models.Subject
	if err = cursor.All(ctx, &subjects); err != nil {
		log.Println("⚠️ Warning: subject decode failed:", err)
		return index
	}
	for _, s := range subjects {
		index[s.ID.Hex()] = s
	}
	return index
}

func loadStaffIndex(ctx context.Context, deptID primitive.ObjectID) map[string]models.Staff {
	index := map[string]models.Staff{}

	cursor, err := DB.StaffCollection.Find(ctx, bson.M{"departmentId": deptID})
	if err != nil {
		log.Println("⚠️ Warning: staff load failed:", err)
		return index
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err = cursor.All(ctx, &staff); err != nil {
		log.Println("⚠️ Warning: staff decode failed:", err)
		return index
	}
	for _, s := range staff {
		index[s.ID.Hex()] = s
	}
	return index
}
