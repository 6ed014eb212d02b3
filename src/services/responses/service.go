package responses

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	DB "Feedstream-Backend/src/database"
	"Feedstream-Backend/src/models"
	"Feedstream-Backend/src/services/forms"
	"Feedstream-Backend/src/services/notifications"
	"Feedstream-Backend/src/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// Submit stores one anonymous response against a form's access code.
//
// The duplicate-email lookup here is only the fast path; the unique
// partial index on (formId, email) is the authoritative guard, and a
// duplicate-key error from the insert is reported as the same conflict.
// Notification emission is fire-and-forget: it must never block or fail
// the submission.
func Submit(ctx context.Context, accessCode string, req *models.SubmitRequest) (*models.Response, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	form, err := forms.GetFormByAccessCode(ctx, accessCode)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email != "" {
		count, err := DB.ResponseCollection.CountDocuments(ctx, bson.M{"formId": form.ID, "email": email})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, utils.ErrConflict
		}
	}

	response := &models.Response{
		ID:             primitive.NewObjectID(),
		FormID:         form.ID,
		DepartmentID:   form.DepartmentID,
		OrganizationID: form.OrganizationID,
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		Phone:          strings.TrimSpace(req.Phone),
		SubmittedAt:    time.Now(),
		Answers:        NormalizeAnswers(req.Answers),
	}
	// Denormalize the form's first assignment for cheap filtering. A form
	// assigned to several staff/subjects only records the first pair.
	if len(form.SubjectIDs) > 0 {
		response.SubjectID = form.SubjectIDs[0]
	}
	if len(form.StaffIDs) > 0 {
		response.StaffID = form.StaffIDs[0]
	}

	if _, err := DB.ResponseCollection.InsertOne(ctx, response); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// lost the race with a concurrent submission
			return nil, utils.ErrConflict
		}
		return nil, err
	}

	notifications.EnqueueNewResponse(form, response)

	log.Printf("✅ Response stored: %s (form %s)", response.ID.Hex(), form.ID.Hex())
	return response, nil
}

// GetResponsesByForm lists a form's responses for a department caller,
// newest first, optionally narrowed to one subject.
func GetResponsesByForm(ctx context.Context, formID, orgID, deptID primitive.ObjectID, subjectID string, params models.PaginationParams) (*models.PaginatedResponse, error) {
	if _, err := forms.GetFormForDepartment(ctx, formID, orgID, deptID); err != nil {
		return nil, err
	}

	filter := bson.M{"formId": formID}
	if subjectID != "" {
		filter["subjectId"] = subjectID
	}

	total, err := DB.ResponseCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	cursor, err := DB.ResponseCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.Response
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(rows, total, params), nil
}

// LoadAllForForm fetches every response of a form (tenant-checked), for
// the CSV export path.
func LoadAllForForm(ctx context.Context, formID, orgID, deptID primitive.ObjectID, subjectID string) ([]models.Response, error) {
	if _, err := forms.GetFormForDepartment(ctx, formID, orgID, deptID); err != nil {
		return nil, err
	}

	filter := bson.M{"formId": formID}
	if subjectID != "" {
		filter["subjectId"] = subjectID
	}

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: 1}})
	rows, err := loadPrimary(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	legacy, err := loadLegacy(ctx, filter)
	if err != nil {
		// legacy table is optional; exports proceed without it
		log.Println("⚠️ Warning: legacy response load failed:", err)
		return rows, nil
	}
	return append(rows, legacy...), nil
}

// LoadScope fetches every response in an org+department scope, primary
// and legacy schemas combined, for the aggregation engine.
func LoadScope(ctx context.Context, orgID, deptID primitive.ObjectID, from, to *time.Time) ([]models.Response, error) {
	filter := bson.M{"organizationId": orgID, "departmentId": deptID}
	if from != nil || to != nil {
		window := bson.M{}
		if from != nil {
			window["$gte"] = *from
		}
		if to != nil {
			window["$lte"] = *to
		}
		filter["submittedAt"] = window
	}

	rows, err := loadPrimary(ctx, filter, options.Find())
	if err != nil {
		return nil, err
	}

	legacy, err := loadLegacy(ctx, filter)
	if err != nil {
		log.Println("⚠️ Warning: legacy response load failed:", err)
		return rows, nil
	}
	return append(rows, legacy...), nil
}

func loadPrimary(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Response, error) {
	cursor, err := DB.ResponseCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.Response
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// legacyRow is the simplified-schema shape: flat fields plus the answer
// map JSON-encoded into a single string column.
type legacyRow struct {
	ID             primitive.ObjectID `bson:"_id"`
	FormID         primitive.ObjectID `bson:"formId"`
	SubjectID      string             `bson:"subjectId"`
	StaffID        string             `bson:"staffId"`
	DepartmentID   primitive.ObjectID `bson:"departmentId"`
	OrganizationID primitive.ObjectID `bson:"organizationId"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	Phone          string             `bson:"phone"`
	SubmittedAt    time.Time          `bson:"submittedAt"`
	Answers        interface{}        `bson:"answers"`
}

// loadLegacy reads the legacy collection through the same Response shape
// the rest of the engine consumes, so no caller knows which schema a row
// came from.
func loadLegacy(ctx context.Context, filter bson.M) ([]models.Response, error) {
	cursor, err := DB.LegacyResponseCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("legacy responses: %w", err)
	}
	defer cursor.Close(ctx)

	var raw []legacyRow
	if err = cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("legacy responses: %w", err)
	}

	rows := make([]models.Response, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, models.Response{
			ID:             r.ID,
			FormID:         r.FormID,
			SubjectID:      r.SubjectID,
			StaffID:        r.StaffID,
			DepartmentID:   r.DepartmentID,
			OrganizationID: r.OrganizationID,
			Name:           r.Name,
			Email:          r.Email,
			Phone:          r.Phone,
			SubmittedAt:    r.SubmittedAt,
			Answers:        ParseAnswerMap(r.Answers),
		})
	}
	return rows, nil
}
