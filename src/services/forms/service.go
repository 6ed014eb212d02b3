package forms

import (
	"context"
	"fmt"
	"log"
	"time"

	DB "Feedstream-Backend/src/database"
	"Feedstream-Backend/src/models"
	"Feedstream-Backend/src/services/questions"
	"Feedstream-Backend/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// CreateForm creates a department form and mints its access code. The
// code is issued exactly once; updates never touch it.
func CreateForm(ctx context.Context, orgID, deptID primitive.ObjectID, req *models.CreateFormRequest) (*models.Form, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	now := time.Now()
	form := &models.Form{
		OrganizationID: orgID,
		DepartmentID:   deptID,
		Title:          req.Title,
		Description:    req.Description,
		IsActive:       true,
		AccessCode:     uuid.NewString(),
		Audience:       req.Audience,
		Semester:       req.Semester,
		StaffIDs:       req.StaffIDs,
		SubjectIDs:     req.SubjectIDs,
		Questions:      req.Questions,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result, err := DB.FormCollection.InsertOne(ctx, form)
	if err != nil {
		return nil, err
	}
	form.ID = result.InsertedID.(primitive.ObjectID)

	log.Printf("✅ Form created: %s (code %s)", form.ID.Hex(), form.AccessCode)
	return form, nil
}

// GetForms lists a department's forms with pagination.
func GetForms(ctx context.Context, orgID, deptID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{"organizationId": orgID, "departmentId": deptID}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.FormCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := DB.FormCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var forms []models.Form
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(forms, total, params), nil
}

// GetFormByID fetches one form.
func GetFormByID(ctx context.Context, formID primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	err := DB.FormCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("form %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &form, nil
}

// GetFormForDepartment fetches a form and verifies the caller's tenant
// scope matches. A cross-tenant hit reads as unauthorized without
// confirming the form exists.
func GetFormForDepartment(ctx context.Context, formID, orgID, deptID primitive.ObjectID) (*models.Form, error) {
	form, err := GetFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form.OrganizationID != orgID || form.DepartmentID != deptID {
		return nil, utils.ErrUnauthorized
	}
	return form, nil
}

// UpdateForm applies a partial update. AccessCode is immutable and never
// part of the $set document.
func UpdateForm(ctx context.Context, formID, orgID, deptID primitive.ObjectID, req *models.UpdateFormRequest) (*models.Form, error) {
	if _, err := GetFormForDepartment(ctx, formID, orgID, deptID); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	if req.Audience != nil {
		set["audience"] = *req.Audience
	}
	if req.Semester != nil {
		set["semester"] = *req.Semester
	}
	if req.StaffIDs != nil {
		set["staffIds"] = req.StaffIDs
	}
	if req.SubjectIDs != nil {
		set["subjectIds"] = req.SubjectIDs
	}
	if req.Questions != nil {
		set["questions"] = req.Questions
	}
	if req.StartDate != nil {
		set["startDate"] = req.StartDate
	}
	if req.EndDate != nil {
		set["endDate"] = req.EndDate
	}

	_, err := DB.FormCollection.UpdateOne(ctx, bson.M{"_id": formID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return GetFormByID(ctx, formID)
}

// SetFormActive toggles whether the form accepts submissions.
func SetFormActive(ctx context.Context, formID, orgID, deptID primitive.ObjectID, active bool) error {
	if _, err := GetFormForDepartment(ctx, formID, orgID, deptID); err != nil {
		return err
	}
	_, err := DB.FormCollection.UpdateOne(ctx, bson.M{"_id": formID},
		bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}})
	return err
}

// DeleteForm removes the form and cascades to its questions and responses.
func DeleteForm(ctx context.Context, formID, orgID, deptID primitive.ObjectID) error {
	if _, err := GetFormForDepartment(ctx, formID, orgID, deptID); err != nil {
		return err
	}

	result, err := DB.FormCollection.DeleteOne(ctx, bson.M{"_id": formID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("form %w", utils.ErrNotFound)
	}

	if _, err := DB.QuestionCollection.DeleteMany(ctx, bson.M{"formId": formID}); err != nil {
		log.Println("⚠️ Warning: failed to cascade question delete:", err)
	}
	if _, err := DB.ResponseCollection.DeleteMany(ctx, bson.M{"formId": formID}); err != nil {
		log.Println("⚠️ Warning: failed to cascade response delete:", err)
	}

	log.Printf("✅ Form deleted with cascade: %s", formID.Hex())
	return nil
}

// GetFormByAccessCode resolves an access code to its form. Inactive and
// unknown codes both read as not found: the code is the only credential a
// respondent holds, so the two cases must be indistinguishable.
func GetFormByAccessCode(ctx context.Context, accessCode string) (*models.Form, error) {
	var form models.Form
	err := DB.FormCollection.FindOne(ctx, bson.M{"accessCode": accessCode, "isActive": true}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("form %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &form, nil
}

// GetPublicForm builds what an anonymous respondent sees: normalized
// questions plus display names for the form's first assigned staff and
// subject. Name lookups are best-effort; a miss just leaves the label
// empty.
func GetPublicForm(ctx context.Context, accessCode string) (*models.PublicForm, error) {
	form, err := GetFormByAccessCode(ctx, accessCode)
	if err != nil {
		return nil, err
	}

	normalized, err := questions.NormalizeForForm(ctx, form)
	if err != nil {
		return nil, err
	}

	public := &models.PublicForm{
		ID:          form.ID,
		Title:       form.Title,
		Description: form.Description,
		Audience:    form.Audience,
		Semester:    form.Semester,
		Questions:   normalized,
	}

	if len(form.StaffIDs) > 0 {
		public.StaffName = lookupName(ctx, DB.StaffCollection, form.StaffIDs[0])
	}
	if len(form.SubjectIDs) > 0 {
		public.SubjectName = lookupName(ctx, DB.SubjectCollection, form.SubjectIDs[0])
	}
	return public, nil
}

func lookupName(ctx context.Context, coll *mongo.Collection, id string) string {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ""
	}
	var doc struct {
		Name string `bson:"name"`
	}
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		log.Println("⚠️ Warning: name lookup failed:", err)
		return ""
	}
	return doc.Name
}
