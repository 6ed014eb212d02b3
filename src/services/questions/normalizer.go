package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	DB "Feedstream-Backend/src/database"
	"Feedstream-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dropdownThreshold: single-choice questions with more options than this
// render as a dropdown instead of radio buttons. Presentation hint only.
const dropdownThreshold = 6

// NormalizeForForm loads the question catalog for a form and normalizes
// its stored question entries into the canonical shape.
func NormalizeForForm(ctx context.Context, form *models.Form) ([]models.NormalizedQuestion, error) {
	catalog, err := loadCatalog(ctx, form)
	if err != nil {
		return nil, err
	}
	return NormalizeWithCatalog(form.Questions, catalog), nil
}

// loadCatalog fetches every question that could back an id-only entry:
// questions owned by the form plus anything referenced directly by id.
func loadCatalog(ctx context.Context, form *models.Form) (map[string]models.Question, error) {
	var refs []primitive.ObjectID
	for _, entry := range form.Questions {
		if id := referencedID(entry); id != "" {
			if oid, err := primitive.ObjectIDFromHex(id); err == nil {
				refs = append(refs, oid)
			}
		}
	}

	filter := bson.M{"formId": form.ID}
	if len(refs) > 0 {
		filter = bson.M{"$or": bson.A{
			bson.M{"formId": form.ID},
			bson.M{"_id": bson.M{"$in": refs}},
		}}
	}

	cursor, err := DB.QuestionCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stored []models.Question
	if err = cursor.All(ctx, &stored); err != nil {
		return nil, err
	}

	catalog := make(map[string]models.Question, len(stored))
	for _, q := range stored {
		catalog[q.ID.Hex()] = q
	}
	return catalog, nil
}

// NormalizeWithCatalog converts raw stored question entries (bare ids,
// id-only objects, or fully inlined objects) into canonical questions.
// It never fails: unresolvable references become placeholders and broken
// option payloads become empty option lists.
func NormalizeWithCatalog(entries []interface{}, catalog map[string]models.Question) []models.NormalizedQuestion {
	out := make([]models.NormalizedQuestion, 0, len(entries))
	for i, entry := range entries {
		out = append(out, normalizeEntry(entry, i, catalog))
	}
	return out
}

func normalizeEntry(entry interface{}, index int, catalog map[string]models.Question) models.NormalizedQuestion {
	raw, id := resolveEntry(entry, catalog)
	if raw == nil {
		// Reference we cannot resolve: keep the slot so the rest of the
		// form still renders.
		if id == "" {
			id = fmt.Sprintf("q%d", index+1)
		}
		return models.NormalizedQuestion{
			ID:      id,
			Text:    fmt.Sprintf("Question %d", index+1),
			Type:    models.QTypeText,
			Options: []string{},
		}
	}

	ctype, longText, boolean := canonicalType(raw.Type)
	options := ParseOptions(raw.Options)

	if len(options) == 0 {
		switch {
		case boolean:
			options = []string{"True", "False"}
		case ctype == models.QTypeRating:
			options = []string{"1", "2", "3", "4", "5"}
		}
	}

	nq := models.NormalizedQuestion{
		ID:          id,
		Text:        raw.Text,
		Type:        ctype,
		Options:     options,
		MultiSelect: ctype == models.QTypeMulti,
		LongText:    longText,
		Required:    raw.Required,
	}
	if nq.Type == models.QTypeSingle && !nq.MultiSelect && len(nq.Options) > dropdownThreshold {
		nq.RenderAsDropdown = true
	}
	return nq
}

// resolveEntry turns one stored entry into a Question plus its string id.
// A nil Question means the entry was an unresolvable reference.
func resolveEntry(entry interface{}, catalog map[string]models.Question) (*models.Question, string) {
	switch v := entry.(type) {
	case models.Question:
		return &v, v.ID.Hex()
	case map[string]interface{}:
		return resolveObject(v, catalog)
	case bson.M:
		return resolveObject(map[string]interface{}(v), catalog)
	case bson.D:
		return resolveObject(v.Map(), catalog)
	default:
		id, ok := entryID(entry)
		if !ok {
			return nil, ""
		}
		if q, found := catalog[id]; found {
			return &q, id
		}
		return nil, id
	}
}

// resolveObject handles the partial ({id}) and fully inlined shapes.
func resolveObject(obj map[string]interface{}, catalog map[string]models.Question) (*models.Question, string) {
	id := objectIDField(obj)

	_, hasText := obj["text"]
	_, hasType := obj["type"]
	if !hasText && !hasType {
		// id-only partial object
		if q, found := catalog[id]; found {
			return &q, id
		}
		return nil, id
	}

	q := models.Question{
		Text:     stringField(obj, "text", "question", "title"),
		Type:     stringField(obj, "type"),
		Options:  obj["options"],
		Required: boolField(obj, "required"),
	}
	return &q, id
}

// referencedID extracts the id from any entry shape, for catalog prefetch.
func referencedID(entry interface{}) string {
	switch v := entry.(type) {
	case map[string]interface{}:
		return objectIDField(v)
	case bson.M:
		return objectIDField(map[string]interface{}(v))
	case bson.D:
		return objectIDField(v.Map())
	default:
		id, _ := entryID(entry)
		return id
	}
}

// entryID extracts a string id from a bare reference entry.
func entryID(entry interface{}) (string, bool) {
	switch v := entry.(type) {
	case string:
		s := strings.TrimSpace(v)
		return s, s != ""
	case float64:
		return formatNumericID(v), true
	case float32:
		return formatNumericID(float64(v)), true
	case int:
		return strconv.Itoa(v), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	case primitive.ObjectID:
		return v.Hex(), true
	default:
		return "", false
	}
}

func formatNumericID(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func objectIDField(obj map[string]interface{}) string {
	for _, key := range []string{"id", "_id", "questionId"} {
		if v, ok := obj[key]; ok {
			if id, ok := entryID(v); ok {
				return id
			}
		}
	}
	return ""
}

func stringField(obj map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := obj[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func boolField(obj map[string]interface{}, key string) bool {
	b, _ := obj[key].(bool)
	return b
}

// canonicalType maps the legacy type vocabulary onto the canonical set.
// Prefix rules: MCQ_S* and the boolean markers are single-choice, MCQ_M*
// is multi-choice, numeric/rating markers are rating, everything else is
// text (LONG* additionally sets the long-text flag).
func canonicalType(raw string) (ctype string, longText, boolean bool) {
	up := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case up == "TRUE_FALSE" || up == "TRUEFALSE" || up == "BOOLEAN" || up == "TF":
		return models.QTypeSingle, false, true
	case strings.HasPrefix(up, "MCQ_S") || up == "SINGLE" || up == "DROPDOWN":
		return models.QTypeSingle, false, false
	case strings.HasPrefix(up, "MCQ_M") || up == "MULTI" || up == "CHECKBOX":
		return models.QTypeMulti, false, false
	case up == "NUMERIC" || up == "NUMBER" || strings.HasPrefix(up, "RATING") ||
		up == "SCALE" || up == "LIKERT" || up == "STARS":
		return models.QTypeRating, false, false
	default:
		return models.QTypeText, strings.Contains(up, "LONG") || up == "PARAGRAPH" || up == "TEXTAREA", false
	}
}

// ParseOptions resolves whichever option representation a question was
// stored with: []string, []{key,value} pairs, or one delimited string.
// Anything it cannot make sense of degrades to an empty list.
func ParseOptions(raw interface{}) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		return cleanOptions(v)
	case string:
		return parseOptionString(v)
	case primitive.A:
		return parseOptionSlice([]interface{}(v))
	case []interface{}:
		return parseOptionSlice(v)
	default:
		return []string{}
	}
}

func parseOptionSlice(items []interface{}) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch o := item.(type) {
		case string:
			out = append(out, o)
		case map[string]interface{}:
			out = append(out, optionValue(o))
		case bson.M:
			out = append(out, optionValue(map[string]interface{}(o)))
		case bson.D:
			out = append(out, optionValue(o.Map()))
		case float64:
			out = append(out, formatNumericID(o))
		case int:
			out = append(out, strconv.Itoa(o))
		case int32:
			out = append(out, strconv.FormatInt(int64(o), 10))
		case int64:
			out = append(out, strconv.FormatInt(o, 10))
		}
	}
	return cleanOptions(out)
}

// optionValue projects a {key,value} pair to its value.
func optionValue(pair map[string]interface{}) string {
	if v, ok := pair["value"].(string); ok {
		return v
	}
	if v, ok := pair["label"].(string); ok {
		return v
	}
	if v, ok := pair["key"].(string); ok {
		return v
	}
	return ""
}

func parseOptionString(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return []string{}
	}
	// Some rows store options as a JSON array string.
	if strings.HasPrefix(trimmed, "[") {
		var arr []interface{}
		if err := json.Unmarshal([]byte(trimmed), &arr); err == nil {
			return parseOptionSlice(arr)
		}
		// fall through to delimiter splitting
	}
	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '\n' || r == '|' || r == ',' || r == ';' || r == '\t'
	})
	return cleanOptions(parts)
}

func cleanOptions(opts []string) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
