package questions

import (
	"testing"

	"Feedstream-Backend/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCanonicalType(t *testing.T) {
	cases := []struct {
		raw      string
		ctype    string
		longText bool
		boolean  bool
	}{
		{"MCQ_S004", models.QTypeSingle, false, false},
		{"mcq_s001", models.QTypeSingle, false, false},
		{"SINGLE", models.QTypeSingle, false, false},
		{"DROPDOWN", models.QTypeSingle, false, false},
		{"TRUE_FALSE", models.QTypeSingle, false, true},
		{"BOOLEAN", models.QTypeSingle, false, true},
		{"TF", models.QTypeSingle, false, true},
		{"MCQ_M002", models.QTypeMulti, false, false},
		{"CHECKBOX", models.QTypeMulti, false, false},
		{"RATING", models.QTypeRating, false, false},
		{"RATING_5", models.QTypeRating, false, false},
		{"NUMERIC", models.QTypeRating, false, false},
		{"LIKERT", models.QTypeRating, false, false},
		{"STARS", models.QTypeRating, false, false},
		{"SHORT_TEXT", models.QTypeText, false, false},
		{"LONG_TEXT", models.QTypeText, true, false},
		{"PARAGRAPH", models.QTypeText, true, false},
		{"TEXTAREA", models.QTypeText, true, false},
		{"", models.QTypeText, false, false},
		{"SOMETHING_NEW", models.QTypeText, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			ctype, longText, boolean := canonicalType(tc.raw)
			assert.Equal(t, tc.ctype, ctype)
			assert.Equal(t, tc.longText, longText)
			assert.Equal(t, tc.boolean, boolean)
		})
	}
}

func TestParseOptions(t *testing.T) {
	t.Run("StringSlice", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B"}, ParseOptions([]string{"A", " B "}))
	})

	t.Run("DelimitedString", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, ParseOptions("A|B;C\nD\tE"))
	})

	t.Run("CommaString", func(t *testing.T) {
		assert.Equal(t, []string{"Poor", "Average", "Excellent"}, ParseOptions("Poor, Average, Excellent"))
	})

	t.Run("JSONArrayString", func(t *testing.T) {
		assert.Equal(t, []string{"Yes", "No"}, ParseOptions(`["Yes","No"]`))
	})

	t.Run("KeyValuePairs", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{"key": "1", "value": "Poor"},
			map[string]interface{}{"key": "2", "value": "Good"},
		}
		assert.Equal(t, []string{"Poor", "Good"}, ParseOptions(raw))
	})

	t.Run("PairFallsBackToLabelThenKey", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{"label": "Maybe"},
			map[string]interface{}{"key": "z"},
		}
		assert.Equal(t, []string{"Maybe", "z"}, ParseOptions(raw))
	})

	t.Run("NumericItems", func(t *testing.T) {
		assert.Equal(t, []string{"1", "2", "3"}, ParseOptions([]interface{}{float64(1), float64(2), float64(3)}))
	})

	t.Run("BlankEntriesDropped", func(t *testing.T) {
		assert.Equal(t, []string{"A"}, ParseOptions([]string{"", "  ", "A"}))
	})

	t.Run("GarbageDegradesToEmpty", func(t *testing.T) {
		assert.Empty(t, ParseOptions(42))
		assert.Empty(t, ParseOptions(nil))
		assert.Empty(t, ParseOptions("   "))
	})
}

func TestNormalizeWithCatalog(t *testing.T) {
	oid := primitive.NewObjectID()
	catalog := map[string]models.Question{
		oid.Hex(): {
			ID:       oid,
			Text:     "Rate the instructor",
			Type:     "RATING",
			Options:  "1|2|3|4|5",
			Required: true,
		},
	}

	t.Run("BareIDResolvedFromCatalog", func(t *testing.T) {
		out := NormalizeWithCatalog([]interface{}{oid.Hex()}, catalog)
		assert.Len(t, out, 1)
		assert.Equal(t, oid.Hex(), out[0].ID)
		assert.Equal(t, "Rate the instructor", out[0].Text)
		assert.Equal(t, models.QTypeRating, out[0].Type)
		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, out[0].Options)
		assert.True(t, out[0].Required)
	})

	t.Run("IDOnlyObjectResolvedFromCatalog", func(t *testing.T) {
		out := NormalizeWithCatalog([]interface{}{map[string]interface{}{"id": oid.Hex()}}, catalog)
		assert.Len(t, out, 1)
		assert.Equal(t, "Rate the instructor", out[0].Text)
	})

	t.Run("UnresolvableReferenceBecomesPlaceholder", func(t *testing.T) {
		out := NormalizeWithCatalog([]interface{}{"64f000000000000000000000"}, catalog)
		assert.Len(t, out, 1)
		assert.Equal(t, "64f000000000000000000000", out[0].ID)
		assert.Equal(t, "Question 1", out[0].Text)
		assert.Equal(t, models.QTypeText, out[0].Type)
		assert.Empty(t, out[0].Options)
	})

	t.Run("NumericIDKeepsDigits", func(t *testing.T) {
		out := NormalizeWithCatalog([]interface{}{float64(42)}, catalog)
		assert.Equal(t, "42", out[0].ID)
		assert.Equal(t, "Question 1", out[0].Text)
	})

	t.Run("PlaceholderNumbersFollowPosition", func(t *testing.T) {
		out := NormalizeWithCatalog([]interface{}{oid.Hex(), "unknown-ref"}, catalog)
		assert.Len(t, out, 2)
		assert.Equal(t, "Question 2", out[1].Text)
	})

	t.Run("InlineObject", func(t *testing.T) {
		entry := map[string]interface{}{
			"id":      "q-7",
			"text":    "Which materials did you use?",
			"type":    "MCQ_M002",
			"options": []interface{}{"Slides", "Textbook", "Recordings"},
		}
		out := NormalizeWithCatalog([]interface{}{entry}, nil)
		assert.Equal(t, "q-7", out[0].ID)
		assert.Equal(t, models.QTypeMulti, out[0].Type)
		assert.True(t, out[0].MultiSelect)
		assert.Equal(t, []string{"Slides", "Textbook", "Recordings"}, out[0].Options)
	})

	t.Run("BooleanDefaultsOptions", func(t *testing.T) {
		entry := map[string]interface{}{"id": "q1", "text": "Would you recommend it?", "type": "TRUE_FALSE"}
		out := NormalizeWithCatalog([]interface{}{entry}, nil)
		assert.Equal(t, models.QTypeSingle, out[0].Type)
		assert.Equal(t, []string{"True", "False"}, out[0].Options)
	})

	t.Run("RatingDefaultsOptions", func(t *testing.T) {
		entry := map[string]interface{}{"id": "q1", "text": "Stars", "type": "STARS"}
		out := NormalizeWithCatalog([]interface{}{entry}, nil)
		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, out[0].Options)
	})

	t.Run("DropdownHintAboveThreshold", func(t *testing.T) {
		seven := map[string]interface{}{
			"id": "q1", "text": "Pick one", "type": "MCQ_S001",
			"options": []interface{}{"A", "B", "C", "D", "E", "F", "G"},
		}
		six := map[string]interface{}{
			"id": "q2", "text": "Pick one", "type": "MCQ_S001",
			"options": []interface{}{"A", "B", "C", "D", "E", "F"},
		}
		out := NormalizeWithCatalog([]interface{}{seven, six}, nil)
		assert.True(t, out[0].RenderAsDropdown)
		assert.False(t, out[1].RenderAsDropdown)
	})

	t.Run("MultiSelectNeverDropdown", func(t *testing.T) {
		entry := map[string]interface{}{
			"id": "q1", "text": "Pick many", "type": "MCQ_M001",
			"options": []interface{}{"A", "B", "C", "D", "E", "F", "G", "H"},
		}
		out := NormalizeWithCatalog([]interface{}{entry}, nil)
		assert.False(t, out[0].RenderAsDropdown)
	})

	t.Run("BrokenOptionsDegradeToEmpty", func(t *testing.T) {
		entry := map[string]interface{}{"id": "q1", "text": "Anything else?", "type": "SHORT_TEXT", "options": 99}
		out := NormalizeWithCatalog([]interface{}{entry}, nil)
		assert.Empty(t, out[0].Options)
	})

	t.Run("EmptyFormYieldsEmptySlice", func(t *testing.T) {
		out := NormalizeWithCatalog(nil, catalog)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}
