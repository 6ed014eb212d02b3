package ratings

import (
	"testing"

	"Feedstream-Backend/src/models"

	"github.com/stretchr/testify/assert"
)

func ratingQ() models.NormalizedQuestion {
	return models.NormalizedQuestion{ID: "q1", Type: models.QTypeRating, Options: []string{"1", "2", "3", "4", "5"}}
}

func textQ() models.NormalizedQuestion {
	return models.NormalizedQuestion{ID: "q2", Type: models.QTypeText, Options: []string{}}
}

func TestInferNumeric(t *testing.T) {
	t.Run("ClampsAboveRange", func(t *testing.T) {
		r, ok := Infer(ratingQ(), "7")
		assert.True(t, ok)
		assert.Equal(t, 5, r)
	})

	t.Run("ClampsBelowRange", func(t *testing.T) {
		r, ok := Infer(ratingQ(), "-3")
		assert.True(t, ok)
		assert.Equal(t, 1, r)
	})

	t.Run("RoundsToNearest", func(t *testing.T) {
		r, ok := Infer(ratingQ(), 3.4)
		assert.True(t, ok)
		assert.Equal(t, 3, r)

		r, ok = Infer(ratingQ(), "4.6")
		assert.True(t, ok)
		assert.Equal(t, 5, r)
	})

	t.Run("NonNumericDiscarded", func(t *testing.T) {
		_, ok := Infer(ratingQ(), "not a number")
		assert.False(t, ok)
	})

	t.Run("IntegerTypesAccepted", func(t *testing.T) {
		r, ok := Infer(ratingQ(), int32(4))
		assert.True(t, ok)
		assert.Equal(t, 4, r)
	})
}

func TestInferKeywordTiers(t *testing.T) {
	cases := []struct {
		answer string
		rating int
	}{
		{"Excellent", 5},
		{"excellent work overall", 5},
		{"Strongly Agree", 5},
		{"very satisfied", 5},
		{"very good", 5},
		{"outstanding", 5},
		{"good", 4},
		{"Agree", 4},
		{"satisfied", 4},
		{"Yes", 4},
		{"neutral", 3},
		{"Average", 3},
		{"ok", 3},
		{"okay", 3},
		{"maybe", 3},
		{"poor", 2},
		{"Disagree", 2},
		{"No", 2},
		{"very poor", 1},
		{"Strongly Disagree", 1},
		{"terrible", 1},
		{"bad", 1},
	}
	for _, tc := range cases {
		t.Run(tc.answer, func(t *testing.T) {
			r, ok := Infer(textQ(), tc.answer)
			assert.True(t, ok)
			assert.Equal(t, tc.rating, r)
		})
	}
}

func TestInferOptionPosition(t *testing.T) {
	q := models.NormalizedQuestion{
		ID:      "q3",
		Type:    models.QTypeSingle,
		Options: []string{"Poor", "Average", "Excellent"},
	}

	t.Run("FirstOptionIsOne", func(t *testing.T) {
		r, ok := Infer(q, "Poor")
		assert.True(t, ok)
		assert.Equal(t, 1, r)
	})

	t.Run("MiddleOptionInterpolates", func(t *testing.T) {
		r, ok := Infer(q, "Average")
		assert.True(t, ok)
		assert.Equal(t, 3, r)
	})

	t.Run("LastOptionIsFive", func(t *testing.T) {
		r, ok := Infer(q, "Excellent")
		assert.True(t, ok)
		assert.Equal(t, 5, r)
	})

	t.Run("TwoOptionsSpanTheScale", func(t *testing.T) {
		two := models.NormalizedQuestion{Type: models.QTypeSingle, Options: []string{"Low", "High"}}
		r, ok := Infer(two, "Low")
		assert.True(t, ok)
		assert.Equal(t, 1, r)

		r, ok = Infer(two, "High")
		assert.True(t, ok)
		assert.Equal(t, 5, r)
	})

	t.Run("FourOptionInterpolation", func(t *testing.T) {
		four := models.NormalizedQuestion{Type: models.QTypeSingle, Options: []string{"AA", "BB", "CC", "DD"}}
		r, ok := Infer(four, "BB")
		assert.True(t, ok)
		assert.Equal(t, 2, r) // 1 + (1/3)*4 = 2.33

		r, ok = Infer(four, "CC")
		assert.True(t, ok)
		assert.Equal(t, 4, r) // 1 + (2/3)*4 = 3.67
	})

	t.Run("SingleOptionDefaultsToMidpoint", func(t *testing.T) {
		one := models.NormalizedQuestion{Type: models.QTypeSingle, Options: []string{"Attended"}}
		r, ok := Infer(one, "Attended")
		assert.True(t, ok)
		assert.Equal(t, 3, r)
	})

	t.Run("MatchIsCaseInsensitive", func(t *testing.T) {
		r, ok := Infer(q, "  average ")
		assert.True(t, ok)
		assert.Equal(t, 3, r)
	})

	t.Run("MultiSelectUsesFirstSelection", func(t *testing.T) {
		multi := models.NormalizedQuestion{Type: models.QTypeMulti, Options: []string{"AA", "BB"}, MultiSelect: true}
		r, ok := Infer(multi, []interface{}{"BB", "AA"})
		assert.True(t, ok)
		assert.Equal(t, 5, r)
	})
}

func TestInferNoRating(t *testing.T) {
	t.Run("UnmatchedFreeText", func(t *testing.T) {
		_, ok := Infer(textQ(), "blue sky thinking")
		assert.False(t, ok)
	})

	t.Run("EmptyValue", func(t *testing.T) {
		_, ok := Infer(textQ(), "")
		assert.False(t, ok)
	})

	t.Run("NilValue", func(t *testing.T) {
		_, ok := Infer(textQ(), nil)
		assert.False(t, ok)
	})

	t.Run("RangeAlwaysOneToFive", func(t *testing.T) {
		values := []interface{}{"0", "1", "2.5", "5", "6", "100", "-50"}
		for _, v := range values {
			r, ok := Infer(ratingQ(), v)
			assert.True(t, ok)
			assert.GreaterOrEqual(t, r, 1)
			assert.LessOrEqual(t, r, 5)
		}
	})
}
