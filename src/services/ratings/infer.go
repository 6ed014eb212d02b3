package ratings

import (
	"math"
	"strconv"
	"strings"

	"Feedstream-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// keywordTiers maps answer wording onto star ratings. Matching is
// case-insensitive and allows substring containment, so tier order
// matters: the extreme tiers run first ("very good" must not stop at
// "good") and tier 2 runs before tier 4 ("disagree" contains "agree").
var keywordTiers = []struct {
	rating   int
	keywords []string
}{
	{5, []string{"excellent", "strongly agree", "very satisfied", "very good", "outstanding"}},
	{1, []string{"very poor", "strongly disagree", "terrible", "bad"}},
	{2, []string{"poor", "disagree", "no"}},
	{4, []string{"good", "agree", "satisfied", "yes"}},
	{3, []string{"neutral", "average", "ok", "okay", "maybe"}},
}

// Infer derives a 1..5 rating from an arbitrary answer value. Responses
// store whatever the respondent typed or picked, so this is the one place
// that decides whether an answer counts toward the rating statistics.
//
// Order of evaluation:
//  1. rating-typed questions: numeric coercion, rounded and clamped to [1,5]
//  2. exact membership in the question's declared option list, position
//     interpolated linearly across [1,5]
//  3. keyword tiers on the lower-cased answer text
//
// Option membership runs before the keyword tiers: when a form declares
// "Poor"/"Average"/"Excellent" the author's scale positions are the
// intended ratings, and the keyword table would score "Poor" as 2 instead
// of 1. Keywords cover free text and answers outside the declared list.
//
// The second return value is false when the answer contributes no rating.
func Infer(q models.NormalizedQuestion, value interface{}) (int, bool) {
	if q.Type == models.QTypeRating {
		n, ok := toNumber(value)
		if !ok {
			return 0, false
		}
		return clamp(int(math.Round(n))), true
	}

	text := strings.ToLower(strings.TrimSpace(stringify(value)))
	if text == "" {
		return 0, false
	}

	if len(q.Options) > 0 {
		if r, ok := positionRating(q.Options, text); ok {
			return r, true
		}
	}

	for _, tier := range keywordTiers {
		for _, kw := range tier.keywords {
			if text == kw || strings.Contains(text, kw) {
				return tier.rating, true
			}
		}
	}

	return 0, false
}

// positionRating interpolates the answer's index across the option list:
// first option maps to 1, last to 5. Callers are expected to declare
// options in ascending desirability order.
func positionRating(options []string, lowered string) (int, bool) {
	index := -1
	for i, opt := range options {
		if strings.ToLower(strings.TrimSpace(opt)) == lowered {
			index = i
			break
		}
	}
	if index < 0 {
		return 0, false
	}
	if len(options) == 1 {
		// interpolation is undefined over a single option
		return 3, true
	}
	fraction := float64(index) / float64(len(options)-1)
	return clamp(int(math.Round(1 + fraction*4))), true
}

func clamp(r int) int {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// stringify renders an answer value as comparable text. Multi-select
// answers use their first selection; booleans read as yes/no so the
// keyword tiers apply.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case []string:
		if len(v) > 0 {
			return v[0]
		}
		return ""
	case []interface{}:
		if len(v) > 0 {
			return stringify(v[0])
		}
		return ""
	case primitive.A:
		if len(v) > 0 {
			return stringify(v[0])
		}
		return ""
	default:
		return ""
	}
}
