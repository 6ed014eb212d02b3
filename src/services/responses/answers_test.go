package responses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNormalizeAnswers(t *testing.T) {
	t.Run("KeyedMapPassesThrough", func(t *testing.T) {
		in := map[string]interface{}{"q1": "Good", "q2": []interface{}{"AA", "BB"}}
		out := NormalizeAnswers(in)
		assert.Equal(t, "Good", out["q1"])
		assert.Equal(t, []interface{}{"AA", "BB"}, out["q2"])
	})

	t.Run("PairArray", func(t *testing.T) {
		in := []interface{}{
			map[string]interface{}{"questionId": "q1", "answer": "Yes"},
			map[string]interface{}{"questionKey": "q2", "answer": "3"},
		}
		out := NormalizeAnswers(in)
		assert.Equal(t, "Yes", out["q1"])
		assert.Equal(t, "3", out["q2"])
	})

	t.Run("LastWriteWinsOnDuplicateKeys", func(t *testing.T) {
		in := []interface{}{
			map[string]interface{}{"questionId": "q1", "answer": "first"},
			map[string]interface{}{"questionId": "q1", "answer": "second"},
		}
		out := NormalizeAnswers(in)
		assert.Len(t, out, 1)
		assert.Equal(t, "second", out["q1"])
	})

	t.Run("PairValueFallback", func(t *testing.T) {
		in := []interface{}{
			map[string]interface{}{"key": "q1", "value": "Average"},
		}
		out := NormalizeAnswers(in)
		assert.Equal(t, "Average", out["q1"])
	})

	t.Run("NumericKeysFormatted", func(t *testing.T) {
		in := []interface{}{
			map[string]interface{}{"questionId": float64(7), "answer": "A"},
			map[string]interface{}{"questionId": 2.5, "answer": "B"},
		}
		out := NormalizeAnswers(in)
		assert.Equal(t, "A", out["7"])
		assert.Equal(t, "B", out["2.5"])
	})

	t.Run("KeylessPairsSkipped", func(t *testing.T) {
		in := []interface{}{
			map[string]interface{}{"answer": "orphaned"},
			"not even a pair",
			map[string]interface{}{"questionId": "q1", "answer": "kept"},
		}
		out := NormalizeAnswers(in)
		assert.Len(t, out, 1)
		assert.Equal(t, "kept", out["q1"])
	})

	t.Run("JSONStringPayload", func(t *testing.T) {
		out := NormalizeAnswers(`{"q1":"Good","q2":5}`)
		assert.Equal(t, "Good", out["q1"])
		assert.Equal(t, float64(5), out["q2"])
	})

	t.Run("BsonShapes", func(t *testing.T) {
		out := NormalizeAnswers(bson.M{"q1": "Good"})
		assert.Equal(t, "Good", out["q1"])
	})

	t.Run("GarbageDegradesToEmptyMap", func(t *testing.T) {
		assert.Empty(t, NormalizeAnswers(nil))
		assert.Empty(t, NormalizeAnswers(42))
		assert.Empty(t, NormalizeAnswers("{broken json"))
	})
}

func TestParseAnswerMap(t *testing.T) {
	t.Run("NativeDocument", func(t *testing.T) {
		out := ParseAnswerMap(map[string]interface{}{"q1": "Good"})
		assert.Equal(t, "Good", out["q1"])
	})

	t.Run("BsonDocument", func(t *testing.T) {
		out := ParseAnswerMap(bson.M{"q1": "Good"})
		assert.Equal(t, "Good", out["q1"])

		out = ParseAnswerMap(bson.D{{Key: "q2", Value: "Average"}})
		assert.Equal(t, "Average", out["q2"])
	})

	t.Run("LegacyJSONString", func(t *testing.T) {
		out := ParseAnswerMap(`{"q1":"Excellent","q2":4}`)
		assert.Equal(t, "Excellent", out["q1"])
		assert.Equal(t, float64(4), out["q2"])
	})

	t.Run("CorruptionDegradesToEmptyMap", func(t *testing.T) {
		assert.NotNil(t, ParseAnswerMap(`{"q1": unterminated`))
		assert.Empty(t, ParseAnswerMap(`{"q1": unterminated`))
		assert.Empty(t, ParseAnswerMap(nil))
		assert.Empty(t, ParseAnswerMap([]string{"not", "a", "map"}))
	})
}
