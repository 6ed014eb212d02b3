package responses

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeAnswers turns whichever answer payload shape a client sent into
// the canonical answer map. Accepted shapes: an already-keyed map, or an
// array of {questionId|questionKey, answer} pairs (last write wins on
// duplicate keys). Anything unintelligible degrades to an empty map.
func NormalizeAnswers(raw interface{}) map[string]interface{} {
	switch v := raw.(type) {
	case nil:
		return map[string]interface{}{}
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, val := range v {
			out[k] = val
		}
		return out
	case bson.M:
		return NormalizeAnswers(map[string]interface{}(v))
	case []interface{}:
		return pairsToMap(v)
	case primitive.A:
		return pairsToMap([]interface{}(v))
	case string:
		var decoded interface{}
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return map[string]interface{}{}
		}
		return NormalizeAnswers(decoded)
	default:
		return map[string]interface{}{}
	}
}

func pairsToMap(items []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(items))
	for _, item := range items {
		pair, ok := item.(map[string]interface{})
		if !ok {
			if m, isBsonM := item.(bson.M); isBsonM {
				pair = map[string]interface{}(m)
			} else {
				continue
			}
		}
		key := pairKey(pair)
		if key == "" {
			continue
		}
		answer, ok := pair["answer"]
		if !ok {
			answer = pair["value"]
		}
		out[key] = answer
	}
	return out
}

func pairKey(pair map[string]interface{}) string {
	for _, k := range []string{"questionId", "questionKey", "id", "key"} {
		if v, ok := pair[k]; ok && v != nil {
			switch id := v.(type) {
			case string:
				if id != "" {
					return id
				}
			case float64:
				if id == math.Trunc(id) {
					return strconv.FormatInt(int64(id), 10)
				}
				return strconv.FormatFloat(id, 'f', -1, 64)
			default:
				return fmt.Sprintf("%v", id)
			}
		}
	}
	return ""
}

// ParseAnswerMap recovers an answer map from however a storage row kept
// it: a native document or a JSON-encoded string (the legacy simplified
// schema). Corruption degrades to an empty map so one bad row never
// aborts an aggregation or export.
func ParseAnswerMap(raw interface{}) map[string]interface{} {
	switch v := raw.(type) {
	case nil:
		return map[string]interface{}{}
	case map[string]interface{}:
		return v
	case bson.M:
		return map[string]interface{}(v)
	case bson.D:
		return v.Map()
	case string:
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			return map[string]interface{}{}
		}
		return m
	default:
		return map[string]interface{}{}
	}
}
