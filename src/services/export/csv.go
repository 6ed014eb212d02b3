package export

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"Feedstream-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// identityColumns always lead the header, in this order, before any
// answer key.
var identityColumns = []string{"id", "submittedAt", "name", "email", "phone"}

// WriteCSV flattens responses with heterogeneous answer-key sets into one
// CSV. The header is the union of identity columns plus every distinct
// answer key, in first-seen order; a row missing a key renders an empty
// cell at that column. Every field is quoted with embedded quotes
// doubled, so a consumer never sees a shifted row.
func WriteCSV(w io.Writer, rows []models.Response) error {
	header := answerColumns(rows)

	if err := writeRecord(w, append(append([]string{}, identityColumns...), header...)); err != nil {
		return err
	}

	for _, row := range rows {
		record := make([]string, 0, len(identityColumns)+len(header))
		record = append(record,
			row.ID.Hex(),
			row.SubmittedAt.Format(time.RFC3339),
			row.Name,
			row.Email,
			row.Phone,
		)
		for _, key := range header {
			value, ok := row.Answers[key]
			if !ok {
				record = append(record, "")
				continue
			}
			record = append(record, cellValue(value))
		}
		if err := writeRecord(w, record); err != nil {
			return err
		}
	}
	return nil
}

// answerColumns collects the distinct answer keys across all rows, in
// first-seen order. Within one response the key order follows the map's
// iteration order for keys never seen before, which is acceptable: the
// contract is union and stability across rows, not a canonical sort.
func answerColumns(rows []models.Response) []string {
	seen := map[string]bool{}
	var columns []string
	for _, row := range rows {
		for _, key := range sortedKeys(row.Answers) {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	return columns
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// stable within a row so repeated exports agree
	sort.Strings(keys)
	return keys
}

// cellValue renders one answer value. Arrays join with "; ".
func cellValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case []string:
		return strings.Join(v, "; ")
	case []interface{}:
		return joinValues(v)
	case primitive.A:
		return joinValues([]interface{}(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

func joinValues(items []interface{}) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, cellValue(item))
	}
	return strings.Join(parts, "; ")
}

// writeRecord emits one line with every field quoted and embedded quotes
// doubled. encoding/csv is deliberately not used here: it quotes only
// when required, and the export contract promises uniformly quoted cells.
func writeRecord(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}
