package export

import (
	"strings"
	"testing"
	"time"

	"Feedstream-Backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportStamp = time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)

func sampleRow(name, email string, answers map[string]interface{}) models.Response {
	return models.Response{
		SubmittedAt: exportStamp,
		Name:        name,
		Email:       email,
		Phone:       "0812345678",
		Answers:     answers,
	}
}

func TestWriteCSVHeader(t *testing.T) {
	t.Run("IdentityColumnsLead", func(t *testing.T) {
		var buf strings.Builder
		err := WriteCSV(&buf, nil)
		require.NoError(t, err)
		assert.Equal(t, `"id","submittedAt","name","email","phone"`+"\n", buf.String())
	})

	t.Run("AnswerKeysUnionInFirstSeenOrder", func(t *testing.T) {
		rows := []models.Response{
			sampleRow("A", "a@example.com", map[string]interface{}{"q1": "x", "q2": "y"}),
			sampleRow("B", "b@example.com", map[string]interface{}{"q2": "y", "q3": "z"}),
		}
		var buf strings.Builder
		require.NoError(t, WriteCSV(&buf, rows))

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, `"id","submittedAt","name","email","phone","q1","q2","q3"`, lines[0])
	})
}

func TestWriteCSVRows(t *testing.T) {
	rows := []models.Response{
		sampleRow("Anong", "anong@example.com", map[string]interface{}{"q1": "Good"}),
		sampleRow("Boon", "boon@example.com", map[string]interface{}{"q2": "Average"}),
	}
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	t.Run("MissingKeysRenderEmptyCells", func(t *testing.T) {
		// row 1 has no q2, row 2 has no q1
		assert.True(t, strings.HasSuffix(lines[1], `"Good",""`))
		assert.True(t, strings.HasSuffix(lines[2], `"","Average"`))
	})

	t.Run("AllCellsQuoted", func(t *testing.T) {
		for _, line := range lines {
			assert.True(t, strings.HasPrefix(line, `"`))
			assert.True(t, strings.HasSuffix(line, `"`))
			// 7 columns means 6 quoted separators on every line
			assert.Equal(t, 6, strings.Count(line, `","`))
		}
	})

	t.Run("TimestampIsRFC3339", func(t *testing.T) {
		assert.Contains(t, lines[1], `"2025-11-03T09:30:00Z"`)
	})
}

func TestWriteCSVEscaping(t *testing.T) {
	rows := []models.Response{
		sampleRow(`Somchai "Chai" P.`, "chai@example.com", map[string]interface{}{
			"q1": `He said "great course", really`,
		}),
	}
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, rows))

	out := buf.String()
	assert.Contains(t, out, `"Somchai ""Chai"" P."`)
	assert.Contains(t, out, `"He said ""great course"", really"`)
}

func TestWriteCSVValueRendering(t *testing.T) {
	rows := []models.Response{
		sampleRow("A", "a@example.com", map[string]interface{}{
			"multi": []interface{}{"Slides", "Textbook"},
			"num":   float64(4),
			"flag":  true,
			"blank": nil,
		}),
	}
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, rows))

	out := buf.String()
	assert.Contains(t, out, `"Slides; Textbook"`)
	assert.Contains(t, out, `"4"`)
	assert.Contains(t, out, `"true"`)
}
