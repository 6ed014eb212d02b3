package meta

import (
	"testing"

	"Feedstream-Backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSemesterSet(t *testing.T) {
	subjects := []models.Subject{
		{Name: "Calculus", Semester: "2/2025"},
		{Name: "Physics", Semester: "1/2025"},
		{Name: "Labs", Semester: "2/2025"},
		{Name: "Unscheduled", Semester: ""},
	}
	assert.Equal(t, []string{"1/2025", "2/2025"}, SemesterSet(subjects))
	assert.Empty(t, SemesterSet(nil))
}

func TestSubjectsForSemester(t *testing.T) {
	subjects := []models.Subject{
		{Name: "Calculus", Semester: "1/2025"},
		{Name: "Physics", Semester: "2/2025"},
	}

	t.Run("EmptySemesterKeepsAll", func(t *testing.T) {
		assert.Len(t, SubjectsForSemester(subjects, ""), 2)
	})

	t.Run("NarrowsToOneSemester", func(t *testing.T) {
		out := SubjectsForSemester(subjects, "1/2025")
		require.Len(t, out, 1)
		assert.Equal(t, "Calculus", out[0].Name)
	})

	t.Run("UnknownSemesterYieldsNothing", func(t *testing.T) {
		assert.Empty(t, SubjectsForSemester(subjects, "3/1999"))
	})
}

func TestSubjectsForStaff(t *testing.T) {
	calc := models.Subject{ID: primitive.NewObjectID(), Name: "Calculus"}
	phys := models.Subject{ID: primitive.NewObjectID(), Name: "Physics"}
	links := []StaffLink{
		{StaffID: "st1", SubjectID: calc.ID.Hex()},
		{StaffID: "st2", SubjectID: phys.ID.Hex()},
	}

	out := SubjectsForStaff(links, []models.Subject{calc, phys}, "st1")
	require.Len(t, out, 1)
	assert.Equal(t, "Calculus", out[0].Name)

	assert.Empty(t, SubjectsForStaff(links, []models.Subject{calc, phys}, "st9"))
}

func TestStaffForSubjects(t *testing.T) {
	a := models.Staff{ID: primitive.NewObjectID(), Name: "Dr. Niran"}
	b := models.Staff{ID: primitive.NewObjectID(), Name: "Dr. Malee"}
	roster := []models.Staff{a, b}
	links := []StaffLink{
		{StaffID: a.ID.Hex(), SubjectID: "sub1"},
		{StaffID: b.ID.Hex(), SubjectID: "sub2"},
	}

	t.Run("KeepsLinkedStaffOnly", func(t *testing.T) {
		out := StaffForSubjects(links, roster, map[string]bool{"sub1": true})
		require.Len(t, out, 1)
		assert.Equal(t, "Dr. Niran", out[0].Name)
	})

	t.Run("MultipleWantedSubjects", func(t *testing.T) {
		out := StaffForSubjects(links, roster, map[string]bool{"sub1": true, "sub2": true})
		assert.Len(t, out, 2)
	})

	t.Run("NoLinksYieldsNobody", func(t *testing.T) {
		assert.Empty(t, StaffForSubjects(nil, roster, map[string]bool{"sub1": true}))
	})
}

func TestStaffForSubjectsDenormalized(t *testing.T) {
	roster := []models.Staff{
		{Name: "JSON list", Subjects: `["sub1","sub2"]`},
		{Name: "Comma list", Subjects: "sub3, sub4"},
		{Name: "Empty", Subjects: ""},
	}

	t.Run("MatchesJSONEncodedList", func(t *testing.T) {
		out := StaffForSubjectsDenormalized(roster, map[string]bool{"sub2": true})
		require.Len(t, out, 1)
		assert.Equal(t, "JSON list", out[0].Name)
	})

	t.Run("MatchesCommaList", func(t *testing.T) {
		out := StaffForSubjectsDenormalized(roster, map[string]bool{"sub4": true})
		require.Len(t, out, 1)
		assert.Equal(t, "Comma list", out[0].Name)
	})

	t.Run("EachStaffAppearsOnce", func(t *testing.T) {
		out := StaffForSubjectsDenormalized(roster, map[string]bool{"sub1": true, "sub2": true})
		assert.Len(t, out, 1)
	})

	t.Run("NoMatchYieldsNobody", func(t *testing.T) {
		assert.Empty(t, StaffForSubjectsDenormalized(roster, map[string]bool{"sub9": true}))
	})
}

func TestDenormalizedSubjects(t *testing.T) {
	t.Run("JSONArray", func(t *testing.T) {
		assert.Equal(t, []string{"sub1", "sub2"}, DenormalizedSubjects(`["sub1"," sub2 "]`))
	})

	t.Run("CommaSeparated", func(t *testing.T) {
		assert.Equal(t, []string{"sub1", "sub2"}, DenormalizedSubjects(" sub1 , sub2 "))
	})

	t.Run("BrokenJSONFallsBackToCommaSplit", func(t *testing.T) {
		assert.Equal(t, []string{"[sub1", "sub2"}, DenormalizedSubjects("[sub1, sub2"))
	})

	t.Run("NonStringJSONItemsDropped", func(t *testing.T) {
		assert.Equal(t, []string{"sub1"}, DenormalizedSubjects(`["sub1", 42, null]`))
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Nil(t, DenormalizedSubjects(""))
		assert.Nil(t, DenormalizedSubjects("   "))
	})
}
