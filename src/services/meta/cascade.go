package meta

import (
	"encoding/json"
	"sort"
	"strings"

	"Feedstream-Backend/src/models"
)

// StaffLink is one row of the staff↔subject assignment relation,
// whichever field names the deployment's mapping collection uses.
type StaffLink struct {
	StaffID   string
	SubjectID string
}

// SemesterSet returns the distinct semesters declared across a
// department's subjects, sorted.
func SemesterSet(subjects []models.Subject) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range subjects {
		if s.Semester != "" && !seen[s.Semester] {
			seen[s.Semester] = true
			out = append(out, s.Semester)
		}
	}
	sort.Strings(out)
	return out
}

// SubjectsForSemester narrows subjects to one semester; empty semester
// keeps them all.
func SubjectsForSemester(subjects []models.Subject, semester string) []models.Subject {
	if semester == "" {
		return subjects
	}
	out := make([]models.Subject, 0, len(subjects))
	for _, s := range subjects {
		if s.Semester == semester {
			out = append(out, s)
		}
	}
	return out
}

// SubjectsForStaff intersects a subject candidate list with the subjects
// a staff member is linked to.
func SubjectsForStaff(links []StaffLink, candidates []models.Subject, staffID string) []models.Subject {
	taught := map[string]bool{}
	for _, l := range links {
		if l.StaffID == staffID {
			taught[l.SubjectID] = true
		}
	}
	out := make([]models.Subject, 0, len(candidates))
	for _, s := range candidates {
		if taught[s.ID.Hex()] {
			out = append(out, s)
		}
	}
	return out
}

// StaffForSubjects keeps the roster members linked to any subject in the
// wanted set.
func StaffForSubjects(links []StaffLink, roster []models.Staff, wanted map[string]bool) []models.Staff {
	linked := map[string]bool{}
	for _, l := range links {
		if wanted[l.SubjectID] {
			linked[l.StaffID] = true
		}
	}
	out := make([]models.Staff, 0, len(roster))
	for _, s := range roster {
		if linked[s.ID.Hex()] {
			out = append(out, s)
		}
	}
	return out
}

// StaffForSubjectsDenormalized is the degraded path: it scans each staff
// member's denormalized subject list and matches subject ids by string
// equality.
func StaffForSubjectsDenormalized(roster []models.Staff, wanted map[string]bool) []models.Staff {
	out := make([]models.Staff, 0, len(roster))
	for _, s := range roster {
		for _, id := range DenormalizedSubjects(s.Subjects) {
			if wanted[id] {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// DenormalizedSubjects decodes a per-staff subject list that may be
// JSON-encoded or comma-separated. Garbage decodes to nothing.
func DenormalizedSubjects(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var arr []interface{}
		if err := json.Unmarshal([]byte(trimmed), &arr); err == nil {
			var out []string
			for _, v := range arr {
				if s, ok := v.(string); ok {
					if s = strings.TrimSpace(s); s != "" {
						out = append(out, s)
					}
				}
			}
			return out
		}
	}
	var out []string
	for _, part := range strings.Split(trimmed, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
