package meta

import (
	"context"
	"log"
	"sync"

	DB "Feedstream-Backend/src/database"
	"Feedstream-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mappingShape is the lazily-detected schema capability: whether this
// deployment has the staff↔subject mapping collection at all, and which
// field names its rows use. Older databases predate the mapping table and
// some renamed the columns along the way; probing once per process keeps
// the per-request code free of schema branching.
type mappingShape struct {
	available    bool
	staffField   string
	subjectField string
}

var (
	probeOnce sync.Once
	shape     mappingShape
)

func mappingCapability(ctx context.Context) mappingShape {
	probeOnce.Do(func() {
		var sample bson.M
		err := DB.StaffSubjectCollection.FindOne(ctx, bson.M{}).Decode(&sample)
		if err != nil {
			log.Println("⚠️ staffSubjects mapping unavailable, resolver will use fallbacks:", err)
			return
		}
		shape.available = true
		shape.staffField = pickField(sample, "staffId", "staff_id")
		shape.subjectField = pickField(sample, "subjectId", "subject_id")
		log.Printf("✅ staffSubjects mapping detected (%s/%s)", shape.staffField, shape.subjectField)
	})
	return shape
}

func pickField(doc bson.M, preferred, legacy string) string {
	if _, ok := doc[preferred]; ok {
		return preferred
	}
	if _, ok := doc[legacy]; ok {
		return legacy
	}
	return preferred
}

// ResolveFilters returns the valid candidate sets for whichever of
// {semester, subject, staff} the caller left unset, scoped to one
// department. It never hard-fails a UI flow: every missing or broken
// lookup degrades to a strictly broader candidate set.
func ResolveFilters(ctx context.Context, deptID primitive.ObjectID, semester, subjectID, staffID string) (*models.MetaFilters, error) {
	roster, err := loadRoster(ctx, deptID)
	if err != nil {
		return nil, err
	}
	subjects, err := loadSubjects(ctx, deptID)
	if err != nil {
		return nil, err
	}

	links, linksOK := loadLinks(ctx)

	out := &models.MetaFilters{
		Semesters: SemesterSet(subjects),
		Subjects:  resolveSubjects(subjects, links, linksOK, semester, staffID),
		Staff:     resolveStaff(roster, subjects, links, linksOK, semester, subjectID),
	}
	return out, nil
}

// resolveStaff runs the cascade for the staff dimension:
//  1. subject given: staff linked to that subject (semester-checked)
//  2. semester given: staff linked to any subject in that semester
//  3. neither: the whole roster
//  4. mapping unavailable: denormalized per-staff subject lists, and the
//     unfiltered roster as the last resort
func resolveStaff(roster []models.Staff, subjects []models.Subject, links []StaffLink, linksOK bool, semester, subjectID string) []models.Staff {
	if subjectID == "" && semester == "" {
		return roster
	}

	wanted := wantedSubjectSet(subjects, semester, subjectID)

	if linksOK {
		return StaffForSubjects(links, roster, wanted)
	}

	// Degraded: no mapping table. Scan the denormalized lists; an empty
	// match means the data is simply absent, so widen to the roster
	// rather than blank the dropdown.
	matched := StaffForSubjectsDenormalized(roster, wanted)
	if len(matched) == 0 {
		log.Println("⚠️ staff filter degraded to full department roster")
		return roster
	}
	return matched
}

// wantedSubjectSet is the subject-id set the staff cascade matches
// against: one explicit subject (when its semester agrees with the
// requested one) or every subject of the semester.
func wantedSubjectSet(subjects []models.Subject, semester, subjectID string) map[string]bool {
	wanted := map[string]bool{}
	if subjectID != "" {
		if semester == "" {
			wanted[subjectID] = true
			return wanted
		}
		for _, s := range subjects {
			if s.ID.Hex() == subjectID && s.Semester == semester {
				wanted[subjectID] = true
			}
		}
		return wanted
	}
	for _, s := range SubjectsForSemester(subjects, semester) {
		wanted[s.ID.Hex()] = true
	}
	return wanted
}

// resolveSubjects mirrors the staff cascade for the subject dimension:
// semester narrows the list, a given staff member intersects it with what
// they teach, and a missing mapping degrades to the semester list alone.
func resolveSubjects(subjects []models.Subject, links []StaffLink, linksOK bool, semester, staffID string) []models.Subject {
	candidates := SubjectsForSemester(subjects, semester)
	if staffID == "" {
		return candidates
	}
	if !linksOK {
		log.Println("⚠️ subject filter degraded to unfiltered semester subjects")
		return candidates
	}
	return SubjectsForStaff(links, candidates, staffID)
}

func loadRoster(ctx context.Context, deptID primitive.ObjectID) ([]models.Staff, error) {
	cursor, err := DB.StaffCollection.Find(ctx, bson.M{"departmentId": deptID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var roster []models.Staff
	if err = cursor.All(ctx, &roster); err != nil {
		return nil, err
	}
	return roster, nil
}

func loadSubjects(ctx context.Context, deptID primitive.ObjectID) ([]models.Subject, error) {
	cursor, err := DB.SubjectCollection.Find(ctx, bson.M{"departmentId": deptID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subjects []models.Subject
	if err = cursor.All(ctx, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// loadLinks reads the mapping relation using the probed field names. Any
// failure reads as "mapping unavailable" so the caller falls back.
func loadLinks(ctx context.Context) ([]StaffLink, bool) {
	capability := mappingCapability(ctx)
	if !capability.available {
		return nil, false
	}

	cursor, err := DB.StaffSubjectCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("⚠️ staffSubjects query failed, resolver falling back:", err)
		return nil, false
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err = cursor.All(ctx, &raw); err != nil {
		log.Println("⚠️ staffSubjects decode failed, resolver falling back:", err)
		return nil, false
	}

	links := make([]StaffLink, 0, len(raw))
	for _, doc := range raw {
		links = append(links, StaffLink{
			StaffID:   idString(doc[capability.staffField]),
			SubjectID: idString(doc[capability.subjectField]),
		})
	}
	return links, true
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	default:
		return ""
	}
}
