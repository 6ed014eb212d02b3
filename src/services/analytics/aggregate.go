package analytics

import (
	"fmt"
	"math"
	"sort"

	"Feedstream-Backend/src/models"
	"Feedstream-Backend/src/services/ratings"
)

// Filter narrows an aggregation to one subject, staff member or semester.
// Empty fields match everything.
type Filter struct {
	SubjectID string
	StaffID   string
	Semester  string
}

// Inputs is the metadata the aggregation joins against, keyed by string
// id. Missing entries are fine: unknown questions still rate by keyword,
// unknown subjects/staff get synthesized display names.
type Inputs struct {
	Questions map[string]models.NormalizedQuestion
	Subjects  map[string]models.Subject
	Staff     map[string]models.Staff
}

type accum struct {
	responses int
	sum       float64
	rated     int
}

// Aggregate folds a response set into the analytics shape: the 1..5
// rating distribution plus per-subject, per-staff and per-semester
// slices. Internal sums keep full precision; rounding to 2 decimals
// happens only on the way out.
func Aggregate(rows []models.Response, in Inputs, filter Filter) *models.FormAnalytics {
	out := &models.FormAnalytics{
		RatingBuckets: models.NewRatingBuckets(),
		SubjectStats:  []models.AggregateRow{},
		StaffStats:    []models.AggregateRow{},
		SemesterStats: []models.SemesterRow{},
	}

	var globalSum float64
	subjectAccums := map[string]*accum{}
	staffAccums := map[string]*accum{}
	semesterCounts := map[string]int{}

	for _, row := range rows {
		if filter.SubjectID != "" && row.SubjectID != filter.SubjectID {
			continue
		}
		if filter.StaffID != "" && row.StaffID != filter.StaffID {
			continue
		}

		semester := "N/A"
		if subject, ok := in.Subjects[row.SubjectID]; ok && subject.Semester != "" {
			semester = subject.Semester
		}
		if filter.Semester != "" && semester != filter.Semester {
			continue
		}

		// Response-level counters tick once per response, whether or not
		// any answer carries a rating.
		out.TotalResponses++
		semesterCounts[semester]++
		if row.SubjectID != "" {
			touch(subjectAccums, row.SubjectID).responses++
		}
		if row.StaffID != "" {
			touch(staffAccums, row.StaffID).responses++
		}

		for qid, value := range row.Answers {
			rating, ok := ratings.Infer(in.Questions[qid], value)
			if !ok {
				continue
			}
			out.RatingBuckets[rating]++
			out.RatingCount++
			globalSum += float64(rating)
			if row.SubjectID != "" {
				a := touch(subjectAccums, row.SubjectID)
				a.sum += float64(rating)
				a.rated++
			}
			if row.StaffID != "" {
				a := touch(staffAccums, row.StaffID)
				a.sum += float64(rating)
				a.rated++
			}
		}
	}

	out.AvgRating = safeAvg(globalSum, out.RatingCount)

	for id, a := range subjectAccums {
		name := fmt.Sprintf("Subject %s", id)
		if subject, ok := in.Subjects[id]; ok && subject.Name != "" {
			name = subject.Name
		}
		out.SubjectStats = append(out.SubjectStats, models.AggregateRow{
			ID:        id,
			Name:      name,
			Responses: a.responses,
			AvgRating: safeAvg(a.sum, a.rated),
		})
	}
	for id, a := range staffAccums {
		name := fmt.Sprintf("Staff %s", id)
		if staff, ok := in.Staff[id]; ok && staff.Name != "" {
			name = staff.Name
		}
		out.StaffStats = append(out.StaffStats, models.AggregateRow{
			ID:        id,
			Name:      name,
			Responses: a.responses,
			AvgRating: safeAvg(a.sum, a.rated),
		})
	}
	for semester, n := range semesterCounts {
		out.SemesterStats = append(out.SemesterStats, models.SemesterRow{
			Semester:  semester,
			Responses: n,
		})
	}
	// map iteration order is random; keep the payload stable for clients
	sort.Slice(out.SubjectStats, func(i, j int) bool { return out.SubjectStats[i].ID < out.SubjectStats[j].ID })
	sort.Slice(out.StaffStats, func(i, j int) bool { return out.StaffStats[i].ID < out.StaffStats[j].ID })
	sort.Slice(out.SemesterStats, func(i, j int) bool { return out.SemesterStats[i].Semester < out.SemesterStats[j].Semester })

	return out
}

func touch(m map[string]*accum, id string) *accum {
	a, ok := m[id]
	if !ok {
		a = &accum{}
		m[id] = a
	}
	return a
}

// safeAvg is sum/count rounded to 2 decimals, and 0 (never NaN) on an
// empty count.
func safeAvg(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(sum/float64(count)*100) / 100
}
