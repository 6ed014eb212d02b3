package models

// RatingBuckets maps each rating 1..5 to a count. Always fully populated
// (zero-filled) so chart consumers never handle missing keys.
type RatingBuckets map[int]int

// NewRatingBuckets returns buckets with all five slots present.
func NewRatingBuckets() RatingBuckets {
	return RatingBuckets{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
}

// AggregateRow is one subject's or staff member's slice of the analytics.
type AggregateRow struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Responses int     `json:"responses"`
	AvgRating float64 `json:"avgRating"`
}

// SemesterRow counts responses per semester; "N/A" when the response's
// subject has no semester.
type SemesterRow struct {
	Semester  string `json:"semester"`
	Responses int    `json:"responses"`
}

// FormAnalytics is the aggregation engine output.
type FormAnalytics struct {
	TotalResponses int            `json:"totalResponses"`
	RatingCount    int            `json:"ratingCount"`
	AvgRating      float64        `json:"avgRating"`
	RatingBuckets  RatingBuckets  `json:"ratingBuckets"`
	SubjectStats   []AggregateRow `json:"subjectStats"`
	StaffStats     []AggregateRow `json:"staffStats"`
	SemesterStats  []SemesterRow  `json:"semesterStats"`
}

// MetaFilters is the filter-resolver response: the valid candidate sets
// for whichever of {semester, subject, staff} the caller left unset.
type MetaFilters struct {
	Semesters []string  `json:"semesters"`
	Subjects  []Subject `json:"subjects"`
	Staff     []Staff   `json:"staff"`
}
