package model

import "sort"

// EnrollmentPair is one flat (course, candidate) registration row.
type EnrollmentPair struct {
	Course    string
	Candidate string
}

// EnrollmentIndex aggregates flat registration pairs into a
// course -> sorted candidate set lookup.
type EnrollmentIndex struct {
	byCourse map[string][]string
}

// NewEnrollmentIndex builds the index from flat registration pairs.
// Duplicate registrations collapse.
func NewEnrollmentIndex(pairs []EnrollmentPair) *EnrollmentIndex {
	seen := make(map[string]map[string]struct{})
	for _, p := range pairs {
		set, ok := seen[p.Course]
		if !ok {
			set = make(map[string]struct{})
			seen[p.Course] = set
		}
		set[p.Candidate] = struct{}{}
	}
	byCourse := make(map[string][]string, len(seen))
	for course, set := range seen {
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		byCourse[course] = ids
	}
	return &EnrollmentIndex{byCourse: byCourse}
}

// Candidates returns the sorted candidate ids registered for the course.
// Unknown courses yield an empty list.
func (e *EnrollmentIndex) Candidates(course string) []string {
	ids := e.byCourse[course]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Courses returns the number of distinct courses in the index.
func (e *EnrollmentIndex) Courses() int { return len(e.byCourse) }
