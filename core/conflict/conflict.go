// Package conflict detects candidates scheduled into more than one
// course within a single session.
package conflict

import "sort"

// Pair names one double-booked candidate and every course claiming them.
type Pair struct {
	Candidate string
	Courses   []string
}

// Report is the outcome of a conflict scan over one session.
type Report struct {
	Pairs []Pair
}

// HasConflict reports whether any candidate is double-booked.
func (r Report) HasConflict() bool { return len(r.Pairs) > 0 }

// Detect builds the inverse candidate -> courses mapping and flags every
// candidate registered under two or more courses. Pairs are ordered by
// candidate id and course lists are sorted, so the report is stable for
// identical input.
func Detect(enrollments map[string][]string) Report {
	byCandidate := make(map[string][]string)
	for course, ids := range enrollments {
		for _, id := range ids {
			byCandidate[id] = append(byCandidate[id], course)
		}
	}

	var pairs []Pair
	for id, courses := range byCandidate {
		if len(courses) < 2 {
			continue
		}
		sort.Strings(courses)
		pairs = append(pairs, Pair{Candidate: id, Courses: courses})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Candidate < pairs[j].Candidate })
	return Report{Pairs: pairs}
}
