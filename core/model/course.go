package model

import "sort"

// Course is one examined course within a session together with the
// candidates registered for it. Candidate ids are sorted and unique.
type Course struct {
	Code       string
	Candidates []string
}

// NewCourse builds a Course, collapsing duplicate candidate ids and
// sorting the remainder for deterministic allocation order.
func NewCourse(code string, candidates []string) Course {
	seen := make(map[string]struct{}, len(candidates))
	ids := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return Course{Code: code, Candidates: ids}
}

// Size returns the number of registered candidates.
func (c Course) Size() int { return len(c.Candidates) }
