package allocation

import "github.com/tarun-vijay/examseat/core/model"

// Placement is one confirmed slice of a course's candidates in a room.
type Placement struct {
	Room       model.Room
	Candidates []string
}

// CourseResult is the outcome of allocating one course within a session.
// Unplaced lists the candidates that could not be seated after both the
// in-building and cross-building passes.
type CourseResult struct {
	Course     string
	Requested  int
	Placements []Placement
	Unplaced   []string
}

// Complete reports whether every requested candidate was seated.
func (r CourseResult) Complete() bool { return len(r.Unplaced) == 0 }

// Allotted returns the number of candidates that were seated.
func (r CourseResult) Allotted() int { return r.Requested - len(r.Unplaced) }

// Violation records a room whose post-hoc usage exceeds its effective
// capacity. Any violation indicates a defect in the fill arithmetic, so
// the session producing it must be discarded.
type Violation struct {
	RoomID    string
	Used      int
	Effective int
}
