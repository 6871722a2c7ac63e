package events

import (
	"github.com/tarun-vijay/examseat/core/conflict"
	"github.com/tarun-vijay/examseat/core/model"
)

// Event is implemented by every allocation event.
type Event interface {
	Kind() string
}

// ConflictDetected is published when a session is skipped because one or
// more candidates are registered under multiple courses.
type ConflictDetected struct {
	Session model.Session
	Pairs   []conflict.Pair
}

func (ConflictDetected) Kind() string { return "conflict_detected" }

// CapacityShortfall is published when a session's total demand exceeds
// the aggregate effective capacity before any allocation is attempted.
type CapacityShortfall struct {
	Session model.Session
	Demand  int
	Supply  int
}

func (CapacityShortfall) Kind() string { return "capacity_shortfall" }

// CourseIncomplete is published when a course's candidates could not be
// fully seated after both building passes.
type CourseIncomplete struct {
	Session  model.Session
	Course   string
	Unplaced int
}

func (CourseIncomplete) Kind() string { return "course_incomplete" }

// CapacityViolation is published when the post-hoc usage check fails and
// the session output is discarded.
type CapacityViolation struct {
	Session   model.Session
	RoomID    string
	Used      int
	Effective int
}

func (CapacityViolation) Kind() string { return "capacity_violation" }

// SessionEmitted is published when a session's allocation is accepted.
type SessionEmitted struct {
	Session    model.Session
	Candidates int
	RoomsUsed  int
}

func (SessionEmitted) Kind() string { return "session_emitted" }
