package schedule

import (
	"github.com/tarun-vijay/examseat/core/allocation"
	"github.com/tarun-vijay/examseat/core/conflict"
	"github.com/tarun-vijay/examseat/core/model"
)

// OutcomeKind tags the terminal state of one processed session.
type OutcomeKind int

const (
	// OutcomeSkipped means the slot had no exams scheduled.
	OutcomeSkipped OutcomeKind = iota
	// OutcomeConflict means a candidate was double-booked and the
	// session produced no output.
	OutcomeConflict
	// OutcomeShortfall means demand exceeded the aggregate effective
	// capacity before any allocation was attempted.
	OutcomeShortfall
	// OutcomeViolation means the post-hoc capacity check failed and the
	// session's output was discarded.
	OutcomeViolation
	// OutcomeEmitted means the session's allocation was accepted.
	OutcomeEmitted
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeConflict:
		return "conflict"
	case OutcomeShortfall:
		return "shortfall"
	case OutcomeViolation:
		return "violation"
	case OutcomeEmitted:
		return "emitted"
	default:
		return "unknown"
	}
}

// SessionOutcome is the tagged result of processing one (date, slot).
// Only OutcomeEmitted carries seating and capacity records.
type SessionOutcome struct {
	Session model.Session
	Kind    OutcomeKind

	// Conflicts is set for OutcomeConflict.
	Conflicts conflict.Report
	// Demand and Supply are set for OutcomeShortfall.
	Demand int
	Supply int
	// Violations is set for OutcomeViolation.
	Violations []allocation.Violation

	// Incomplete lists courses that could not be fully seated. The
	// session still emits its fully seated courses (best-effort).
	Incomplete []allocation.CourseResult

	// Seating and Capacity hold the accepted output for OutcomeEmitted.
	Seating  []model.SeatingRecord
	Capacity []model.CapacityUsage
}

// BatchResult accumulates the accepted output of an entire run.
type BatchResult struct {
	Sessions []SessionOutcome
	Seating  []model.SeatingRecord
	Capacity []model.CapacityUsage
}

// Emitted counts sessions that produced output.
func (b BatchResult) Emitted() int {
	n := 0
	for _, s := range b.Sessions {
		if s.Kind == OutcomeEmitted {
			n++
		}
	}
	return n
}
