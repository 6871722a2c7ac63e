// Package metrics defines the sink interfaces used to record allocation
// outcomes for observability purposes.
package metrics

import (
	"time"

	"github.com/tarun-vijay/examseat/core/model"
)

// SessionResult represents one processed session to be recorded.
type SessionResult struct {
	RunID      string
	Session    model.Session
	Outcome    string // emitted, skipped, conflict, shortfall, violation
	Candidates int
	RoomsUsed  int
	Time       time.Time
}

// CourseResult represents one allocated course to be recorded.
type CourseResult struct {
	RunID    string
	Session  model.Session
	Course   string
	Allotted int
	Unplaced int
	Time     time.Time
}

// Sink records allocation results.
type Sink interface {
	RecordSessionResult(res SessionResult) error
	RecordCourseResult(res CourseResult) error
}

// OccupancyRecorder records per-room occupancy ratios of emitted
// sessions. Implemented by sinks that track room utilisation.
type OccupancyRecorder interface {
	RecordOccupancy(usage []model.CapacityUsage) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSessionResult(SessionResult) error { return nil }
func (NopSink) RecordCourseResult(CourseResult) error   { return nil }
