package metrics

import (
	coremetrics "github.com/tarun-vijay/examseat/core/metrics"
	"github.com/tarun-vijay/examseat/core/model"
)

// MultiSink fans allocation records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSessionResult forwards the record to all sinks, returning the
// first error encountered.
func (m *MultiSink) RecordSessionResult(res coremetrics.SessionResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordSessionResult(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordCourseResult forwards the record to all sinks, returning the
// first error encountered.
func (m *MultiSink) RecordCourseResult(res coremetrics.CourseResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordCourseResult(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordOccupancy forwards occupancy snapshots to sinks that track them.
func (m *MultiSink) RecordOccupancy(usage []model.CapacityUsage) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.OccupancyRecorder); ok {
			if err := rec.RecordOccupancy(usage); err != nil {
				return err
			}
		}
	}
	return nil
}
