// Package metrics provides sink implementations recording allocation
// outcomes to Prometheus and InfluxDB.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/tarun-vijay/examseat/core/metrics"
	"github.com/tarun-vijay/examseat/core/model"
)

// PromSink records allocation events in Prometheus metrics.
type PromSink struct {
	sessions  *prometheus.CounterVec
	allotted  *prometheus.CounterVec
	unplaced  *prometheus.CounterVec
	occupancy prometheus.Histogram
}

// NewPromSink registers allocation metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	sessions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_sessions_total",
		Help: "Total number of processed sessions by outcome",
	}, []string{"outcome", "session"})
	allotted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_candidates_total",
		Help: "Total number of seated candidates",
	}, []string{"course"})
	unplaced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_unplaced_candidates_total",
		Help: "Total number of candidates left unseated per course",
	}, []string{"course"})
	occupancy := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "allocation_room_occupancy_ratio",
		Help:    "Per-room occupancy ratio of emitted sessions",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})

	sessions, err := registerCounterVec(reg, sessions)
	if err != nil {
		return nil, err
	}
	allotted, err = registerCounterVec(reg, allotted)
	if err != nil {
		return nil, err
	}
	unplaced, err = registerCounterVec(reg, unplaced)
	if err != nil {
		return nil, err
	}
	if err := reg.Register(occupancy); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			occupancy = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{sessions: sessions, allotted: allotted, unplaced: unplaced, occupancy: occupancy}, nil
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec), nil
		}
		return nil, err
	}
	return c, nil
}

// RecordSessionResult increments the session outcome counter.
func (s *PromSink) RecordSessionResult(res coremetrics.SessionResult) error {
	s.sessions.WithLabelValues(res.Outcome, string(res.Session.Label)).Inc()
	return nil
}

// RecordCourseResult adds the allotted and unplaced counts of a course.
func (s *PromSink) RecordCourseResult(res coremetrics.CourseResult) error {
	s.allotted.WithLabelValues(res.Course).Add(float64(res.Allotted))
	if res.Unplaced > 0 {
		s.unplaced.WithLabelValues(res.Course).Add(float64(res.Unplaced))
	}
	return nil
}

// RecordOccupancy observes the occupancy ratio of each used room.
func (s *PromSink) RecordOccupancy(usage []model.CapacityUsage) error {
	for _, u := range usage {
		if u.Capacity <= 0 {
			continue
		}
		s.occupancy.Observe(float64(u.Allotted) / float64(u.Capacity))
	}
	return nil
}
