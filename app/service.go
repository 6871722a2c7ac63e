package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tarun-vijay/examseat/config"
	"github.com/tarun-vijay/examseat/core/events"
	coremetrics "github.com/tarun-vijay/examseat/core/metrics"
	"github.com/tarun-vijay/examseat/core/schedule"
	"github.com/tarun-vijay/examseat/infra/logger"
	"github.com/tarun-vijay/examseat/infra/report"
	"github.com/tarun-vijay/examseat/infra/workbook"
	"github.com/tarun-vijay/examseat/internal/eventbus"
	"github.com/tarun-vijay/examseat/metrics"
)

// Service wires the loaded input, the scheduler and the report writers
// into one batch run.
type Service struct {
	cfg   *config.Config
	log   logger.Logger
	bus   *eventbus.Bus[events.Event]
	sink  coremetrics.Sink
	runID string

	influx *metrics.InfluxSink
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	runID := uuid.NewString()

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	svc := &Service{cfg: cfg, log: logg, runID: runID}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken,
			cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket,
			logger.New("influx"),
		)
		if is, ok := sink.(*metrics.InfluxSink); ok {
			svc.influx = is
		}
		sinks = append(sinks, sink)
	}
	switch len(sinks) {
	case 0:
		svc.sink = coremetrics.NopSink{}
	case 1:
		svc.sink = sinks[0]
	default:
		svc.sink = metrics.NewMultiSink(sinks...)
	}

	svc.bus = eventbus.New[events.Event]()
	return svc, nil
}

// Run executes one batch and blocks until every output is written.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	stop := s.watchEvents()
	defer stop()

	input, err := workbook.Load(s.cfg.Input.File, logger.New("workbook"))
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}
	s.log.Infof("run %s: %d timetable rows, %d rooms, strategy %s",
		s.runID, len(input.Timetable), len(input.Rooms), s.cfg.Allocation.Strategy)

	sched := schedule.New(input.Rooms, input.Enrollment, schedule.Config{
		Strategy: s.cfg.Strategy(),
		Buffer:   s.cfg.Allocation.Buffer,
		RunID:    s.runID,
	}, logger.New("scheduler"), s.bus, s.sink)
	batch := sched.Run(input.Timetable)

	writer := report.NewWriter(s.cfg.Output.Dir, input.Directory, s.cfg.Output.PDF, logger.New("report"))
	for _, out := range batch.Sessions {
		if err := writer.WriteSession(out); err != nil {
			return fmt.Errorf("write session %s: %w", out.Session, err)
		}
	}
	if err := writer.WriteSummary(batch); err != nil {
		return err
	}

	if s.cfg.Output.Archive {
		archive := filepath.Join(s.cfg.Output.Dir, "output.zip")
		if err := report.Bundle(s.cfg.Output.Dir, archive); err != nil {
			return fmt.Errorf("bundle output: %w", err)
		}
		s.log.Infof("bundled output into %s", archive)
	}
	s.log.Infof("run %s: %d of %d sessions emitted", s.runID, batch.Emitted(), len(batch.Sessions))
	return nil
}

// watchEvents logs scheduler events as they happen so operators see
// rejections before the batch finishes. Returns a stop function.
func (s *Service) watchEvents() func() {
	ch := s.bus.Subscribe()
	done := make(chan struct{})
	logg := logger.New("events")
	go func() {
		defer close(done)
		for e := range ch {
			switch ev := e.(type) {
			case events.ConflictDetected:
				logg.Warnf("%s: %d candidates enrolled in clashing courses", ev.Session, len(ev.Pairs))
			case events.CapacityShortfall:
				logg.Warnf("%s: demand %d exceeds supply %d", ev.Session, ev.Demand, ev.Supply)
			case events.CourseIncomplete:
				logg.Warnf("%s: course %s left %d candidates unplaced", ev.Session, ev.Course, ev.Unplaced)
			case events.CapacityViolation:
				logg.Errorf("%s: room %s holds %d over effective %d", ev.Session, ev.RoomID, ev.Used, ev.Effective)
			case events.SessionEmitted:
				logg.Infof("%s: seated %d candidates across %d rooms", ev.Session, ev.Candidates, ev.RoomsUsed)
			default:
				logg.Debugf("event %s", e.Kind())
			}
		}
	}()
	return func() {
		s.bus.Close()
		<-done
	}
}

// Close releases resources held by the service.
func (s *Service) Close() {
	if s.influx != nil {
		s.influx.Close()
	}
}
