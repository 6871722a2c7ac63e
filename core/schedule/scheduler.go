package schedule

import (
	"sort"
	"time"

	"github.com/tarun-vijay/examseat/core/allocation"
	"github.com/tarun-vijay/examseat/core/conflict"
	"github.com/tarun-vijay/examseat/core/events"
	"github.com/tarun-vijay/examseat/core/logger"
	coremetrics "github.com/tarun-vijay/examseat/core/metrics"
	"github.com/tarun-vijay/examseat/core/model"
	"github.com/tarun-vijay/examseat/internal/eventbus"
)

// EnrollmentSource resolves a course code to its sorted candidate ids.
type EnrollmentSource interface {
	Candidates(course string) []string
}

// Config carries the run parameters of one batch.
type Config struct {
	Strategy model.Strategy
	Buffer   int
	RunID    string
}

// Scheduler drives the batch: one date at a time, one session within a
// date, one course within a session. The room registry is read-only; a
// fresh allocator (and thus fresh usage state) is created per session.
type Scheduler struct {
	rooms  []model.Room
	enroll EnrollmentSource
	cfg    Config
	log    logger.Logger
	bus    *eventbus.Bus[events.Event]
	sink   coremetrics.Sink
}

// New constructs a Scheduler. bus may be nil when no event consumers are
// attached; sink may be nil to disable metrics.
func New(rooms []model.Room, enroll EnrollmentSource, cfg Config, log logger.Logger, bus *eventbus.Bus[events.Event], sink coremetrics.Sink) *Scheduler {
	if log == nil {
		log = nopLogger{}
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return &Scheduler{rooms: rooms, enroll: enroll, cfg: cfg, log: log, bus: bus, sink: sink}
}

// Run processes every timetable row and returns the accumulated batch
// output. A malformed row is logged and skipped; the batch continues.
func (s *Scheduler) Run(rows []model.TimetableRow) BatchResult {
	var batch BatchResult
	for i, row := range rows {
		s.processRow(i, row, &batch)
	}
	s.log.Infof("batch finished: %d sessions processed, %d emitted", len(batch.Sessions), batch.Emitted())
	return batch
}

func (s *Scheduler) processRow(idx int, row model.TimetableRow, batch *BatchResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("timetable row %d (%s): %v, skipping date", idx, row.Day, r)
		}
	}()

	if row.Date.IsZero() {
		s.log.Warnf("timetable row %d has no date, skipping", idx)
		return
	}
	s.log.Infof("processing date %s (%s)", row.Date.Format("02-01-2006"), row.Day)

	for _, label := range model.SessionLabels {
		outcome := s.runSession(row.Session(label), row.CourseList(label))
		batch.Sessions = append(batch.Sessions, outcome)
		if outcome.Kind == OutcomeEmitted {
			batch.Seating = append(batch.Seating, outcome.Seating...)
			batch.Capacity = append(batch.Capacity, outcome.Capacity...)
		}
	}
}

func (s *Scheduler) runSession(sess model.Session, cell string) SessionOutcome {
	codes := ParseCourseList(cell)
	if len(codes) == 0 {
		s.log.Debugf("%s: no exams scheduled", sess)
		return SessionOutcome{Session: sess, Kind: OutcomeSkipped}
	}

	courses, enrollments := s.resolveCourses(codes)
	demand := 0
	for _, c := range courses {
		demand += c.Size()
		s.log.Infof("%s: %s has %d candidates", sess, c.Code, c.Size())
	}

	if rep := conflict.Detect(enrollments); rep.HasConflict() {
		for _, p := range rep.Pairs {
			s.log.Errorf("%s: candidate %s registered in %v", sess, p.Candidate, p.Courses)
		}
		s.publish(events.ConflictDetected{Session: sess, Pairs: rep.Pairs})
		out := SessionOutcome{Session: sess, Kind: OutcomeConflict, Conflicts: rep}
		s.recordSession(out, demand, 0)
		return out
	}

	alloc := allocation.New(s.rooms, s.cfg.Strategy, s.cfg.Buffer, s.log)
	supply := alloc.TotalEffectiveCapacity()
	if demand > supply {
		s.log.Errorf("%s: insufficient capacity, need %d seats but only %d available", sess, demand, supply)
		s.publish(events.CapacityShortfall{Session: sess, Demand: demand, Supply: supply})
		out := SessionOutcome{Session: sess, Kind: OutcomeShortfall, Demand: demand, Supply: supply}
		s.recordSession(out, demand, 0)
		return out
	}

	// largest courses claim contiguous building capacity first; ties
	// keep timetable order
	ordered := make([]model.Course, len(courses))
	copy(ordered, courses)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Size() > ordered[j].Size() })

	byRoom := make(map[string]map[string][]string)
	roomByID := make(map[string]model.Room)
	var incomplete []allocation.CourseResult
	for _, c := range ordered {
		res := alloc.AllocateCourse(c)
		for _, p := range res.Placements {
			if byRoom[p.Room.ID] == nil {
				byRoom[p.Room.ID] = make(map[string][]string)
			}
			byRoom[p.Room.ID][res.Course] = append(byRoom[p.Room.ID][res.Course], p.Candidates...)
			roomByID[p.Room.ID] = p.Room
		}
		if !res.Complete() {
			incomplete = append(incomplete, res)
			s.publish(events.CourseIncomplete{Session: sess, Course: res.Course, Unplaced: len(res.Unplaced)})
		}
		s.recordCourse(sess, res)
	}

	if viols := alloc.CheckViolations(); len(viols) > 0 {
		for _, v := range viols {
			s.publish(events.CapacityViolation{Session: sess, RoomID: v.RoomID, Used: v.Used, Effective: v.Effective})
		}
		s.log.Errorf("%s: capacity violations detected, discarding session output", sess)
		out := SessionOutcome{Session: sess, Kind: OutcomeViolation, Violations: viols, Incomplete: incomplete}
		s.recordSession(out, demand, 0)
		return out
	}

	seating := buildSeating(sess, byRoom, roomByID)
	capacity := alloc.UsageSnapshot(sess)
	out := SessionOutcome{
		Session:    sess,
		Kind:       OutcomeEmitted,
		Incomplete: incomplete,
		Seating:    seating,
		Capacity:   capacity,
	}
	s.publish(events.SessionEmitted{Session: sess, Candidates: demand, RoomsUsed: len(capacity)})
	s.recordSession(out, demand, len(capacity))
	s.log.Infof("%s: emitted %d roster records over %d rooms", sess, len(seating), len(capacity))
	return out
}

// resolveCourses maps the parsed codes to enrolled candidates. Duplicate
// codes within one cell collapse to a single course.
func (s *Scheduler) resolveCourses(codes []string) ([]model.Course, map[string][]string) {
	courses := make([]model.Course, 0, len(codes))
	enrollments := make(map[string][]string, len(codes))
	for _, code := range codes {
		if _, ok := enrollments[code]; ok {
			continue
		}
		c := model.NewCourse(code, s.enroll.Candidates(code))
		courses = append(courses, c)
		enrollments[code] = c.Candidates
	}
	return courses, enrollments
}

func buildSeating(sess model.Session, byRoom map[string]map[string][]string, roomByID map[string]model.Room) []model.SeatingRecord {
	roomIDs := make([]string, 0, len(byRoom))
	for id := range byRoom {
		roomIDs = append(roomIDs, id)
	}
	sort.Strings(roomIDs)

	var records []model.SeatingRecord
	for _, id := range roomIDs {
		room := roomByID[id]
		codes := make([]string, 0, len(byRoom[id]))
		for code := range byRoom[id] {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			ids := append([]string(nil), byRoom[id][code]...)
			sort.Strings(ids)
			records = append(records, model.SeatingRecord{
				Session:    sess,
				Course:     code,
				RoomID:     id,
				Building:   room.Building,
				Capacity:   room.Capacity,
				Allotted:   len(ids),
				Candidates: ids,
			})
		}
	}
	return records
}

func (s *Scheduler) publish(e events.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

func (s *Scheduler) recordSession(out SessionOutcome, demand, roomsUsed int) {
	err := s.sink.RecordSessionResult(coremetrics.SessionResult{
		RunID:      s.cfg.RunID,
		Session:    out.Session,
		Outcome:    out.Kind.String(),
		Candidates: demand,
		RoomsUsed:  roomsUsed,
		Time:       time.Now(),
	})
	if err != nil {
		s.log.Warnf("record session metrics: %v", err)
	}
	if out.Kind == OutcomeEmitted {
		if rec, ok := s.sink.(coremetrics.OccupancyRecorder); ok {
			if err := rec.RecordOccupancy(out.Capacity); err != nil {
				s.log.Warnf("record occupancy metrics: %v", err)
			}
		}
	}
}

func (s *Scheduler) recordCourse(sess model.Session, res allocation.CourseResult) {
	err := s.sink.RecordCourseResult(coremetrics.CourseResult{
		RunID:    s.cfg.RunID,
		Session:  sess,
		Course:   res.Course,
		Allotted: res.Allotted(),
		Unplaced: len(res.Unplaced),
		Time:     time.Now(),
	})
	if err != nil {
		s.log.Warnf("record course metrics: %v", err)
	}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
