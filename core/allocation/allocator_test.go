package allocation

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/tarun-vijay/examseat/core/model"
)

func candidates(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%03d", prefix, i)
	}
	return out
}

// One building, rooms [30 30 40], dense, buffer 0: a 50-candidate course
// must be fully seated starting with the largest room, then the room
// closest to its floor.
func TestAllocateCourseDenseSingleBuilding(t *testing.T) {
	rooms := []model.Room{
		model.NewRoom("1101", 30, "LHC"),
		model.NewRoom("2101", 30, "LHC"),
		model.NewRoom("3101", 40, "LHC"),
	}
	a := New(rooms, model.StrategyDense, 0, nil)

	res := a.AllocateCourse(model.NewCourse("CS101", candidates("r", 50)))

	if !res.Complete() {
		t.Fatalf("unplaced = %v", res.Unplaced)
	}
	if res.Allotted() != 50 {
		t.Fatalf("allotted = %d, want 50", res.Allotted())
	}
	if len(res.Placements) != 2 {
		t.Fatalf("placements = %d, want 2", len(res.Placements))
	}
	// largest room first, then the closest floor (2101 at distance 1)
	if res.Placements[0].Room.ID != "3101" || len(res.Placements[0].Candidates) != 40 {
		t.Errorf("first placement = %s/%d", res.Placements[0].Room.ID, len(res.Placements[0].Candidates))
	}
	if res.Placements[1].Room.ID != "2101" || len(res.Placements[1].Candidates) != 10 {
		t.Errorf("second placement = %s/%d", res.Placements[1].Room.ID, len(res.Placements[1].Candidates))
	}
	if v := a.CheckViolations(); len(v) != 0 {
		t.Errorf("violations = %+v", v)
	}
}

// Sparse strategy caps each course at half a room's effective capacity;
// the remainder spills to the next room in the building.
func TestAllocateCourseSparseCap(t *testing.T) {
	rooms := []model.Room{
		model.NewRoom("1101", 40, "LHC"),
		model.NewRoom("1102", 12, "LHC"),
	}
	a := New(rooms, model.StrategySparse, 0, nil)

	resA := a.AllocateCourse(model.NewCourse("CS101", candidates("a", 25)))
	resB := a.AllocateCourse(model.NewCourse("MA202", candidates("b", 25)))

	for _, res := range []CourseResult{resA, resB} {
		if !res.Complete() {
			t.Fatalf("course %s unplaced = %d", res.Course, len(res.Unplaced))
		}
		if res.Placements[0].Room.ID != "1101" || len(res.Placements[0].Candidates) != 20 {
			t.Errorf("course %s big room slice = %d, want 20 (half of 40)",
				res.Course, len(res.Placements[0].Candidates))
		}
		if res.Placements[1].Room.ID != "1102" || len(res.Placements[1].Candidates) != 5 {
			t.Errorf("course %s spill slice = %d, want 5", res.Course, len(res.Placements[1].Candidates))
		}
	}
	if a.Usage("1101") != 40 || a.Usage("1102") != 10 {
		t.Errorf("usage = %d/%d", a.Usage("1101"), a.Usage("1102"))
	}
	if v := a.CheckViolations(); len(v) != 0 {
		t.Errorf("violations = %+v", v)
	}
}

// Sparse with no spill room: each 25-candidate course gets exactly 20
// seats and reports the rest unplaced.
func TestAllocateCourseSparseIncomplete(t *testing.T) {
	rooms := []model.Room{model.NewRoom("1101", 40, "LHC")}
	a := New(rooms, model.StrategySparse, 0, nil)

	resA := a.AllocateCourse(model.NewCourse("CS101", candidates("a", 25)))
	resB := a.AllocateCourse(model.NewCourse("MA202", candidates("b", 25)))

	for _, res := range []CourseResult{resA, resB} {
		if res.Complete() {
			t.Fatalf("course %s unexpectedly complete", res.Course)
		}
		if res.Allotted() != 20 || len(res.Unplaced) != 5 {
			t.Errorf("course %s allotted=%d unplaced=%d", res.Course, res.Allotted(), len(res.Unplaced))
		}
	}
	if a.Usage("1101") != 40 {
		t.Errorf("usage = %d, want 40", a.Usage("1101"))
	}
}

// A slice smaller than MinAllocationSize is skipped while candidates
// would still remain, then taken by the forced pass.
func TestFragmentAvoidanceThenForcedFill(t *testing.T) {
	rooms := []model.Room{
		model.NewRoom("1101", 10, "LHC"),
		model.NewRoom("1102", 2, "LHC"),
	}
	a := New(rooms, model.StrategyDense, 0, nil)

	res := a.AllocateCourse(model.NewCourse("CS101", candidates("r", 13)))

	if len(res.Placements) != 2 {
		t.Fatalf("placements = %d, want 2", len(res.Placements))
	}
	if res.Placements[0].Room.ID != "1101" || len(res.Placements[0].Candidates) != 10 {
		t.Errorf("first placement = %s/%d", res.Placements[0].Room.ID, len(res.Placements[0].Candidates))
	}
	// forced pass takes the 2-seat room the first pass skipped
	if res.Placements[1].Room.ID != "1102" || len(res.Placements[1].Candidates) != 2 {
		t.Errorf("forced placement = %s/%d", res.Placements[1].Room.ID, len(res.Placements[1].Candidates))
	}
	if len(res.Unplaced) != 1 {
		t.Errorf("unplaced = %d, want 1", len(res.Unplaced))
	}
}

// When no single building covers a course, the building with the most
// headroom is used and the remainder crosses buildings.
func TestAllocateCourseCrossBuildingFallback(t *testing.T) {
	rooms := []model.Room{
		model.NewRoom("1101", 10, "A"),
		model.NewRoom("1201", 50, "B"),
	}
	a := New(rooms, model.StrategyDense, 0, nil)

	first := a.AllocateCourse(model.NewCourse("CS101", candidates("x", 30)))
	if !first.Complete() || len(first.Placements) != 1 || first.Placements[0].Room.ID != "1201" {
		t.Fatalf("first course placements = %+v", first.Placements)
	}

	second := a.AllocateCourse(model.NewCourse("MA202", candidates("y", 35)))
	if len(second.Placements) != 2 {
		t.Fatalf("placements = %d, want 2", len(second.Placements))
	}
	if second.Placements[0].Room.ID != "1201" || len(second.Placements[0].Candidates) != 20 {
		t.Errorf("in-building placement = %s/%d", second.Placements[0].Room.ID, len(second.Placements[0].Candidates))
	}
	if second.Placements[1].Room.ID != "1101" || len(second.Placements[1].Candidates) != 10 {
		t.Errorf("cross-building placement = %s/%d", second.Placements[1].Room.ID, len(second.Placements[1].Candidates))
	}
	if len(second.Unplaced) != 5 {
		t.Errorf("unplaced = %d, want 5", len(second.Unplaced))
	}
}

func TestAllocateCourseDeterminism(t *testing.T) {
	rooms := []model.Room{
		model.NewRoom("2101", 25, "B"),
		model.NewRoom("1101", 25, "A"),
		model.NewRoom("3101", 35, "B"),
		model.NewRoom("1201", 15, "A"),
	}
	run := func() []CourseResult {
		a := New(rooms, model.StrategySparse, 2, nil)
		return []CourseResult{
			a.AllocateCourse(model.NewCourse("CS101", candidates("p", 40))),
			a.AllocateCourse(model.NewCourse("MA202", candidates("q", 30))),
		}
	}
	first := run()
	for i := 0; i < 10; i++ {
		if got := run(); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestUsageSnapshot(t *testing.T) {
	rooms := []model.Room{
		model.NewRoom("1101", 30, "A"),
		model.NewRoom("1102", 30, "A"),
	}
	a := New(rooms, model.StrategyDense, 5, nil)
	sess := model.Session{Day: "Monday", Label: model.SessionMorning}
	res := a.AllocateCourse(model.NewCourse("CS101", candidates("r", 25)))
	if !res.Complete() {
		t.Fatalf("unplaced = %v", res.Unplaced)
	}

	snap := a.UsageSnapshot(sess)
	if len(snap) != 1 {
		t.Fatalf("snapshot rooms = %d, want 1", len(snap))
	}
	got := snap[0]
	if got.RoomID != "1101" || got.Allotted != 25 {
		t.Errorf("snapshot = %+v", got)
	}
	// vacancy is measured against nominal capacity, not effective
	if got.Vacant != 5 {
		t.Errorf("vacant = %d, want 5", got.Vacant)
	}
}

func TestTotalEffectiveCapacity(t *testing.T) {
	rooms := []model.Room{
		model.NewRoom("1101", 30, "A"),
		model.NewRoom("1102", 3, "A"), // buffer exceeds nominal capacity
	}
	a := New(rooms, model.StrategyDense, 5, nil)
	if got := a.TotalEffectiveCapacity(); got != 23 {
		t.Errorf("total effective = %d, want 23", got)
	}
}
