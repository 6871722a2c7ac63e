package allocation

import (
	"sort"

	"github.com/tarun-vijay/examseat/core/logger"
	"github.com/tarun-vijay/examseat/core/model"
)

// MinAllocationSize is the smallest slice the fragment-avoidance pass
// will place in a room while candidates would still remain unseated.
const MinAllocationSize = 3

type roomState struct {
	room      model.Room
	effective int
}

type courseKey struct {
	room   string
	course string
}

// RoomAllocator performs capacity-aware greedy placement of one
// session's courses. Usage never leaks between sessions: a fresh
// allocator is constructed per session.
type RoomAllocator struct {
	rooms       []roomState
	policy      CapacityPolicy
	usage       map[string]int
	courseUsage map[courseKey]int
	log         logger.Logger
}

// New builds a session-scoped allocator over the room registry.
func New(rooms []model.Room, strategy model.Strategy, buffer int, log logger.Logger) *RoomAllocator {
	if log == nil {
		log = nopLogger{}
	}
	states := make([]roomState, 0, len(rooms))
	usage := make(map[string]int, len(rooms))
	for _, r := range rooms {
		states = append(states, roomState{room: r, effective: r.EffectiveCapacity(buffer)})
		usage[r.ID] = 0
	}
	return &RoomAllocator{
		rooms:       states,
		policy:      PolicyFor(strategy),
		usage:       usage,
		courseUsage: make(map[courseKey]int),
		log:         log,
	}
}

// TotalEffectiveCapacity sums the effective capacity over all rooms.
// Rooms with a misconfigured buffer contribute negatively, matching the
// pre-allocation supply check of the seats-left report.
func (a *RoomAllocator) TotalEffectiveCapacity() int {
	total := 0
	for _, r := range a.rooms {
		total += r.effective
	}
	return total
}

// Usage returns the seats currently allotted in the room.
func (a *RoomAllocator) Usage(roomID string) int { return a.usage[roomID] }

func (a *RoomAllocator) available(r roomState, course string) int {
	return a.policy.Available(r.effective, a.usage[r.room.ID], a.courseUsage[courseKey{r.room.ID, course}])
}

func (a *RoomAllocator) register(roomID, course string, count int) {
	a.usage[roomID] += count
	a.courseUsage[courseKey{roomID, course}] += count
}

// AllocateCourse seats the course's candidates. Rooms of a single
// building are preferred: the first building (ids ascending) whose total
// availability covers the course wins, otherwise the building with the
// largest availability is used and the rest spills across buildings.
func (a *RoomAllocator) AllocateCourse(c model.Course) CourseResult {
	total := c.Size()
	a.log.Infof("allocating course %s with %d candidates", c.Code, total)

	remaining := append([]string(nil), c.Candidates...)
	var placements []Placement

	chosen := ""
	best := ""
	bestCap := 0
	for _, b := range a.buildingIDs() {
		avail := 0
		for _, r := range a.roomsIn(b) {
			avail += a.available(r, c.Code)
		}
		if avail >= total {
			chosen = b
			a.log.Infof("course %s fits entirely in building %s", c.Code, b)
			break
		}
		if avail > bestCap {
			bestCap = avail
			best = b
		}
	}
	if chosen == "" {
		chosen = best
	}

	if chosen != "" {
		rooms := a.roomsIn(chosen)
		sort.SliceStable(rooms, func(i, j int) bool {
			if rooms[i].effective != rooms[j].effective {
				return rooms[i].effective > rooms[j].effective
			}
			return rooms[i].room.Floor < rooms[j].room.Floor
		})
		ref := rooms[0].room.Floor
		sort.SliceStable(rooms, func(i, j int) bool {
			di := model.FloorDistance(rooms[i].room.Floor, ref)
			dj := model.FloorDistance(rooms[j].room.Floor, ref)
			if di != dj {
				return di < dj
			}
			return rooms[i].effective > rooms[j].effective
		})
		remaining = a.fill(c.Code, remaining, rooms, &placements)
	}

	if len(remaining) > 0 {
		a.log.Warnf("course %s spills across buildings", c.Code)
		var others []roomState
		for _, r := range a.rooms {
			if r.room.Building != chosen {
				others = append(others, r)
			}
		}
		sort.SliceStable(others, func(i, j int) bool {
			if others[i].effective != others[j].effective {
				return others[i].effective > others[j].effective
			}
			if others[i].room.Building != others[j].room.Building {
				return others[i].room.Building < others[j].room.Building
			}
			return others[i].room.Floor < others[j].room.Floor
		})
		remaining = a.fill(c.Code, remaining, others, &placements)
	}

	if len(remaining) > 0 {
		a.log.Errorf("failed to seat %d candidates for course %s", len(remaining), c.Code)
	}
	return CourseResult{Course: c.Code, Requested: total, Placements: placements, Unplaced: remaining}
}

// fill runs the two-pass greedy over a pre-sorted room list: first the
// fragment-avoidance pass, then a forced pass that takes any remaining
// headroom.
func (a *RoomAllocator) fill(course string, candidates []string, rooms []roomState, placements *[]Placement) []string {
	remaining := candidates
	for _, r := range rooms {
		if len(remaining) == 0 {
			break
		}
		avail := a.available(r, course)
		if avail <= 0 {
			continue
		}
		n := min(len(remaining), avail)
		if n < MinAllocationSize && len(remaining) > n {
			// a slice this small would strand a fragment here
			continue
		}
		remaining = a.place(course, r, n, remaining, placements)
		a.log.Infof("placed %d candidates of %s in %s (floor %d, building %s, used %d/%d)",
			n, course, r.room.ID, r.room.Floor, r.room.Building, a.usage[r.room.ID], r.effective)
	}
	if len(remaining) > 0 {
		for _, r := range rooms {
			if len(remaining) == 0 {
				break
			}
			avail := a.available(r, course)
			if avail <= 0 {
				continue
			}
			n := min(len(remaining), avail)
			remaining = a.place(course, r, n, remaining, placements)
			a.log.Infof("placed %d candidates of %s in %s (forced)", n, course, r.room.ID)
		}
	}
	return remaining
}

func (a *RoomAllocator) place(course string, r roomState, n int, remaining []string, placements *[]Placement) []string {
	*placements = append(*placements, Placement{Room: r.room, Candidates: remaining[:n:n]})
	a.register(r.room.ID, course, n)
	return remaining[n:]
}

// CheckViolations scans usage per room after all courses of the session
// have been processed. A non-empty result means the fill arithmetic is
// broken and the session output must be discarded.
func (a *RoomAllocator) CheckViolations() []Violation {
	var out []Violation
	for _, r := range a.rooms {
		if used := a.usage[r.room.ID]; used > r.effective {
			a.log.Errorf("capacity exceeded: room %s holds %d but effective capacity is %d",
				r.room.ID, used, r.effective)
			out = append(out, Violation{RoomID: r.room.ID, Used: used, Effective: r.effective})
		}
	}
	return out
}

// UsageSnapshot returns the occupancy records for every room used in the
// session, ordered by room id. Vacancy is measured against nominal
// capacity.
func (a *RoomAllocator) UsageSnapshot(sess model.Session) []model.CapacityUsage {
	var out []model.CapacityUsage
	for _, r := range a.rooms {
		used := a.usage[r.room.ID]
		if used == 0 {
			continue
		}
		out = append(out, model.CapacityUsage{
			Session:  sess,
			RoomID:   r.room.ID,
			Capacity: r.room.Capacity,
			Building: r.room.Building,
			Allotted: used,
			Vacant:   r.room.Capacity - used,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomID < out[j].RoomID })
	return out
}

func (a *RoomAllocator) buildingIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, r := range a.rooms {
		if _, ok := seen[r.room.Building]; ok {
			continue
		}
		seen[r.room.Building] = struct{}{}
		ids = append(ids, r.room.Building)
	}
	sort.Strings(ids)
	return ids
}

func (a *RoomAllocator) roomsIn(building string) []roomState {
	var out []roomState
	for _, r := range a.rooms {
		if r.room.Building == building {
			out = append(out, r)
		}
	}
	return out
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
