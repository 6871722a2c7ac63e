package model

// Allocation assigns a subset of one course's candidates to a room
// within a session. Created only after the room's available capacity has
// been confirmed for the slice.
type Allocation struct {
	Room       Room
	Course     string
	Session    Session
	Candidates []string
}

// CapacityUsage is the per-room occupancy snapshot taken once a
// session's allocation has been accepted. Vacant is measured against the
// nominal capacity, matching the seats-left report.
type CapacityUsage struct {
	Session  Session
	RoomID   string
	Capacity int
	Building string
	Allotted int
	Vacant   int
}

// SeatingRecord is one row of the batch-level seating summary: a single
// (session, course, room) roster handed to the export collaborators.
type SeatingRecord struct {
	Session    Session
	Course     string
	RoomID     string
	Building   string
	Capacity   int
	Allotted   int
	Candidates []string
}
