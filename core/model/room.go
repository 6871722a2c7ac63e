package model

import "fmt"

// Room represents an examination room from the venue registry.
type Room struct {
	ID       string
	Capacity int    // nominal seat count from the registry
	Building string // building (block) identifier
	Floor    int    // derived from the room identifier
}

// NewRoom builds a Room and derives its floor from the identifier.
func NewRoom(id string, capacity int, building string) Room {
	return Room{ID: id, Capacity: capacity, Building: building, Floor: FloorOf(id)}
}

// EffectiveCapacity returns the usable seat count once the configured
// buffer is withheld. The result may be negative when the buffer exceeds
// the nominal capacity; callers treat such rooms as having no headroom.
func (r Room) EffectiveCapacity(buffer int) int {
	return r.Capacity - buffer
}

// Validate checks that the registry entry is usable.
func (r Room) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("room id is required")
	}
	if r.Capacity < 0 {
		return fmt.Errorf("room %s: capacity must not be negative", r.ID)
	}
	return nil
}
