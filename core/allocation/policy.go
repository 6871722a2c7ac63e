package allocation

import "github.com/tarun-vijay/examseat/core/model"

// CapacityPolicy controls how much of a room's remaining headroom a
// single course may claim.
type CapacityPolicy interface {
	// Available returns the seats a course may still take in a room
	// given the room's effective capacity, its total usage and the
	// course's own usage of it. Implementations clamp the result to >=0.
	Available(effective, roomUsed, courseUsed int) int
}

// DensePolicy packs each room up to its full effective capacity.
type DensePolicy struct{}

func (DensePolicy) Available(effective, roomUsed, _ int) int {
	return clampNonNegative(effective - roomUsed)
}

// SparsePolicy caps any single course at half a room's effective
// capacity, spreading candidates across more rooms.
type SparsePolicy struct{}

func (SparsePolicy) Available(effective, roomUsed, courseUsed int) int {
	courseLimit := effective / 2
	avail := courseLimit - courseUsed
	if total := effective - roomUsed; total < avail {
		avail = total
	}
	return clampNonNegative(avail)
}

// PolicyFor maps a configured strategy to its capacity policy.
func PolicyFor(s model.Strategy) CapacityPolicy {
	if s == model.StrategySparse {
		return SparsePolicy{}
	}
	return DensePolicy{}
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
