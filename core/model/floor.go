package model

import "strings"

// FloorOf derives the floor level encoded in a room identifier.
//
// Identifiers of five or more digits starting with "10" belong to the
// tenth-floor block, where the leading "10" is the floor rather than a
// single digit. Shorter numeric-prefixed identifiers (>=4 characters)
// encode the floor in their first digit. Anything else is ground floor.
func FloorOf(roomID string) int {
	id := strings.TrimSpace(roomID)

	if len(id) >= 5 && isAllDigits(id) && strings.HasPrefix(id, "10") {
		return 10
	}
	if len(id) >= 4 && id[0] >= '0' && id[0] <= '9' {
		return int(id[0] - '0')
	}
	return 0
}

// FloorDistance returns the absolute number of floors between two levels.
func FloorDistance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
