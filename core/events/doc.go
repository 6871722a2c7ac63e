// Package events defines the allocation related events emitted on the
// event bus.
//
// Available event types:
//   - ConflictDetected: a session aborted because a candidate is double-booked
//   - CapacityShortfall: session demand exceeds the aggregate effective capacity
//   - CourseIncomplete: a course could not be fully seated
//   - CapacityViolation: post-hoc usage check failed, session discarded
//   - SessionEmitted: a session's allocation was accepted
package events
