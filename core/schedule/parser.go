package schedule

import "strings"

// courseListSeparator delimits course codes within one timetable cell.
const courseListSeparator = ";"

// noExamMarker is the timetable cell value meaning the slot is unused.
const noExamMarker = "NO EXAM"

// ParseCourseList splits a timetable cell into course codes. Empty cells
// and the no-exam marker (case-insensitive) yield nil. Codes are
// whitespace-trimmed; blank fragments are dropped.
func ParseCourseList(cell string) []string {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || strings.EqualFold(trimmed, noExamMarker) {
		return nil
	}
	var courses []string
	for _, item := range strings.Split(cell, courseListSeparator) {
		if code := strings.TrimSpace(item); code != "" {
			courses = append(courses, code)
		}
	}
	return courses
}
