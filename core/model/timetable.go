package model

import "time"

// TimetableRow is one date of the exam timetable. Morning and Evening
// hold the raw delimiter-separated course lists for each slot.
type TimetableRow struct {
	Date    time.Time
	Day     string
	Morning string
	Evening string
}

// CourseList returns the raw course list string for the given slot.
func (r TimetableRow) CourseList(label SessionLabel) string {
	if label == SessionEvening {
		return r.Evening
	}
	return r.Morning
}

// Session builds the Session value for the given slot of this row.
func (r TimetableRow) Session(label SessionLabel) Session {
	return Session{Date: r.Date, Day: r.Day, Label: label}
}
