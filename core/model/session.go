package model

import (
	"fmt"
	"time"
)

// SessionLabel identifies one of the two daily exam slots.
type SessionLabel string

const (
	SessionMorning SessionLabel = "Morning"
	SessionEvening SessionLabel = "Evening"
)

// SessionLabels lists the slots in the order they are processed each day.
var SessionLabels = []SessionLabel{SessionMorning, SessionEvening}

// Session is the unit of conflict freedom: a candidate may sit at most
// one exam per session.
type Session struct {
	Date  time.Time
	Day   string // day-of-week label as given by the timetable
	Label SessionLabel
}

// DateString renders the session date the way the reports expect it.
func (s Session) DateString() string { return s.Date.Format("02-01-2006") }

// FolderDate renders the date for use in file and directory names.
func (s Session) FolderDate() string { return s.Date.Format("02_01_2006") }

func (s Session) String() string {
	return fmt.Sprintf("%s %s", s.DateString(), s.Label)
}
