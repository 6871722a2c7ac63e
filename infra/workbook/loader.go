// Package workbook loads the batch input from the xlsx workbook that
// carries the timetable, enrollments, candidate directory and room
// registry sheets.
package workbook

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tarun-vijay/examseat/core/logger"
	"github.com/tarun-vijay/examseat/core/model"
)

// Sheet names expected in the input workbook.
const (
	SheetTimetable  = "in_timetable"
	SheetEnrollment = "in_course_roll_mapping"
	SheetDirectory  = "in_roll_name_mapping"
	SheetRooms      = "in_room_capacity"
)

// dateLayouts lists the date renderings accepted in the timetable sheet.
// Day-first only: admitting month-first layouts would let an ambiguous
// cell parse to the wrong date instead of voiding its row.
var dateLayouts = []string{
	"02-01-2006",
	"2006-01-02",
	"02/01/2006",
}

// Input is the fully loaded batch input.
type Input struct {
	Timetable  []model.TimetableRow
	Enrollment *model.EnrollmentIndex
	Directory  map[string]string
	Rooms      []model.Room
}

// Load reads all four input sheets. A missing sheet or column is a
// fatal input error; an unparsable date only invalidates its row, which
// the scheduler then skips.
func Load(path string, log logger.Logger) (*Input, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warnf("close workbook: %v", cerr)
		}
	}()

	timetable, err := loadTimetable(f, log)
	if err != nil {
		return nil, err
	}
	enrollment, err := loadEnrollment(f, log)
	if err != nil {
		return nil, err
	}
	directory, err := loadDirectory(f)
	if err != nil {
		return nil, err
	}
	rooms, err := loadRooms(f)
	if err != nil {
		return nil, err
	}

	log.Infof("loaded %d timetable rows, %d courses, %d candidate names, %d rooms",
		len(timetable), enrollment.Courses(), len(directory), len(rooms))
	return &Input{Timetable: timetable, Enrollment: enrollment, Directory: directory, Rooms: rooms}, nil
}

func loadTimetable(f *excelize.File, log logger.Logger) ([]model.TimetableRow, error) {
	rows, header, err := sheetRows(f, SheetTimetable, "Date", "Day", "Morning", "Evening")
	if err != nil {
		return nil, err
	}
	var out []model.TimetableRow
	for i, row := range rows {
		raw := cell(row, header["Date"])
		if raw == "" {
			continue
		}
		date, ok := parseDate(raw)
		if !ok {
			log.Warnf("timetable row %d: unparsable date %q", i+2, raw)
		}
		out = append(out, model.TimetableRow{
			Date:    date,
			Day:     cell(row, header["Day"]),
			Morning: cell(row, header["Morning"]),
			Evening: cell(row, header["Evening"]),
		})
	}
	return out, nil
}

func loadEnrollment(f *excelize.File, log logger.Logger) (*model.EnrollmentIndex, error) {
	rows, header, err := sheetRows(f, SheetEnrollment, "rollno", "course_code")
	if err != nil {
		return nil, err
	}
	var pairs []model.EnrollmentPair
	for _, row := range rows {
		course := cell(row, header["course_code"])
		candidate := cell(row, header["rollno"])
		if course == "" || candidate == "" {
			continue
		}
		pairs = append(pairs, model.EnrollmentPair{Course: course, Candidate: candidate})
	}
	log.Infof("loaded %d enrollment pairs", len(pairs))
	return model.NewEnrollmentIndex(pairs), nil
}

func loadDirectory(f *excelize.File) (map[string]string, error) {
	rows, header, err := sheetRows(f, SheetDirectory, "Roll", "Name")
	if err != nil {
		return nil, err
	}
	directory := make(map[string]string, len(rows))
	for _, row := range rows {
		if roll := cell(row, header["Roll"]); roll != "" {
			directory[roll] = cell(row, header["Name"])
		}
	}
	return directory, nil
}

func loadRooms(f *excelize.File) ([]model.Room, error) {
	rows, header, err := sheetRows(f, SheetRooms, "Room No.", "Exam Capacity", "Block")
	if err != nil {
		return nil, err
	}
	var rooms []model.Room
	for i, row := range rows {
		id := cell(row, header["Room No."])
		if id == "" {
			continue
		}
		capStr := cell(row, header["Exam Capacity"])
		capacity, err := strconv.Atoi(capStr)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad capacity %q for room %s", SheetRooms, i+2, capStr, id)
		}
		room := model.NewRoom(id, capacity, cell(row, header["Block"]))
		if err := room.Validate(); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", SheetRooms, i+2, err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// sheetRows returns the data rows of a sheet and the index of each
// required column, failing when the sheet or a column is absent.
func sheetRows(f *excelize.File, sheet string, columns ...string) ([][]string, map[string]int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %s is empty", sheet)
	}
	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.TrimSpace(name)] = i
	}
	for _, col := range columns {
		if _, ok := header[col]; !ok {
			return nil, nil, fmt.Errorf("sheet %s: missing column %q", sheet, col)
		}
	}
	return rows[1:], header, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
