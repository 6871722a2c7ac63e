// Package report renders the accepted batch output into the spreadsheet
// and PDF documents handed to operators.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tarun-vijay/examseat/core/model"
)

var seatingHeader = []any{
	"Date", "Day", "Session", "Course Code", "Room", "Building",
	"Room Capacity", "Allocated Count", "Roll Number List",
}

var seatsLeftHeader = []any{
	"Date", "Day", "Session", "Room No.", "Exam Capacity", "Block", "Allotted", "Vacant",
}

// WriteSeatingSummary writes the batch-level seating summary workbook.
func WriteSeatingSummary(path string, records []model.SeatingRecord) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Seating"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(idx)

	if err := f.SetSheetRow(sheet, "A1", &seatingHeader); err != nil {
		return err
	}
	for i, rec := range records {
		row := []any{
			rec.Session.FolderDate(),
			rec.Session.Day,
			string(rec.Session.Label),
			rec.Course,
			rec.RoomID,
			rec.Building,
			rec.Capacity,
			rec.Allotted,
			strings.Join(rec.Candidates, ";"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// WriteSeatsLeft writes the per-room capacity snapshot workbook with an
// occupancy summary footer.
func WriteSeatsLeft(path string, usage []model.CapacityUsage) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Seats Left"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(idx)

	if err := f.SetSheetRow(sheet, "A1", &seatsLeftHeader); err != nil {
		return err
	}
	for i, u := range usage {
		row := []any{
			u.Session.FolderDate(),
			u.Session.Day,
			string(u.Session.Label),
			u.RoomID,
			u.Capacity,
			u.Building,
			u.Allotted,
			u.Vacant,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	util := Utilize(usage)
	footer := []any{fmt.Sprintf(
		"Occupancy over %d room-sessions: mean %.1f%%, stddev %.1f%%, min %.1f%%, max %.1f%%",
		util.Rooms, util.Mean*100, util.StdDev*100, util.MinimumRatio*100, util.MaximumRatio*100,
	)}
	cell, err := excelize.CoordinatesToCellName(1, len(usage)+3)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &footer); err != nil {
		return err
	}
	return f.SaveAs(path)
}
