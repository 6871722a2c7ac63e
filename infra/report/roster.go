package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tarun-vijay/examseat/core/model"
)

const signatureSlots = 5

// WriteRoster writes the per-room-per-course roster sheet with the
// signature columns and the TA/invigilator blocks the exam desk fills
// in by hand.
func WriteRoster(path string, rec model.SeatingRecord, directory map[string]string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"

	title := fmt.Sprintf("Course: %s | Room: %s | Date: %s | Session: %s",
		rec.Course, rec.RoomID, rec.Session.DateString(), rec.Session.Label)
	if err := f.SetCellStr(sheet, "A1", title); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", "C1"); err != nil {
		return err
	}

	header := []any{"Roll Number", "Student Name", "Signature"}
	if err := f.SetSheetRow(sheet, "A3", &header); err != nil {
		return err
	}
	for i, id := range rec.Candidates {
		name, ok := directory[id]
		if !ok {
			name = "(name not found)"
		}
		row := []any{id, name, ""}
		cell, err := excelize.CoordinatesToCellName(1, i+4)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	for _, width := range []struct {
		col string
		w   float64
	}{{"A", 15}, {"B", 30}, {"C", 20}} {
		if err := f.SetColWidth(sheet, width.col, width.col, width.w); err != nil {
			return err
		}
	}

	line := len(rec.Candidates) + 6
	for i := 0; i < signatureSlots; i++ {
		cell, err := excelize.CoordinatesToCellName(1, line+i)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, fmt.Sprintf("TA %d:", i+1)); err != nil {
			return err
		}
	}
	line += signatureSlots + 1
	for i := 0; i < signatureSlots; i++ {
		cell, err := excelize.CoordinatesToCellName(1, line+i)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, fmt.Sprintf("Invigilator %d:", i+1)); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
