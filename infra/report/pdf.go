package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/tarun-vijay/examseat/core/model"
)

// WriteAttendancePDF renders the attendance sheet for one room/course
// as a tabular A4 document.
func WriteAttendancePDF(path string, rec model.SeatingRecord, directory map[string]string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "ATTENDANCE SHEET", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Date: %s (%s)    Session: %s", rec.Session.DateString(), rec.Session.Day, rec.Session.Label), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Course: %s    Room: %s    Candidates: %d", rec.Course, rec.RoomID, rec.Allotted), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	widths := []float64{40, 100, 50}
	headers := []string{"Roll Number", "Student Name", "Signature"}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, id := range rec.Candidates {
		name, ok := directory[id]
		if !ok {
			name = "(name not found)"
		}
		pdf.CellFormat(widths[0], 7, id, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[1], 7, name, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[2], 7, "", "1", 0, "", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, "Invigilator: ____________________    TA: ____________________", "", 1, "", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("render pdf %s: %w", path, err)
	}
	return nil
}
