package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tarun-vijay/examseat/infra/logger"
)

func writeSheet(t *testing.T, f *excelize.File, sheet string, rows [][]any) {
	t.Helper()
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
}

func testWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	writeSheet(t, f, SheetTimetable, [][]any{
		{"Date", "Day", "Morning", "Evening"},
		{"01-05-2025", "Thursday", "CS101; MA202", "NO EXAM"},
		{"02-05-2025", "Friday", "", "PH303"},
	})
	writeSheet(t, f, SheetEnrollment, [][]any{
		{"rollno", "course_code"},
		{"r002", "CS101"},
		{"r001", "CS101"},
		{"r003", "MA202"},
	})
	writeSheet(t, f, SheetDirectory, [][]any{
		{"Roll", "Name"},
		{"r001", "Asha Rao"},
		{"r002", "Vikram Joshi"},
	})
	writeSheet(t, f, SheetRooms, [][]any{
		{"Room No.", "Exam Capacity", "Block"},
		{"10042", 120, "LHC"},
		{"2031", 40, "CLT"},
	})
	f.DeleteSheet("Sheet1")
	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoad(t *testing.T) {
	in, err := Load(testWorkbook(t), logger.NopLogger{})
	require.NoError(t, err)

	require.Len(t, in.Timetable, 2)
	require.Equal(t, "Thursday", in.Timetable[0].Day)
	require.Equal(t, "CS101; MA202", in.Timetable[0].Morning)
	require.Equal(t, 2025, in.Timetable[0].Date.Year())

	require.Equal(t, []string{"r001", "r002"}, in.Enrollment.Candidates("CS101"))
	require.Equal(t, "Asha Rao", in.Directory["r001"])

	require.Len(t, in.Rooms, 2)
	require.Equal(t, "10042", in.Rooms[0].ID)
	require.Equal(t, 10, in.Rooms[0].Floor)
	require.Equal(t, 120, in.Rooms[0].Capacity)
	require.Equal(t, 2, in.Rooms[1].Floor)
}

func TestParseDateDayFirst(t *testing.T) {
	d, ok := parseDate("03-04-2026")
	require.True(t, ok)
	require.Equal(t, 3, d.Day())
	require.Equal(t, 4, int(d.Month()))

	// two-digit years are ambiguous between day-first and month-first
	// readings and must void the row rather than guess
	_, ok = parseDate("03-04-26")
	require.False(t, ok)
	_, ok = parseDate("1/2/26")
	require.False(t, ok)
}

func TestLoadMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := Load(path, logger.NopLogger{})
	require.Error(t, err)
}

func TestLoadMissingColumn(t *testing.T) {
	f := excelize.NewFile()
	writeSheet(t, f, SheetTimetable, [][]any{{"Date", "Day", "Morning", "Evening"}})
	writeSheet(t, f, SheetEnrollment, [][]any{{"rollno", "course_code"}})
	writeSheet(t, f, SheetDirectory, [][]any{{"Roll", "Name"}})
	writeSheet(t, f, SheetRooms, [][]any{{"Room No.", "Block"}}) // capacity missing
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := Load(path, logger.NopLogger{})
	require.ErrorContains(t, err, "Exam Capacity")
}
