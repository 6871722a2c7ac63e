package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tarun-vijay/examseat/core/model"
	"github.com/tarun-vijay/examseat/core/schedule"
	infralogger "github.com/tarun-vijay/examseat/infra/logger"
)

func testSession() model.Session {
	return model.Session{
		Date:  time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
		Day:   "Monday",
		Label: model.SessionMorning,
	}
}

func testRecord() model.SeatingRecord {
	return model.SeatingRecord{
		Session:    testSession(),
		Course:     "CS101",
		RoomID:     "3101",
		Building:   "3",
		Capacity:   40,
		Allotted:   2,
		Candidates: []string{"r001", "r002"},
	}
}

func TestWriteSessionCreatesRosters(t *testing.T) {
	dir := t.TempDir()
	names := map[string]string{"r001": "Asha Rao"}
	w := NewWriter(dir, names, false, infralogger.NopLogger{})

	out := schedule.SessionOutcome{
		Session: testSession(),
		Kind:    schedule.OutcomeEmitted,
		Seating: []model.SeatingRecord{testRecord()},
	}
	require.NoError(t, w.WriteSession(out))

	path := filepath.Join(dir, "20-04-2026", "Morning", "20_04_2026_CS101_3101.xlsx")
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	roll, err := f.GetCellValue("Sheet1", "A4")
	require.NoError(t, err)
	assert.Equal(t, "r001", roll)
	name, err := f.GetCellValue("Sheet1", "B5")
	require.NoError(t, err)
	assert.Equal(t, "(name not found)", name)
}

func TestWriteSessionIgnoresNonEmitted(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil, false, infralogger.NopLogger{})

	out := schedule.SessionOutcome{Session: testSession(), Kind: schedule.OutcomeConflict}
	require.NoError(t, w.WriteSession(out))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteSessionAttendancePDF(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, map[string]string{"r001": "Asha Rao"}, true, infralogger.NopLogger{})

	out := schedule.SessionOutcome{
		Session: testSession(),
		Kind:    schedule.OutcomeEmitted,
		Seating: []model.SeatingRecord{testRecord()},
	}
	require.NoError(t, w.WriteSession(out))

	pdf := filepath.Join(dir, "attendance", "2026_04_20_morning_3101_CS101.pdf")
	info, err := os.Stat(pdf)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, nil, false, infralogger.NopLogger{})

	batch := schedule.BatchResult{
		Seating: []model.SeatingRecord{testRecord()},
		Capacity: []model.CapacityUsage{
			{Session: testSession(), RoomID: "3101", Capacity: 40, Building: "3", Allotted: 2, Vacant: 38},
		},
	}
	require.NoError(t, w.WriteSummary(batch))

	f, err := excelize.OpenFile(filepath.Join(dir, "op_overall_seating_arrangement.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	course, err := f.GetCellValue("Seating", "D2")
	require.NoError(t, err)
	assert.Equal(t, "CS101", course)

	_, err = os.Stat(filepath.Join(dir, "op_seats_left.xlsx"))
	require.NoError(t, err)
}
