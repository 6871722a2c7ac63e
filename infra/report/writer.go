package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tarun-vijay/examseat/core/logger"
	"github.com/tarun-vijay/examseat/core/model"
	"github.com/tarun-vijay/examseat/core/schedule"
)

// Writer renders accepted sessions and batch summaries into the output
// directory tree.
type Writer struct {
	dir       string
	directory map[string]string
	pdf       bool
	log       logger.Logger
}

// NewWriter builds a Writer rooted at dir. directory maps candidate ids
// to display names for the roster and attendance documents.
func NewWriter(dir string, directory map[string]string, pdf bool, log logger.Logger) *Writer {
	return &Writer{dir: dir, directory: directory, pdf: pdf, log: log}
}

// WriteSession renders the roster sheets (and optionally attendance
// PDFs) of one emitted session. Non-emitted sessions are a no-op.
func (w *Writer) WriteSession(out schedule.SessionOutcome) error {
	if out.Kind != schedule.OutcomeEmitted {
		return nil
	}
	sessionDir := filepath.Join(w.dir, out.Session.DateString(), string(out.Session.Label))
	if err := os.MkdirAll(sessionDir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	for _, rec := range out.Seating {
		w.warnMissingNames(rec)
		name := fmt.Sprintf("%s_%s_%s.xlsx", rec.Session.FolderDate(), rec.Course, rec.RoomID)
		if err := WriteRoster(filepath.Join(sessionDir, name), rec, w.directory); err != nil {
			return fmt.Errorf("roster %s: %w", name, err)
		}
		if w.pdf {
			if err := w.writeAttendance(rec); err != nil {
				// a bad PDF does not invalidate the session output
				w.log.Errorf("attendance sheet for %s in %s: %v", rec.Course, rec.RoomID, err)
			}
		}
	}
	w.log.Infof("%s: wrote %d roster files", out.Session, len(out.Seating))
	return nil
}

func (w *Writer) writeAttendance(rec model.SeatingRecord) error {
	dir := filepath.Join(w.dir, "attendance")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("%s_%s_%s_%s.pdf",
		rec.Session.Date.Format("2006_01_02"),
		strings.ToLower(string(rec.Session.Label)),
		rec.RoomID, rec.Course)
	return WriteAttendancePDF(filepath.Join(dir, name), rec, w.directory)
}

func (w *Writer) warnMissingNames(rec model.SeatingRecord) {
	for _, id := range rec.Candidates {
		if _, ok := w.directory[id]; !ok {
			w.log.Warnf("candidate %s not found in name directory", id)
		}
	}
}

// WriteSummary renders the batch-level seating and seats-left workbooks.
func (w *Writer) WriteSummary(batch schedule.BatchResult) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if len(batch.Seating) == 0 {
		w.log.Warnf("no seating arrangements to write")
	} else {
		path := filepath.Join(w.dir, "op_overall_seating_arrangement.xlsx")
		if err := WriteSeatingSummary(path, batch.Seating); err != nil {
			return fmt.Errorf("seating summary: %w", err)
		}
	}
	if len(batch.Capacity) == 0 {
		w.log.Warnf("no seats-left data to write")
		return nil
	}
	path := filepath.Join(w.dir, "op_seats_left.xlsx")
	if err := WriteSeatsLeft(path, batch.Capacity); err != nil {
		return fmt.Errorf("seats left: %w", err)
	}
	w.log.Infof("wrote batch summaries to %s", w.dir)
	return nil
}
