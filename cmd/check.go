package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarun-vijay/examseat/config"
	"github.com/tarun-vijay/examseat/core/allocation"
	"github.com/tarun-vijay/examseat/core/conflict"
	"github.com/tarun-vijay/examseat/core/model"
	"github.com/tarun-vijay/examseat/core/schedule"
	"github.com/tarun-vijay/examseat/infra/logger"
	"github.com/tarun-vijay/examseat/infra/workbook"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the input workbook without allocating",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck reports conflicts and capacity shortfalls per session so the
// exam desk can fix the timetable before running the full batch.
func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	input, err := workbook.Load(cfg.Input.File, logger.New("workbook"))
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	alloc := allocation.New(input.Rooms, cfg.Strategy(), cfg.Allocation.Buffer, nil)
	supply := alloc.TotalEffectiveCapacity()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d rooms, effective capacity %d (%s, buffer %d)\n",
		len(input.Rooms), supply, cfg.Allocation.Strategy, cfg.Allocation.Buffer)

	issues := 0
	for _, row := range input.Timetable {
		if row.Date.IsZero() {
			fmt.Fprintf(out, "row with unparsable date skipped\n")
			issues++
			continue
		}
		for _, label := range model.SessionLabels {
			sess := row.Session(label)
			codes := schedule.ParseCourseList(row.CourseList(label))
			if len(codes) == 0 {
				continue
			}
			demand := 0
			enrollments := make(map[string][]string, len(codes))
			for _, code := range codes {
				if _, ok := enrollments[code]; ok {
					continue
				}
				candidates := input.Enrollment.Candidates(code)
				enrollments[code] = candidates
				demand += len(candidates)
			}
			if report := conflict.Detect(enrollments); report.HasConflict() {
				fmt.Fprintf(out, "%s: %d candidates enrolled in clashing courses\n", sess, len(report.Pairs))
				issues++
			}
			if demand > supply {
				fmt.Fprintf(out, "%s: demand %d exceeds supply %d\n", sess, demand, supply)
				issues++
			}
		}
	}
	if issues == 0 {
		fmt.Fprintln(out, "no conflicts or shortfalls found")
		return nil
	}
	return fmt.Errorf("%d issue(s) found", issues)
}
