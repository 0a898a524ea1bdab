package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyperpulsex/hyperpulse/internal/repository"
)

const dayLayout = "2006-01-02"

// DayReport is the output of the day command.
type DayReport struct {
	Date     string `json:"date"`
	Workouts int64  `json:"workouts"`
	WithReps int64  `json:"withReps"`
}

// NewDayCommand creates the day command.
func NewDayCommand(rootOpts *RootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Count the workouts of one day",
		Long: `Count workouts whose client timestamp falls on the given UTC date,
and how many of them recorded at least one rep.

Examples:
  pulsectl day
  pulsectl day --date 2025-01-31 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = rootOpts.now().UTC().AddDate(0, 0, -1).Format(dayLayout)
			}
			if _, err := time.Parse(dayLayout, date); err != nil {
				return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
			}

			conn, err := rootOpts.connect()
			if err != nil {
				return err
			}
			defer conn.Close()

			total, withReps, err := repository.NewPostgresWorkoutRepository(conn).DayStats(cmd.Context(), date)
			if err != nil {
				return fmt.Errorf("failed to read workouts: %w", err)
			}

			report := DayReport{Date: date, Workouts: total, WithReps: withReps}
			if rootOpts.Format == "json" {
				return writeJSON(cmd, report)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "date: %s\nworkouts: %d\nwith reps: %d\n", report.Date, report.Workouts, report.WithReps)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to report (YYYY-MM-DD, default yesterday)")

	return cmd
}
