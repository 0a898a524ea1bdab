package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperpulsex/hyperpulse/internal/repository"
)

// NewRepairCommand creates the repair command.
func NewRepairCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Name workouts stored without an exercise",
		Long: fmt.Sprintf(`Set the exercise name of workouts stored without one to %q.

The server runs the same repair periodically.`, repository.UnknownExerciseName),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := rootOpts.connect()
			if err != nil {
				return err
			}
			defer conn.Close()

			n, err := repository.NewPostgresWorkoutRepository(conn).RepairExerciseNames(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to repair workouts: %w", err)
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd, map[string]int64{"repaired": n})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "repaired %d workouts\n", n)
			return nil
		},
	}
}
