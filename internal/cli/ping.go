package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperpulsex/hyperpulse/internal/db"
)

// NewPingCommand creates the ping command.
func NewPingCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "ping",
		Short:         "Check the store connection and report table sizes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := rootOpts.connect()
			if err != nil {
				return err
			}
			defer conn.Close()

			counts, err := db.TableCounts(cmd.Context(), conn)
			if err != nil {
				return fmt.Errorf("failed to count rows: %w", err)
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd, counts)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "connected")
			for _, table := range []string{"users", "exercises", "workouts"} {
				fmt.Fprintf(out, "%s: %d\n", table, counts[table])
			}
			return nil
		},
	}
}
