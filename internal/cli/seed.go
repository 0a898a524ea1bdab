package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperpulsex/hyperpulse/internal/models"
	"github.com/hyperpulsex/hyperpulse/internal/repository"
	"github.com/hyperpulsex/hyperpulse/internal/seed"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the exercise catalog",
		Long: `Upsert exercises into the catalog, matching existing ones by title.

Without --file the built-in catalog is used.

Examples:
  pulsectl seed
  pulsectl seed --file ./catalog.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				exercises []models.Exercise
				err       error
			)
			if file != "" {
				exercises, err = seed.LoadFile(file)
			} else {
				exercises, err = seed.Default()
			}
			if err != nil {
				return err
			}

			conn, err := rootOpts.connect()
			if err != nil {
				return err
			}
			defer conn.Close()

			n, err := repository.NewPostgresExerciseRepository(conn).UpsertExercises(cmd.Context(), exercises)
			if err != nil {
				return fmt.Errorf("failed to seed catalog: %w", err)
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd, map[string]int{"seeded": n})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d exercises\n", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to load")

	return cmd
}
