// Package cli implements pulsectl, the HyperPulse admin command line.
package cli

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyperpulsex/hyperpulse/internal/config"
	"github.com/hyperpulsex/hyperpulse/internal/db"
)

// Opener connects to the store.
type Opener func(dsn string, connectTimeout time.Duration) (*sql.DB, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DSN            string
	ConnectTimeout time.Duration
	Format         string // "json" | "text"

	open Opener
	now  func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for pulsectl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(db.InitPostgres, time.Now)
}

func newRootCommand(open Opener, now func() time.Time) *cobra.Command {
	opts := &RootOptions{open: open, now: now}

	cmd := &cobra.Command{
		Use:           "pulsectl",
		Short:         "HyperPulse admin tool",
		Long:          "Maintenance commands for HyperPulse: catalog seeding, data repair, reports and dev certificates.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.DSN, "dsn", os.Getenv("DATABASE_DSN"), "database connection string")
	cmd.PersistentFlags().DurationVar(&opts.ConnectTimeout, "connect-timeout", config.DefaultConnectTimeout, "database connect timeout")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewRepairCommand(opts))
	cmd.AddCommand(NewPingCommand(opts))
	cmd.AddCommand(NewDayCommand(opts))
	cmd.AddCommand(NewCertCommand(opts))

	return cmd
}

// connect opens the store with the configured timeout.
func (o *RootOptions) connect() (*sql.DB, error) {
	conn, err := o.open(o.DSN, o.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return conn, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
