package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyperpulsex/hyperpulse/internal/certgen"
)

// NewCertCommand creates the cert command.
func NewCertCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		hosts    []string
		outDir   string
		validFor time.Duration
	)

	cmd := &cobra.Command{
		Use:   "cert",
		Short: "Generate a self-signed server certificate",
		Long: `Write server.crt and server.key for the server's -tls-cert and -tls-key flags.

Examples:
  pulsectl cert
  pulsectl cert --host api.local --host 10.0.0.5 --out ./certs`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			certPEM, keyPEM, err := certgen.GenerateServerCertificate(hosts, validFor)
			if err != nil {
				return fmt.Errorf("failed to generate certificate: %w", err)
			}
			certPath, keyPath, err := certgen.WriteFiles(outDir, certPEM, keyPEM)
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd, map[string]string{"cert": certPath, "key": keyPath})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", certPath, keyPath)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&hosts, "host", []string{"localhost", "127.0.0.1"}, "DNS name or IP the certificate is valid for (repeatable)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "certs", "output directory")
	cmd.Flags().DurationVar(&validFor, "valid-for", 365*24*time.Hour, "certificate lifetime")

	return cmd
}
