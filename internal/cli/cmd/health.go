package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newHealthCmd creates the health command
func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check Pond system health",
		Long: `Check Pond system health.

Exits 0 only when the service reports a healthy status, so the command
doubles as a smoke test for connectivity and credentials in scripts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}

			if useJSON {
				if err := printJSON(res.Raw); err != nil {
					return err
				}
			} else {
				fmt.Println(formatter(false).FormatHealth(res))
			}

			if !res.Healthy() {
				return fmt.Errorf("service is not healthy (status %q)", res.Status)
			}
			return nil
		},
	}
}
