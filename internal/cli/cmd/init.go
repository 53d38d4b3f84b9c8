package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Fetch the context-priming payload",
		Long: `Fetch the context-priming payload from Pond.

The server assembles the current time and recent memories into a block of
text meant to be dropped into a conversation at its start.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.Init(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to initialize context: %w", err)
			}

			if useJSON {
				return printJSON(res.Raw)
			}

			if res.Result != "" {
				fmt.Println(res.Result)
				return nil
			}
			// Older servers return an unwrapped payload; show it as-is.
			return printJSON(res.Raw)
		},
	}
}
