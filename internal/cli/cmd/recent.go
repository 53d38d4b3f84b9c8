package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRecentCmd creates the recent command
func newRecentCmd() *cobra.Command {
	var (
		hours   int
		limit   int
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recent memories from Pond",
		Long: `List recent memories from Pond, newest first.

The lookback window defaults to the last 24 hours:

  pond recent
  pond recent --hours 48 --limit 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hours < 1 {
				return fmt.Errorf("hours must be a positive integer, got %d", hours)
			}
			if limit < 1 {
				return fmt.Errorf("limit must be a positive integer, got %d", limit)
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.Recent(cmd.Context(), hours, limit)
			if err != nil {
				return fmt.Errorf("failed to get recent memories: %w", err)
			}

			if useJSON {
				return printJSON(res.Raw)
			}

			header := fmt.Sprintf("Recent %d memories (last %dh):", len(res.Memories), hours)
			fmt.Println(formatter(compact).FormatMemoryList(res.Memories, header, "No recent memories"))
			return nil
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 24, "hours to look back")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "max results")
	cmd.Flags().BoolVar(&compact, "compact", false, "one line per memory")

	return cmd
}
