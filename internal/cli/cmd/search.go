package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newSearchCmd creates the search command
func newSearchCmd() *cobra.Command {
	var (
		limit   int
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search memories in Pond",
		Long: `Search memories in Pond.

Results come back in the server's relevance order and are printed as
returned; the client never re-sorts. Zero matches is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(args[0])
			if query == "" {
				return errors.New("search query must not be empty")
			}
			if limit < 1 {
				return fmt.Errorf("limit must be a positive integer, got %d", limit)
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.Search(cmd.Context(), query, limit)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			if useJSON {
				return printJSON(res.Raw)
			}

			header := fmt.Sprintf("Found %d memories:", len(res.Memories))
			fmt.Println(formatter(compact).FormatMemoryList(res.Memories, header, "No memories found"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "max results")
	cmd.Flags().BoolVar(&compact, "compact", false, "one line per memory")

	return cmd
}
