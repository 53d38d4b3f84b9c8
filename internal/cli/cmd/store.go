package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pondhq/pond-cli/pkg/utils"
)

// stdin is swapped out in tests.
var stdin io.Reader = os.Stdin

// newStoreCmd creates the store command
func newStoreCmd() *cobra.Command {
	var tags string

	cmd := &cobra.Command{
		Use:   "store [text]",
		Short: "Store a memory in Pond",
		Long: `Store a memory in Pond.

The memory content is taken from the positional argument. When no argument
is given, content is read from stdin until EOF, so multi-line input can be
piped or pasted:

  pond store "Ship the CLI" --tags work,idea
  git log -1 | pond store --tags commits`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(args)
			if err != nil {
				return fmt.Errorf("failed to read content: %w", err)
			}
			if content == "" {
				return errors.New("no content provided")
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.Store(cmd.Context(), content, splitTags(tags))
			if err != nil {
				return fmt.Errorf("failed to store memory: %w", err)
			}

			if useJSON {
				return printJSON(res.Raw)
			}
			fmt.Println(formatter(false).FormatStored(res))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tags, "tags", "t", "", "comma-separated tags")

	return cmd
}

// readContent resolves the dual input path: a positional argument wins,
// otherwise stdin is read to EOF. Interactive users get a prompt on stderr.
func readContent(args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	if utils.IsTerminal(os.Stdin) {
		fmt.Fprintln(os.Stderr, "Enter memory content (Ctrl+D to finish):")
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// splitTags normalizes a comma-separated tag list: split, trim, drop empties.
func splitTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(csv, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
