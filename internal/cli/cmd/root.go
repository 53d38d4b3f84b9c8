package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pondhq/pond-cli/internal/api"
	"github.com/pondhq/pond-cli/internal/config"
	"github.com/pondhq/pond-cli/pkg/format"
	"github.com/pondhq/pond-cli/pkg/utils"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	quiet   bool
	useJSON bool
	noColor bool

	// Shared resources
	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pond",
	Short: "Command-line client for the Pond memory service",
	Long: `Pond is a remote memory store. This client maps each invocation onto
one HTTP request against the service:
  • store memories with optional tags
  • search memories semantically
  • list recent memories from a lookback window
  • prime a conversation with the init context
  • smoke-test connectivity and credentials with health

Configuration comes from POND_BASE_URL and POND_API_KEY, or from an
optional config file (see --config).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pond/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimize output")
	rootCmd.PersistentFlags().BoolVar(&useJSON, "json", false, "print raw JSON responses")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add commands
	rootCmd.AddCommand(
		newStoreCmd(),
		newSearchCmd(),
		newRecentCmd(),
		newInitCmd(),
		newHealthCmd(),
		versionCmd,
	)
}

func setupLogger() {
	var err error
	var cfg zap.Config

	switch {
	case verbose:
		cfg = zap.NewDevelopmentConfig()
	case quiet:
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	// Command output owns stdout; all diagnostics go to stderr.
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err = cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
}

// newClient loads and validates configuration, then builds the API client.
// Configuration problems surface here, before any network call.
func newClient() (*api.Client, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	logger.Debug("Configuration loaded",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("timeout", cfg.Timeout()))

	return api.New(cfg,
		api.WithLogger(logger),
		api.WithUserAgent("pond-cli/"+version),
	), nil
}

// formatter builds the output formatter, honoring --no-color, the NO_COLOR
// convention, and non-terminal stdout.
func formatter(compact bool) *format.Formatter {
	opts := format.DefaultOptions()
	if compact {
		opts = format.CompactOptions()
	}
	if noColor || os.Getenv("NO_COLOR") != "" || !utils.IsTerminal(os.Stdout) {
		opts.UseColors = false
	}
	return format.New(opts)
}

// printJSON prints a raw response body as indented JSON.
func printJSON(raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		// Body was accepted upstream; show it untouched rather than failing.
		fmt.Println(string(raw))
		return nil
	}
	fmt.Println(buf.String())
	return nil
}
