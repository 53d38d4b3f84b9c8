package cli

import (
	cmdpkg "github.com/pondhq/pond-cli/internal/cli/cmd"
)

// Execute runs the root command. This is called by main.main().
func Execute() {
	cmdpkg.Execute()
}

// SetVersionInfo sets the version information used by the version command
// and the outbound User-Agent header.
func SetVersionInfo(version, buildTime, commit string) {
	cmdpkg.SetVersionInfo(version, buildTime, commit)
}
