package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version metadata. These are intended to be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI (e.g., 0.1.0).
	Version = "0.1.0"
	// Commit is the git commit hash of the build.
	Commit = "4e83a1c9"
	// Date is the build timestamp (e.g., 2026-06-12T09:30:00Z).
	Date = "2026-06-12T09:30:00Z"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the enem CLI version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "enem %s\n", Version)
		fmt.Fprintf(out, "  commit: %s\n", Commit)
		fmt.Fprintf(out, "  built:  %s\n", Date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
