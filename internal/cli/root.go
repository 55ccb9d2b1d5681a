package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/planforge/planforge/pkg/buildinfo"
)

// Execute runs the planforge CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands
// (generate, edit, validate, catalog), configures logging based on the
// --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "planforge",
		Short:        "planforge turns room lists into dimensioned floor plans",
		Long:         `planforge is a deterministic floor-plan layout engine: given a list of room requirements it produces a complete, non-overlapping building footprint with room positions, walls, and area metrics, and supports incremental edits on existing plans.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newCatalogCmd())

	return root.ExecuteContext(ctx)
}
