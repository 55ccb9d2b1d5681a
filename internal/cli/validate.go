package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planforge/planforge/pkg/catalog"
	planio "github.com/planforge/planforge/pkg/io"
	"github.com/planforge/planforge/pkg/layout"
)

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "validate [plan.json]",
		Short: "Check a plan file against the engine invariants",
		Long: `Check a plan file against the engine invariants.

Verifies that no rooms overlap, every room meets its type minimum,
dimensions sit on the grid, the wall set has no duplicate segments, the
area total matches the habitable rooms, and L-shape fields are
consistent. Exits non-zero when any invariant is violated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := planio.ImportPlan(args[0])
			if err != nil {
				return err
			}

			cat := catalog.Default()
			if catalogPath != "" {
				if cat, err = catalog.Load(catalogPath); err != nil {
					return err
				}
			}

			issues := layout.New(cat, nil).Validate(p)
			if len(issues) == 0 {
				printSuccess("Plan is valid: %d rooms, %d walls", len(p.Rooms), len(p.Walls))
				return nil
			}
			for _, issue := range issues {
				printError("%s", issue)
			}
			return fmt.Errorf("%d invariant violation(s)", len(issues))
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "TOML room-catalog override file")
	return cmd
}
