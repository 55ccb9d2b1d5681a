package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	planio "github.com/planforge/planforge/pkg/io"
	"github.com/planforge/planforge/pkg/pipeline"
)

// newGenerateCmd creates the generate command for building plans.
func newGenerateCmd() *cobra.Command {
	var output string
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "generate [rooms.json]",
		Short: "Build a floor plan from a room request file",
		Long: `Build a floor plan from a room request file.

The input is a JSON object with a "rooms" array of room requirements
(type, label, optional width/height in meters) and an optional "name".
The output is a complete plan: positioned rooms, exterior and interior
walls, footprint dimensions, and the habitable area total.

Generation never fails on malformed room entries: unknown types and
missing dimensions fall back to the catalog defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.plan.json)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "plan name (default: name from the request)")
	cmd.Flags().Float64Var(&opts.TargetWidth, "width", 0, "explicit interior width in meters (default: derived)")
	cmd.Flags().StringVar(&opts.CatalogPath, "catalog", "", "TOML room-catalog override file")
	cmd.Flags().BoolVar(&opts.Deterministic, "deterministic", false, "use sequential ids instead of random UUIDs")

	return cmd
}

func runGenerate(cmd *cobra.Command, input string, opts pipeline.Options, output string) error {
	req, err := planio.ImportRequest(input)
	if err != nil {
		return err
	}

	opts.Logger = loggerFromContext(cmd.Context())
	runner, err := pipeline.NewRunner(opts)
	if err != nil {
		return err
	}

	result := runner.Build(req)

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".plan.json"
	}
	if err := planio.ExportPlan(result.Plan, output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	printSuccess("Generated plan with %d rooms", result.Stats.RoomCount)
	printFile(output)
	fmt.Println()
	fmt.Print(renderSummary(result.Plan))
	return nil
}
