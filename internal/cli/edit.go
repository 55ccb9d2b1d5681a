package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	planio "github.com/planforge/planforge/pkg/io"
	"github.com/planforge/planforge/pkg/pipeline"
	"github.com/planforge/planforge/pkg/plan"
)

// newEditCmd creates the edit command group. Every edit reads a plan
// file, applies one pure transformation, and writes the result back
// (or to --output).
func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply an incremental edit to a plan file",
		Long: `Apply an incremental edit to a plan file.

Edits are geometric bookkeeping: the room list changes, then walls and
the habitable area are re-derived. Edits referencing an unknown room id
leave the plan untouched.`,
	}

	cmd.AddCommand(newMoveCmd())
	cmd.AddCommand(newResizeCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newRemoveCmd())
	cmd.AddCommand(newRecalcCmd())
	return cmd
}

func newMoveCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "move [plan.json] [room-id] [x] [y]",
		Short: "Move a room to a new position",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseMeters(args[2])
			if err != nil {
				return err
			}
			y, err := parseMeters(args[3])
			if err != nil {
				return err
			}
			return applyEdit(cmd, args[0], output, func(r *pipeline.Runner, p plan.FloorPlan) plan.FloorPlan {
				return r.MoveRoom(p, args[1], x, y)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	return cmd
}

func newResizeCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "resize [plan.json] [room-id] [width] [height]",
		Short: "Resize a room (clamped to the type minimum)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := parseMeters(args[2])
			if err != nil {
				return err
			}
			h, err := parseMeters(args[3])
			if err != nil {
				return err
			}
			return applyEdit(cmd, args[0], output, func(r *pipeline.Runner, p plan.FloorPlan) plan.FloorPlan {
				return r.ResizeRoom(p, args[1], w, h)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	return cmd
}

func newAddCmd() *cobra.Command {
	var output string
	spec := plan.RoomSpec{}
	cmd := &cobra.Command{
		Use:   "add [plan.json]",
		Short: "Add a room below the existing layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyEdit(cmd, args[0], output, func(r *pipeline.Runner, p plan.FloorPlan) plan.FloorPlan {
				return r.AddRoom(p, spec)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().StringVar(&spec.Type, "type", "bedroom", "room type")
	cmd.Flags().StringVar(&spec.Label, "label", "", "room label (default: the type)")
	cmd.Flags().Float64Var(&spec.Width, "width", 0, "width hint in meters (default: type minimum)")
	cmd.Flags().Float64Var(&spec.Height, "height", 0, "height hint in meters (default: type minimum)")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "remove [plan.json] [room-id]",
		Short: "Remove a room from the plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyEdit(cmd, args[0], output, func(r *pipeline.Runner, p plan.FloorPlan) plan.FloorPlan {
				return r.RemoveRoom(p, args[1])
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	return cmd
}

func newRecalcCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "recalc [plan.json]",
		Short: "Re-derive walls and area from the room list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyEdit(cmd, args[0], output, func(r *pipeline.Runner, p plan.FloorPlan) plan.FloorPlan {
				return r.RecalculateWalls(p)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	return cmd
}

// applyEdit loads a plan, runs one transformation, writes the result,
// and prints the updated summary.
func applyEdit(cmd *cobra.Command, input, output string, edit func(*pipeline.Runner, plan.FloorPlan) plan.FloorPlan) error {
	p, err := planio.ImportPlan(input)
	if err != nil {
		return err
	}

	runner, err := pipeline.NewRunner(pipeline.Options{Logger: loggerFromContext(cmd.Context())})
	if err != nil {
		return err
	}

	updated := edit(runner, p)

	if output == "" {
		output = input
	}
	if err := planio.ExportPlan(updated, output); err != nil {
		return err
	}

	printSuccess("Edit applied")
	printFile(output)
	return nil
}

func parseMeters(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}
