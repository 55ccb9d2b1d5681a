package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planforge/planforge/pkg/catalog"
)

// newCatalogCmd creates the catalog command for inspecting the
// effective room-type registry.
func newCatalogCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the effective room-type catalog",
		Long: `Print the effective room-type catalog.

Shows each registered room type with its minimum dimensions, aspect
cap, zone assignment, and whether it counts toward habitable area.
With --catalog, TOML overrides are applied before printing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			if catalogPath != "" {
				var err error
				if cat, err = catalog.Load(catalogPath); err != nil {
					return err
				}
			}

			fmt.Println(styleTitle.Render("Room catalog"))
			fmt.Println(styleHeader.Render(fmt.Sprintf("  %-15s %9s %7s %-14s %s", "type", "min size", "aspect", "zone", "habitable")))
			for _, t := range cat.Types() {
				s := cat.Spec(t)
				aspect := fmt.Sprintf("%.1f", s.MaxAspect)
				if s.MaxAspect == 0 {
					aspect = "-"
				}
				habitable := "yes"
				if !s.Habitable {
					habitable = styleDim.Render("no")
				}
				fmt.Printf("  %-15s %4.1fx%-4.1f %7s %-14s %s\n",
					t, s.MinWidth, s.MinHeight, aspect, catalog.ZoneLabel(s.Zone), habitable)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "TOML room-catalog override file")
	return cmd
}
