package layout

import (
	"math"

	"github.com/planforge/planforge/pkg/plan"
)

// totalArea sums the area of habitable rooms, rounded to one decimal.
// Garages, hallways, corridors, and storage fillers do not count.
func (e *Engine) totalArea(rooms []plan.Room) float64 {
	var a float64
	for _, r := range rooms {
		if e.Catalog.Habitable(r.Type) {
			a += r.Area()
		}
	}
	return math.Round(a*10) / 10
}
