package layout

import (
	"fmt"
	"math"

	"github.com/planforge/planforge/pkg/geom"
	"github.com/planforge/planforge/pkg/plan"
)

// Issue is a single invariant violation found by Validate.
type Issue struct {
	// Code is a short machine-readable tag, e.g. "overlap".
	Code string
	// Detail is a human-readable description.
	Detail string
}

func (i Issue) String() string { return i.Code + ": " + i.Detail }

// Validate checks the structural invariants every produced or edited
// plan must satisfy and returns all violations found. Interactive
// editors call this between edits; a generated plan with issues is an
// engine bug.
//
// Checked: pairwise room overlap, per-type minimum sizes, grid
// alignment of dimensions, wall deduplication, habitable-area
// accounting, and L-shape field consistency.
func (e *Engine) Validate(p plan.FloorPlan) []Issue {
	var issues []Issue

	for i := 0; i < len(p.Rooms); i++ {
		for j := i + 1; j < len(p.Rooms); j++ {
			if p.Rooms[i].Rect().Overlaps(p.Rooms[j].Rect(), geom.Tolerance) {
				issues = append(issues, Issue{
					Code:   "overlap",
					Detail: fmt.Sprintf("rooms %q and %q overlap", p.Rooms[i].Label, p.Rooms[j].Label),
				})
			}
		}
	}

	for _, r := range p.Rooms {
		s := e.Catalog.Spec(r.Type)
		if r.Width < s.MinWidth-geom.Tolerance || r.Height < s.MinHeight-geom.Tolerance {
			issues = append(issues, Issue{
				Code: "min-size",
				Detail: fmt.Sprintf("room %q is %.2fx%.2f, below the %s minimum %.2fx%.2f",
					r.Label, r.Width, r.Height, r.Type, s.MinWidth, s.MinHeight),
			})
		}
		// Unbounded-aspect types (the hallway spine) span the full
		// interior width, which is not necessarily grid-aligned.
		if s.MaxAspect > 0 && (!geom.OnGrid(r.Width) || !geom.OnGrid(r.Height)) {
			issues = append(issues, Issue{
				Code:   "grid",
				Detail: fmt.Sprintf("room %q dimensions %.2fx%.2f are off the %.1f m grid", r.Label, r.Width, r.Height, geom.GridCell),
			})
		}
	}

	seen := make(map[geom.SegmentKey]string, len(p.Walls))
	for _, w := range p.Walls {
		key := w.Segment().Key()
		if prev, ok := seen[key]; ok {
			issues = append(issues, Issue{
				Code:   "wall-duplicate",
				Detail: fmt.Sprintf("walls %s and %s cover the same segment", prev, w.ID),
			})
			continue
		}
		seen[key] = w.ID
	}

	if want := e.totalArea(p.Rooms); math.Abs(want-p.TotalArea) > geom.Tolerance {
		issues = append(issues, Issue{
			Code:   "area",
			Detail: fmt.Sprintf("totalArea is %.1f, habitable rooms sum to %.1f", p.TotalArea, want),
		})
	}

	if (p.GarageWingWidth == nil) != (p.GarageWingDepth == nil) {
		issues = append(issues, Issue{
			Code:   "wing",
			Detail: "garage wing width and depth must be set together",
		})
	}

	return issues
}
