package layout

import (
	"github.com/planforge/planforge/pkg/geom"
	"github.com/planforge/planforge/pkg/plan"
)

// wing describes the outer extent of an L-shaped plan's front wing.
type wing struct {
	width float64
	depth float64
}

func planWing(p plan.FloorPlan) *wing {
	if !p.LShaped() {
		return nil
	}
	return &wing{width: *p.GarageWingWidth, depth: *p.GarageWingDepth}
}

// synthesizeWalls derives the full wall set: the exterior perimeter
// (four segments for a rectangle, six for an L) plus deduplicated
// interior partitions taken from room edges.
//
// A room edge that lies along the exterior ring is not an interior
// wall; since rooms sit inside the ring, coincidence is tested against
// the wall band (exterior thickness plus tolerance) rather than the
// bare perimeter line. The remaining edges are deduplicated with a
// quantized direction-independent key, so shared partitions between
// neighboring rooms and float snapping jitter never produce doubles.
func (e *Engine) synthesizeWalls(rooms []plan.Room, width, depth float64, wg *wing) []plan.Wall {
	perimeter := exteriorPerimeter(width, depth, wg)

	walls := make([]plan.Wall, 0, len(perimeter)+4*len(rooms))
	for _, s := range perimeter {
		walls = append(walls, plan.Wall{
			ID: e.IDs(),
			X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2,
			Thickness: plan.ExteriorWallThickness,
			Type:      plan.WallExterior,
		})
	}

	band := plan.ExteriorWallThickness + geom.Tolerance
	seen := make(map[geom.SegmentKey]bool)
	for _, r := range rooms {
		for _, s := range roomEdges(r) {
			if onPerimeter(s, perimeter, band) {
				continue
			}
			key := s.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			walls = append(walls, plan.Wall{
				ID: e.IDs(),
				X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2,
				Thickness: plan.InteriorWallThickness,
				Type:      plan.WallInterior,
			})
		}
	}
	return walls
}

// exteriorPerimeter returns the perimeter segments clockwise from the
// origin. An L-shaped plan steps in at the wing's right edge: the
// notch sits beside the front wing, leaving six segments.
func exteriorPerimeter(width, depth float64, wg *wing) []geom.Segment {
	if wg == nil {
		return []geom.Segment{
			{X1: 0, Y1: 0, X2: width, Y2: 0},
			{X1: width, Y1: 0, X2: width, Y2: depth},
			{X1: width, Y1: depth, X2: 0, Y2: depth},
			{X1: 0, Y1: depth, X2: 0, Y2: 0},
		}
	}
	return []geom.Segment{
		{X1: 0, Y1: 0, X2: wg.width, Y2: 0},
		{X1: wg.width, Y1: 0, X2: wg.width, Y2: wg.depth},
		{X1: wg.width, Y1: wg.depth, X2: width, Y2: wg.depth},
		{X1: width, Y1: wg.depth, X2: width, Y2: depth},
		{X1: width, Y1: depth, X2: 0, Y2: depth},
		{X1: 0, Y1: depth, X2: 0, Y2: 0},
	}
}

// roomEdges returns a room's four edges: top, right, bottom, left.
func roomEdges(r plan.Room) [4]geom.Segment {
	x2, y2 := r.X+r.Width, r.Y+r.Height
	return [4]geom.Segment{
		{X1: r.X, Y1: r.Y, X2: x2, Y2: r.Y},
		{X1: x2, Y1: r.Y, X2: x2, Y2: y2},
		{X1: r.X, Y1: y2, X2: x2, Y2: y2},
		{X1: r.X, Y1: r.Y, X2: r.X, Y2: y2},
	}
}

func onPerimeter(s geom.Segment, perimeter []geom.Segment, band float64) bool {
	for _, p := range perimeter {
		if s.NearSegment(p, band) {
			return true
		}
	}
	return false
}
