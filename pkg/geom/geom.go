// Package geom provides the geometric primitives shared by the layout
// engine: axis-aligned rectangles, wall segments, and grid snapping.
//
// All values are in meters in a plan-local coordinate frame. The x axis
// grows toward the right side of the house, the y axis toward the rear
// (zone 0 sits at the top of the plan near y = 0).
package geom

import "math"

// GridCell is the snapping resolution for room dimensions and offsets.
const GridCell = 0.5

// Tolerance is the comparison margin used throughout the engine for
// overlap checks, boundary coincidence, and wall deduplication.
const Tolerance = 0.05

// Snap rounds v to the nearest multiple of the grid cell.
func Snap(v float64) float64 {
	return math.Round(v/GridCell) * GridCell
}

// SnapDown rounds v down to the nearest multiple of the grid cell.
// Used where a snapped value must not exceed the available space.
func SnapDown(v float64) float64 {
	return math.Floor(v/GridCell+1e-9) * GridCell
}

// SnapUp rounds v up to the nearest multiple of the grid cell.
func SnapUp(v float64) float64 {
	return math.Ceil(v/GridCell-1e-9) * GridCell
}

// OnGrid reports whether v is a multiple of the grid cell within tolerance.
func OnGrid(v float64) bool {
	d := math.Abs(v - Snap(v))
	return d < Tolerance
}

// Rect is an axis-aligned rectangle with its origin at the top-left
// corner (smallest x and y).
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Area returns the surface area of the rectangle.
func (r Rect) Area() float64 { return r.W * r.H }

// Overlaps reports whether r and o overlap by more than margin on both
// axes. Rectangles that merely touch or sit within margin of each other
// do not count as overlapping.
func (r Rect) Overlaps(o Rect, margin float64) bool {
	if r.Right() <= o.X+margin || o.Right() <= r.X+margin {
		return false
	}
	if r.Bottom() <= o.Y+margin || o.Bottom() <= r.Y+margin {
		return false
	}
	return true
}

// Segment is a straight wall segment between two points.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.X2-s.X1, s.Y2-s.Y1)
}

// Horizontal reports whether the segment runs along the x axis.
func (s Segment) Horizontal() bool {
	return math.Abs(s.Y1-s.Y2) < Tolerance
}

// Vertical reports whether the segment runs along the y axis.
func (s Segment) Vertical() bool {
	return math.Abs(s.X1-s.X2) < Tolerance
}

// Key returns a direction-independent identity for the segment.
// Endpoints are quantized to centimeters so that snapping jitter does
// not produce distinct keys, and ordered so a segment and its reverse
// share the same key.
func (s Segment) Key() SegmentKey {
	a := point{quantize(s.X1), quantize(s.Y1)}
	b := point{quantize(s.X2), quantize(s.Y2)}
	if b.less(a) {
		a, b = b, a
	}
	return SegmentKey{a, b}
}

// SegmentKey is a comparable, quantized segment identity.
type SegmentKey struct {
	A, B point
}

type point struct {
	X, Y int
}

func (p point) less(o point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

func quantize(v float64) int {
	return int(math.Round(v * 100))
}

// NearSegment reports whether s lies along target: collinear within band
// and with its span contained in target's span (plus tolerance). Both
// segments must be axis-aligned.
func (s Segment) NearSegment(target Segment, band float64) bool {
	switch {
	case s.Horizontal() && target.Horizontal():
		if math.Abs(s.Y1-target.Y1) > band {
			return false
		}
		lo, hi := ordered(target.X1, target.X2)
		a, b := ordered(s.X1, s.X2)
		return a >= lo-Tolerance && b <= hi+Tolerance
	case s.Vertical() && target.Vertical():
		if math.Abs(s.X1-target.X1) > band {
			return false
		}
		lo, hi := ordered(target.Y1, target.Y2)
		a, b := ordered(s.Y1, s.Y2)
		return a >= lo-Tolerance && b <= hi+Tolerance
	default:
		return false
	}
}

func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
