package geom

import "testing"

func TestSnap(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{name: "already aligned", v: 3.0, want: 3.0},
		{name: "rounds up", v: 3.3, want: 3.5},
		{name: "rounds down", v: 3.2, want: 3.0},
		{name: "negative", v: -0.3, want: -0.5},
		{name: "zero", v: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snap(tt.v); got != tt.want {
				t.Errorf("Snap(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestSnapDown(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{name: "aligned stays", v: 2.0, want: 2.0},
		{name: "floors", v: 2.9, want: 2.5},
		{name: "just above cell", v: 0.6, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapDown(tt.v); got != tt.want {
				t.Errorf("SnapDown(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 4, H: 3}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{name: "identical", other: Rect{X: 0, Y: 0, W: 4, H: 3}, want: true},
		{name: "partial overlap", other: Rect{X: 3, Y: 2, W: 4, H: 3}, want: true},
		{name: "edge to edge", other: Rect{X: 4, Y: 0, W: 4, H: 3}, want: false},
		{name: "within margin", other: Rect{X: 3.97, Y: 0, W: 4, H: 3}, want: false},
		{name: "disjoint", other: Rect{X: 10, Y: 10, W: 1, H: 1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other, Tolerance); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.other.Overlaps(base, Tolerance); got != tt.want {
				t.Errorf("reverse Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentKeyReversed(t *testing.T) {
	s := Segment{X1: 1.0, Y1: 2.0, X2: 4.0, Y2: 2.0}
	r := Segment{X1: 4.0, Y1: 2.0, X2: 1.0, Y2: 2.0}

	if s.Key() != r.Key() {
		t.Errorf("reversed segment key %v != %v", r.Key(), s.Key())
	}
}

func TestSegmentKeyQuantizesJitter(t *testing.T) {
	s := Segment{X1: 1.0, Y1: 2.0, X2: 4.0, Y2: 2.0}
	jittered := Segment{X1: 1.001, Y1: 1.999, X2: 3.999, Y2: 2.001}

	if s.Key() != jittered.Key() {
		t.Errorf("jittered segment key %v != %v", jittered.Key(), s.Key())
	}
}

func TestNearSegment(t *testing.T) {
	perimeterTop := Segment{X1: 0, Y1: 0, X2: 10, Y2: 0}

	tests := []struct {
		name string
		s    Segment
		band float64
		want bool
	}{
		{name: "inside band and span", s: Segment{X1: 1, Y1: 0.2, X2: 6, Y2: 0.2}, band: 0.25, want: true},
		{name: "outside band", s: Segment{X1: 1, Y1: 0.5, X2: 6, Y2: 0.5}, band: 0.25, want: false},
		{name: "span exceeds target", s: Segment{X1: -2, Y1: 0.1, X2: 6, Y2: 0.1}, band: 0.25, want: false},
		{name: "perpendicular", s: Segment{X1: 1, Y1: 0, X2: 1, Y2: 5}, band: 0.25, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.NearSegment(perimeterTop, tt.band); got != tt.want {
				t.Errorf("NearSegment() = %v, want %v", got, tt.want)
			}
		})
	}
}
