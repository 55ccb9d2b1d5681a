package cli

import (
	"strings"
	"testing"

	"github.com/planforge/planforge/pkg/layout"
	"github.com/planforge/planforge/pkg/plan"
)

func testPlan(t *testing.T, specs ...plan.RoomSpec) plan.FloorPlan {
	t.Helper()
	e := layout.New(nil, layout.SequentialIDs("ui"))
	return e.BuildPlan(specs, layout.BuildOptions{Name: "Summary house"})
}

func TestRenderSummary(t *testing.T) {
	p := testPlan(t,
		plan.RoomSpec{Type: "garage", Label: "Double Garage", Width: 5.8, Height: 5.5},
		plan.RoomSpec{Type: "living", Label: "Living", Width: 5.0, Height: 4.5},
		plan.RoomSpec{Type: "kitchen", Label: "Kitchen", Width: 4.0, Height: 4.0},
	)

	out := renderSummary(p)

	for _, want := range []string{"Summary house", "Double Garage", "Living", "Kitchen", "9.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if !p.LShaped() {
		t.Fatal("fixture should be L-shaped")
	}
	if !strings.Contains(out, "L-shaped") {
		t.Errorf("summary missing the wing note:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines < len(p.Rooms) {
		t.Errorf("summary has %d lines for %d rooms", lines, len(p.Rooms))
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	out := renderSummary(plan.FloorPlan{})

	if !strings.Contains(out, "Floor plan") {
		t.Errorf("unnamed plan should use the default title:\n%s", out)
	}
	if !strings.Contains(out, "(no rooms)") {
		t.Errorf("empty plan should say so:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "short stays", in: "Bed 2", n: 18, want: "Bed 2"},
		{name: "exact fits", in: "abcdef", n: 6, want: "abcdef"},
		{name: "long is cut", in: "Very Long Room Label Here", n: 10, want: "Very Long…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.n); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
