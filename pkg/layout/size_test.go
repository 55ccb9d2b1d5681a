package layout

import (
	"testing"
	"time"

	"github.com/planforge/planforge/pkg/plan"
)

// newTestEngine returns an engine with sequential ids and a fixed
// clock so outputs are fully deterministic.
func newTestEngine() *Engine {
	e := New(nil, SequentialIDs("t"))
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e.Now = func() time.Time { return fixed }
	return e
}

func TestResolveSize(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name  string
		spec  plan.RoomSpec
		wantT plan.RoomType
		wantW float64
		wantH float64
	}{
		{
			name:  "no hints fall back to minimum",
			spec:  plan.RoomSpec{Type: "bedroom", Label: "Bed 2"},
			wantT: plan.RoomBedroom,
			wantW: 3.0,
			wantH: 3.0,
		},
		{
			name:  "hints above minimum are snapped",
			spec:  plan.RoomSpec{Type: "garage", Label: "Garage", Width: 5.8, Height: 5.5},
			wantT: plan.RoomGarage,
			wantW: 6.0,
			wantH: 5.5,
		},
		{
			name:  "hints below minimum are clamped",
			spec:  plan.RoomSpec{Type: "living", Label: "Living", Width: 1.0, Height: 1.0},
			wantT: plan.RoomLiving,
			wantW: 4.0,
			wantH: 4.0,
		},
		{
			name:  "negative hints are clamped",
			spec:  plan.RoomSpec{Type: "kitchen", Label: "Kitchen", Width: -3, Height: -1},
			wantT: plan.RoomKitchen,
			wantW: 3.0,
			wantH: 3.0,
		},
		{
			name:  "unknown type falls back to bedroom",
			spec:  plan.RoomSpec{Type: "wine_cellar", Label: "Cellar"},
			wantT: plan.RoomBedroom,
			wantW: 3.0,
			wantH: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.resolveSize(tt.spec)
			if got.roomType != tt.wantT {
				t.Errorf("type = %v, want %v", got.roomType, tt.wantT)
			}
			if got.width != tt.wantW || got.height != tt.wantH {
				t.Errorf("size = %vx%v, want %vx%v", got.width, got.height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResolveSizeEmptyLabel(t *testing.T) {
	e := newTestEngine()

	got := e.resolveSize(plan.RoomSpec{Type: "bathroom"})
	if got.label != "bathroom" {
		t.Errorf("label = %q, want type name fallback", got.label)
	}
}
