package catalog

import (
	"testing"

	"github.com/planforge/planforge/pkg/errors"
	"github.com/planforge/planforge/pkg/plan"
)

func TestParseOverrides(t *testing.T) {
	data := []byte(`
[rooms.bedroom]
min_width = 3.5
color = "#ffffff"

[rooms.garage]
max_aspect = 1.5
`)

	cat, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	bedroom := cat.Spec(plan.RoomBedroom)
	if bedroom.MinWidth != 3.5 {
		t.Errorf("bedroom min width = %v, want 3.5", bedroom.MinWidth)
	}
	if bedroom.MinHeight != 3.0 {
		t.Errorf("bedroom min height changed to %v, want untouched 3.0", bedroom.MinHeight)
	}
	if bedroom.Color != "#ffffff" {
		t.Errorf("bedroom color = %q, want #ffffff", bedroom.Color)
	}

	garage := cat.Spec(plan.RoomGarage)
	if garage.MaxAspect != 1.5 {
		t.Errorf("garage max aspect = %v, want 1.5", garage.MaxAspect)
	}
}

func TestParseOverridesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{
			name: "unknown room type",
			data: "[rooms.pantry]\nmin_width = 2.0\n",
			code: errors.ErrCodeCatalogInvalid,
		},
		{
			name: "non-positive minimum",
			data: "[rooms.bedroom]\nmin_width = 0.0\n",
			code: errors.ErrCodeCatalogInvalid,
		},
		{
			name: "negative aspect",
			data: "[rooms.living]\nmax_aspect = -1.0\n",
			code: errors.ErrCodeCatalogInvalid,
		},
		{
			name: "malformed toml",
			data: "[rooms.bedroom\n",
			code: errors.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}
