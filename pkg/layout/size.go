package layout

import (
	"github.com/planforge/planforge/pkg/geom"
	"github.com/planforge/planforge/pkg/plan"
)

// sizedRoom is a room requirement after size resolution: type resolved,
// dimensions at least the registered minimum and snapped to the grid.
// Width may later grow during distribution; height is final.
type sizedRoom struct {
	roomType plan.RoomType
	label    string
	width    float64
	height   float64
	filler   bool
}

// resolveSize applies the type's registered minimum and grid-snaps the
// result. There are no error paths: unknown types fall back to the
// catalog's fallback type, and zero or negative hints fall back to the
// minimum, so the output is always a valid sized room.
func (e *Engine) resolveSize(spec plan.RoomSpec) sizedRoom {
	t := e.Catalog.Resolve(spec.Type)
	s := e.Catalog.Spec(t)

	w := geom.Snap(max(spec.Width, s.MinWidth))
	h := geom.Snap(max(spec.Height, s.MinHeight))

	// Snapping can round a value below the registered minimum
	// (e.g. min 3.2 snaps to 3.0); bump back up to the next cell.
	if w < s.MinWidth {
		w = geom.SnapUp(s.MinWidth)
	}
	if h < s.MinHeight {
		h = geom.SnapUp(s.MinHeight)
	}

	label := spec.Label
	if label == "" {
		label = string(t)
	}

	return sizedRoom{roomType: t, label: label, width: w, height: h}
}
