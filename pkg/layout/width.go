package layout

import (
	"github.com/planforge/planforge/pkg/geom"
	"github.com/planforge/planforge/pkg/plan"
)

// distributeWidth grows a zone's rooms to consume the target interior
// width in a single pass:
//
//   - excess width is split proportionally to each room's share of the
//     zone's current room width
//   - each room's growth is capped so width never exceeds
//     height × the type's aspect cap
//   - whatever the caps leave over lands entirely on the last room in
//     the zone, which absorbs it even past its own cap
//
// All widths are grid-snapped; the last room is sized from the target
// remainder so the zone fills the band modulo grid rounding. Zones at
// or beyond the target are returned unchanged.
func (e *Engine) distributeWidth(rooms []sizedRoom, target float64) []sizedRoom {
	n := len(rooms)
	if n == 0 {
		return rooms
	}

	excess := target - naturalWidth(rooms)
	if excess <= geom.Tolerance {
		return rooms
	}

	var roomWidth float64
	for _, r := range rooms {
		roomWidth += r.width
	}

	out := append([]sizedRoom(nil), rooms...)
	for i := range out {
		share := out[i].width / roomWidth
		grown := out[i].width + excess*share
		if cap := e.aspectCap(out[i]); cap > 0 && grown > cap {
			grown = max(cap, out[i].width)
		}
		out[i].width = grown
	}

	gaps := plan.InteriorWallThickness * float64(n-1)
	var used float64
	for i := 0; i < n-1; i++ {
		out[i].width = max(geom.Snap(out[i].width), rooms[i].width)
		used += out[i].width
	}

	// The last room is sized from the remainder, rounded down so it
	// cannot spill past the band into the exterior wall.
	last := geom.SnapDown(target - gaps - used)
	out[n-1].width = max(last, rooms[n-1].width)
	return out
}

// aspectCap returns the maximum width for a room, or 0 for unbounded
// types (hallways, corridors).
func (e *Engine) aspectCap(r sizedRoom) float64 {
	a := e.Catalog.Spec(r.roomType).MaxAspect
	if a <= 0 {
		return 0
	}
	return r.height * a
}
