package layout

import (
	"github.com/planforge/planforge/pkg/geom"
	"github.com/planforge/planforge/pkg/plan"
)

// Edit operations transform an already-built plan. All of them are
// pure: the input plan is cloned, the copy patched, walls and total
// area re-derived, and the copy returned. Operations referencing a
// missing room id are uniform no-ops returning the input unchanged.
//
// Edits do geometric bookkeeping only. Collision avoidance during
// interactive moves is the caller's concern; the engine keeps the wall
// set and aggregates consistent with whatever room list it is given.

// ResizeRoom sets a room's dimensions, clamped to the type's minimum
// and grid-snapped. Other rooms are not re-flowed.
func (e *Engine) ResizeRoom(p plan.FloorPlan, roomID string, w, h float64) plan.FloorPlan {
	idx := roomIndex(p, roomID)
	if idx < 0 {
		return p
	}
	out := p.Clone()
	r := &out.Rooms[idx]
	s := e.Catalog.Spec(r.Type)
	r.Width = clampDim(w, s.MinWidth)
	r.Height = clampDim(h, s.MinHeight)
	e.growExtents(&out)
	e.rederive(&out)
	return out
}

// MoveRoom repositions a room. Coordinates are clamped so the room
// cannot cross the exterior wall ring, and snapped to the grid
// relative to the ring's interior face.
func (e *Engine) MoveRoom(p plan.FloorPlan, roomID string, x, y float64) plan.FloorPlan {
	idx := roomIndex(p, roomID)
	if idx < 0 {
		return p
	}
	out := p.Clone()
	r := &out.Rooms[idx]
	r.X = snapCoord(x)
	r.Y = snapCoord(y)
	e.growExtents(&out)
	e.rederive(&out)
	return out
}

// AddRoom resolves the spec's size and appends the room below the
// current lowest room edge plus one interior-wall gap, growing the
// plan's footprint if the new room does not fit.
func (e *Engine) AddRoom(p plan.FloorPlan, spec plan.RoomSpec) plan.FloorPlan {
	out := p.Clone()
	sized := e.resolveSize(spec)

	y := plan.ExteriorWallThickness
	for _, r := range out.Rooms {
		if bottom := r.Y + r.Height + plan.InteriorWallThickness; bottom > y {
			y = bottom
		}
	}

	out.Rooms = append(out.Rooms, plan.Room{
		ID:          e.IDs(),
		Type:        sized.roomType,
		Label:       sized.label,
		X:           plan.ExteriorWallThickness,
		Y:           y,
		Width:       sized.width,
		Height:      sized.height,
		Color:       e.Catalog.Spec(sized.roomType).Color,
		Connections: []string{},
	})
	e.growExtents(&out)
	e.rederive(&out)
	return out
}

// RemoveRoom filters the room out and re-derives walls. Remaining
// rooms are not compacted or re-flowed.
func (e *Engine) RemoveRoom(p plan.FloorPlan, roomID string) plan.FloorPlan {
	idx := roomIndex(p, roomID)
	if idx < 0 {
		return p
	}
	out := p.Clone()
	out.Rooms = append(out.Rooms[:idx], out.Rooms[idx+1:]...)
	for i := range out.Rooms {
		out.Rooms[i].Connections = without(out.Rooms[i].Connections, roomID)
	}
	e.rederive(&out)
	return out
}

// RecalculateWalls re-derives the wall set and total area from the
// current room list. Used after an external modification (for example
// an AI-driven one) changed rooms without touching walls.
func (e *Engine) RecalculateWalls(p plan.FloorPlan) plan.FloorPlan {
	out := p.Clone()
	e.rederive(&out)
	return out
}

// rederive recomputes the derived parts of a plan in place: wall set,
// habitable area, and the updated timestamp.
func (e *Engine) rederive(p *plan.FloorPlan) {
	p.Walls = e.synthesizeWalls(p.Rooms, p.Width, p.Depth, planWing(*p))
	p.TotalArea = e.totalArea(p.Rooms)
	now := e.Now()
	p.UpdatedAt = &now
}

// growExtents widens or deepens the plan to contain every room plus
// the exterior wall. Edits grow the footprint but never shrink it.
func (e *Engine) growExtents(p *plan.FloorPlan) {
	for _, r := range p.Rooms {
		if w := r.X + r.Width + plan.ExteriorWallThickness; w > p.Width {
			p.Width = w
		}
		if d := r.Y + r.Height + plan.ExteriorWallThickness; d > p.Depth {
			p.Depth = d
		}
	}
}

func roomIndex(p plan.FloorPlan, id string) int {
	for i, r := range p.Rooms {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// clampDim floors v at the registered minimum and snaps to the grid,
// bumping up a cell when snapping rounds below the minimum.
func clampDim(v, min float64) float64 {
	out := geom.Snap(max(v, min))
	if out < min {
		out = geom.SnapUp(min)
	}
	return out
}

// snapCoord clamps a coordinate inside the exterior ring and snaps it
// to the grid relative to the ring's interior face.
func snapCoord(v float64) float64 {
	if v < plan.ExteriorWallThickness {
		v = plan.ExteriorWallThickness
	}
	return plan.ExteriorWallThickness + geom.Snap(v-plan.ExteriorWallThickness)
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
