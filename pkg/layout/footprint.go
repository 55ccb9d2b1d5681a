package layout

import (
	"github.com/planforge/planforge/pkg/catalog"
	"github.com/planforge/planforge/pkg/geom"
	"github.com/planforge/planforge/pkg/plan"
)

// BuildOptions configures a single plan build.
type BuildOptions struct {
	// Name is the plan's display name.
	Name string

	// TargetWidth is an explicit interior width in meters. Zero means
	// derive the width from the zone contents.
	TargetWidth float64
}

// BuildPlan runs the full layout pipeline over a list of room
// requirements and returns a complete floor plan. It never fails:
// malformed specs are defaulted per the catalog and an empty spec list
// yields a minimal plan with only an exterior shell.
func (e *Engine) BuildPlan(specs []plan.RoomSpec, opts BuildOptions) plan.FloorPlan {
	sized := make([]sizedRoom, len(specs))
	for i, s := range specs {
		sized[i] = e.resolveSize(s)
	}
	zones := e.assignZones(sized)

	occupied := 0
	for _, z := range zones {
		if len(z) > 0 {
			occupied++
		}
	}

	interior := e.interiorWidth(zones, occupied, opts.TargetWidth)

	// The hallway spine goes in only when it separates an occupied
	// front band (garage or living) from an occupied rear band
	// (private or bedrooms), and the caller supplied no hallway.
	front := len(zones[catalog.ZoneGarage]) > 0 || len(zones[catalog.ZoneLiving]) > 0
	rear := len(zones[catalog.ZonePrivate]) > 0 || len(zones[catalog.ZoneRear]) > 0
	if front && rear && len(zones[catalog.ZoneHallway]) == 0 {
		zones[catalog.ZoneHallway] = []sizedRoom{{
			roomType: plan.RoomHallway,
			label:    "Hallway",
			width:    interior,
			height:   HallwayHeight,
		}}
	}

	// L-shape: a garage band much narrower than the house keeps its
	// natural width and becomes a separate front wing instead of being
	// stretched across the full facade.
	garage := zones[catalog.ZoneGarage]
	lShaped := len(garage) > 0 && occupied >= 2 &&
		naturalWidth(garage) < LShapeThreshold*interior

	for z := range zones {
		if len(zones[z]) == 0 {
			continue
		}
		switch z {
		case catalog.ZoneGarage:
			if lShaped {
				continue // wing keeps its natural width
			}
			zones[z] = e.fillFrontZone(zones[z], interior)
			zones[z] = e.distributeWidth(zones[z], interior)
		case catalog.ZoneRear:
			zones[z] = e.fillRearZone(zones[z], interior)
			zones[z] = e.distributeWidth(zones[z], interior)
		default:
			zones[z] = e.distributeWidth(zones[z], interior)
		}
	}

	rooms, interiorDepth := e.stackZones(zones)
	connectHallway(rooms, e.Catalog)

	p := plan.FloorPlan{
		ID:    e.IDs(),
		Name:  opts.Name,
		Rooms: rooms,
		Width: interior + 2*plan.ExteriorWallThickness,
		Depth: interiorDepth + 2*plan.ExteriorWallThickness,
	}
	if lShaped {
		ww := naturalWidth(garage) + 2*plan.ExteriorWallThickness
		wd := zoneHeight(garage) + plan.ExteriorWallThickness
		p.GarageWingWidth = &ww
		p.GarageWingDepth = &wd
	}

	p.Walls = e.synthesizeWalls(p.Rooms, p.Width, p.Depth, planWing(p))
	p.TotalArea = e.totalArea(p.Rooms)

	now := e.Now()
	p.CreatedAt = &now
	p.UpdatedAt = &now
	return p
}

// interiorWidth derives the house interior width: an explicit target
// wins (snapped); otherwise the widest occupied zone, raised to the
// minimum house width when the plan spans more than one zone. A
// single-zone plan hugs its content instead.
func (e *Engine) interiorWidth(zones [catalog.ZoneCount][]sizedRoom, occupied int, target float64) float64 {
	if target > 0 {
		return geom.Snap(target)
	}
	var widest float64
	for _, z := range zones {
		if w := naturalWidth(z); w > widest {
			widest = w
		}
	}
	if occupied >= 2 && widest < MinHouseWidth {
		widest = MinHouseWidth
	}
	return widest
}

// stackZones places zone bands front to rear, one interior-wall gap
// between consecutive occupied bands, rooms left to right inside each
// band. Returns the placed rooms and the interior depth.
func (e *Engine) stackZones(zones [catalog.ZoneCount][]sizedRoom) ([]plan.Room, float64) {
	rooms := []plan.Room{}
	y := plan.ExteriorWallThickness
	placedAny := false

	for _, zone := range zones {
		if len(zone) == 0 {
			continue
		}
		if placedAny {
			y += plan.InteriorWallThickness
		}
		x := plan.ExteriorWallThickness
		for _, r := range zone {
			rooms = append(rooms, plan.Room{
				ID:          e.IDs(),
				Type:        r.roomType,
				Label:       r.label,
				X:           x,
				Y:           y,
				Width:       r.width,
				Height:      r.height,
				Color:       e.Catalog.Spec(r.roomType).Color,
				Connections: []string{},
			})
			x += r.width + plan.InteriorWallThickness
		}
		y += zoneHeight(zone)
		placedAny = true
	}

	if !placedAny {
		return rooms, 0
	}
	return rooms, y - plan.ExteriorWallThickness
}

// connectHallway links rooms vertically adjacent to a hallway band
// (one interior-wall gap away, with horizontal overlap) to the hallway
// and back. Adjacency is recorded for hallways only; other shared
// walls stay implicit in the wall set.
func connectHallway(rooms []plan.Room, cat *catalog.Catalog) {
	for i := range rooms {
		if cat.Zone(rooms[i].Type) != catalog.ZoneHallway {
			continue
		}
		hall := &rooms[i]
		for j := range rooms {
			if i == j {
				continue
			}
			r := &rooms[j]
			above := within(r.Y+r.Height+plan.InteriorWallThickness, hall.Y)
			below := within(hall.Y+hall.Height+plan.InteriorWallThickness, r.Y)
			if !above && !below {
				continue
			}
			if r.X >= hall.X+hall.Width || hall.X >= r.X+r.Width {
				continue
			}
			hall.Connections = append(hall.Connections, r.ID)
			r.Connections = append(r.Connections, hall.ID)
		}
	}
}

func within(a, b float64) bool {
	d := a - b
	return d > -geom.Tolerance && d < geom.Tolerance
}
