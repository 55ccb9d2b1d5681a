package layout

import (
	"github.com/planforge/planforge/pkg/catalog"
	"github.com/planforge/planforge/pkg/plan"
)

// assignZones buckets sized rooms into the five fixed zones by type.
// Input order is preserved within each zone, so identical requests
// always produce identical layouts. Hallway-typed input rooms land in
// the hallway zone like any other; the auto-inserted spine is separate.
func (e *Engine) assignZones(rooms []sizedRoom) [catalog.ZoneCount][]sizedRoom {
	var zones [catalog.ZoneCount][]sizedRoom
	for _, r := range rooms {
		z := e.Catalog.Zone(r.roomType)
		zones[z] = append(zones[z], r)
	}
	return zones
}

// naturalWidth is the width a zone occupies before distribution: the
// sum of room widths plus one interior-wall gap between neighbors.
func naturalWidth(rooms []sizedRoom) float64 {
	if len(rooms) == 0 {
		return 0
	}
	w := plan.InteriorWallThickness * float64(len(rooms)-1)
	for _, r := range rooms {
		w += r.width
	}
	return w
}

// zoneHeight is the height of a zone's band: the tallest room in it.
func zoneHeight(rooms []sizedRoom) float64 {
	var h float64
	for _, r := range rooms {
		if r.height > h {
			h = r.height
		}
	}
	return h
}
