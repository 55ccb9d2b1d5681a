package layout

import (
	"math"

	"github.com/planforge/planforge/pkg/geom"
	"github.com/planforge/planforge/pkg/plan"
)

// Auto-fill thresholds and sizes. Fillers consume zone width that would
// otherwise force single rooms implausibly wide, while keeping the
// footprint fully enclosed.
const (
	frontFillThreshold = 1.4
	rearFillThreshold  = 2.0
	maxEntryWidth      = 3.0
	maxLinenWidth      = 2.0
	minFillerWidth     = 1.0
)

// fillFrontZone appends an entry/porch filler, and if still needed an
// alfresco, when the garage zone leaves significant target width
// unused. Fillers take the zone's band height so the front stays
// enclosed edge to edge.
func (e *Engine) fillFrontZone(rooms []sizedRoom, target float64) []sizedRoom {
	if len(rooms) == 0 {
		return rooms
	}

	h := zoneHeight(rooms)
	gap := target - naturalWidth(rooms)
	if gap > frontFillThreshold {
		if w := fillerWidth(gap, maxEntryWidth); w >= minFillerWidth {
			rooms = append(rooms, filler("Entry / Porch", w, h))
		}
	}

	gap = target - naturalWidth(rooms)
	if gap > frontFillThreshold {
		if w := fillerWidth(gap, math.Inf(1)); w >= minFillerWidth {
			rooms = append(rooms, filler("Alfresco", w, h))
		}
	}
	return rooms
}

// fillRearZone appends a linen filler when the bedroom zone leaves more
// than the rear threshold unused.
func (e *Engine) fillRearZone(rooms []sizedRoom, target float64) []sizedRoom {
	if len(rooms) == 0 {
		return rooms
	}
	gap := target - naturalWidth(rooms)
	if gap > rearFillThreshold {
		if w := fillerWidth(gap, maxLinenWidth); w >= minFillerWidth {
			rooms = append(rooms, filler("Linen", w, zoneHeight(rooms)))
		}
	}
	return rooms
}

// fillerWidth sizes a filler to consume up to maxW of the remaining
// gap, net of the interior wall the new room introduces, rounded down
// to the grid so it never overshoots the band.
func fillerWidth(gap, maxW float64) float64 {
	return geom.SnapDown(math.Min(maxW, gap-plan.InteriorWallThickness))
}

func filler(label string, w, h float64) sizedRoom {
	return sizedRoom{roomType: plan.RoomStorage, label: label, width: w, height: h, filler: true}
}
