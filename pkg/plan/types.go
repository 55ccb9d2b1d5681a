// Package plan defines the floor-plan value types produced and consumed
// by the layout engine: rooms, walls, and the FloorPlan aggregate.
//
// Plans are immutable values. The engine never mutates a FloorPlan in
// place; every transformation returns a fresh copy. This makes plans
// safe to share across goroutines without coordination.
package plan

import (
	"slices"
	"time"

	"github.com/planforge/planforge/pkg/geom"
)

// Wall thickness constants. These are part of the wire format and must
// not change without versioning the output.
const (
	ExteriorWallThickness = 0.2
	InteriorWallThickness = 0.1
)

// Wall segment kinds.
const (
	WallExterior = "exterior"
	WallInterior = "interior"
)

// RoomType identifies one of the closed set of supported room types.
type RoomType string

// The closed room type enumeration. Unknown inbound strings resolve to
// the catalog's fallback type rather than failing.
const (
	RoomBedroom       RoomType = "bedroom"
	RoomMasterBedroom RoomType = "master_bedroom"
	RoomBathroom      RoomType = "bathroom"
	RoomEnsuite       RoomType = "ensuite"
	RoomKitchen       RoomType = "kitchen"
	RoomLiving        RoomType = "living"
	RoomDining        RoomType = "dining"
	RoomGarage        RoomType = "garage"
	RoomLaundry       RoomType = "laundry"
	RoomHallway       RoomType = "hallway"
	RoomCorridor      RoomType = "corridor"
	RoomStudy         RoomType = "study"
	RoomStorage       RoomType = "storage"
)

// RoomSpec is a single room requirement as received from upstream
// (a form or the text-completion translator). Width and Height are
// optional hints in meters; zero or negative values fall back to the
// type's registered minimum.
type RoomSpec struct {
	Type   string  `json:"type"`
	Label  string  `json:"label"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Request is the JSON-serializable input shape for plan generation.
type Request struct {
	Name  string     `json:"name,omitempty"`
	Rooms []RoomSpec `json:"rooms"`
}

// Room is a placed, dimensioned room. X and Y locate the top-left
// corner in meters; Connections lists hallway adjacency by room id.
type Room struct {
	ID          string   `json:"id"`
	Type        RoomType `json:"type"`
	Label       string   `json:"label"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Color       string   `json:"color"`
	Connections []string `json:"connections"`
}

// Rect returns the room's footprint rectangle.
func (r Room) Rect() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

// Area returns the room's floor area in square meters.
func (r Room) Area() float64 { return r.Width * r.Height }

// Wall is a single wall segment.
type Wall struct {
	ID        string  `json:"id"`
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	Thickness float64 `json:"thickness"`
	Type      string  `json:"type"`
}

// Segment returns the wall's centerline segment.
func (w Wall) Segment() geom.Segment {
	return geom.Segment{X1: w.X1, Y1: w.Y1, X2: w.X2, Y2: w.Y2}
}

// FloorPlan is the complete output of the layout engine. Width and
// Depth are the exterior footprint extents including wall thickness.
//
// GarageWingWidth and GarageWingDepth are set only on L-shaped plans
// and describe the outer extent of the narrower front wing.
type FloorPlan struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	TotalArea       float64    `json:"totalArea"`
	Width           float64    `json:"width"`
	Depth           float64    `json:"depth"`
	Rooms           []Room     `json:"rooms"`
	Walls           []Wall     `json:"walls"`
	GarageWingWidth *float64   `json:"garageWingWidth,omitempty"`
	GarageWingDepth *float64   `json:"garageWingDepth,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// LShaped reports whether the plan has a narrower front wing.
func (p FloorPlan) LShaped() bool {
	return p.GarageWingWidth != nil && p.GarageWingDepth != nil
}

// RoomByID returns the room with the given id, or false if absent.
func (p FloorPlan) RoomByID(id string) (Room, bool) {
	for _, r := range p.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// Clone returns a deep copy of the plan. Transformations clone first,
// then patch the copy, so the input value is never touched.
func (p FloorPlan) Clone() FloorPlan {
	out := p
	out.Rooms = make([]Room, len(p.Rooms))
	for i, r := range p.Rooms {
		out.Rooms[i] = r
		// slices.Clone keeps an empty slice empty rather than nil, so
		// "connections": [] survives a clone-then-marshal round trip.
		out.Rooms[i].Connections = slices.Clone(r.Connections)
	}
	out.Walls = slices.Clone(p.Walls)
	if p.GarageWingWidth != nil {
		w := *p.GarageWingWidth
		out.GarageWingWidth = &w
	}
	if p.GarageWingDepth != nil {
		d := *p.GarageWingDepth
		out.GarageWingDepth = &d
	}
	if p.CreatedAt != nil {
		t := *p.CreatedAt
		out.CreatedAt = &t
	}
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
