// Package catalog holds the room-type registry: per-type minimum
// dimensions, aspect caps, display colors, habitability, and zone
// assignment. The built-in defaults can be overridden at process start
// from a TOML file; after that the catalog is read-only.
package catalog

import (
	"sort"

	"github.com/planforge/planforge/pkg/plan"
)

// Zone indices. Zones are fixed horizontal bands stacked front (0) to
// rear (4); the hallway zone never receives input rooms directly and is
// inserted by the footprint builder when it separates occupied bands.
const (
	ZoneGarage  = 0
	ZoneLiving  = 1
	ZoneHallway = 2
	ZonePrivate = 3
	ZoneRear    = 4

	ZoneCount = 5
)

// ZoneLabel returns a human-readable name for a zone index.
func ZoneLabel(zone int) string {
	switch zone {
	case ZoneGarage:
		return "garage/front"
	case ZoneLiving:
		return "living"
	case ZoneHallway:
		return "hallway"
	case ZonePrivate:
		return "private/wet"
	case ZoneRear:
		return "rear/bedrooms"
	default:
		return "unknown"
	}
}

// Spec describes the registered properties of a room type.
//
// MaxAspect caps width / height during width distribution; zero means
// unbounded (hallways and corridors may span the full house width).
type Spec struct {
	Type      plan.RoomType
	MinWidth  float64
	MinHeight float64
	MaxAspect float64
	Color     string
	Zone      int
	Habitable bool
}

// FallbackType is the room type substituted for unrecognized inbound
// type strings. The upstream producer is an unreliable text completion,
// so resolution never fails.
const FallbackType = plan.RoomBedroom

// defaults is the built-in registry. Dimensions are grid-aligned so
// minimum-sized rooms need no further snapping.
var defaults = []Spec{
	{Type: plan.RoomBedroom, MinWidth: 3.0, MinHeight: 3.0, MaxAspect: 2.0, Color: "#a5d6a7", Zone: ZoneRear, Habitable: true},
	{Type: plan.RoomMasterBedroom, MinWidth: 4.0, MinHeight: 3.5, MaxAspect: 2.0, Color: "#81c784", Zone: ZonePrivate, Habitable: true},
	{Type: plan.RoomBathroom, MinWidth: 2.5, MinHeight: 2.0, MaxAspect: 2.0, Color: "#90caf9", Zone: ZonePrivate, Habitable: true},
	{Type: plan.RoomEnsuite, MinWidth: 2.0, MinHeight: 2.0, MaxAspect: 2.0, Color: "#b3e5fc", Zone: ZonePrivate, Habitable: true},
	{Type: plan.RoomKitchen, MinWidth: 3.0, MinHeight: 3.0, MaxAspect: 2.5, Color: "#ffcc80", Zone: ZoneLiving, Habitable: true},
	{Type: plan.RoomLiving, MinWidth: 4.0, MinHeight: 4.0, MaxAspect: 3.5, Color: "#ffe082", Zone: ZoneLiving, Habitable: true},
	{Type: plan.RoomDining, MinWidth: 3.0, MinHeight: 3.0, MaxAspect: 2.5, Color: "#ffab91", Zone: ZoneLiving, Habitable: true},
	{Type: plan.RoomGarage, MinWidth: 3.5, MinHeight: 5.5, MaxAspect: 2.0, Color: "#b0bec5", Zone: ZoneGarage, Habitable: false},
	{Type: plan.RoomLaundry, MinWidth: 2.0, MinHeight: 2.0, MaxAspect: 2.0, Color: "#80deea", Zone: ZonePrivate, Habitable: true},
	{Type: plan.RoomHallway, MinWidth: 1.0, MinHeight: 1.0, MaxAspect: 0, Color: "#eeeeee", Zone: ZoneHallway, Habitable: false},
	{Type: plan.RoomCorridor, MinWidth: 1.0, MinHeight: 1.0, MaxAspect: 0, Color: "#e0e0e0", Zone: ZoneHallway, Habitable: false},
	{Type: plan.RoomStudy, MinWidth: 2.5, MinHeight: 2.5, MaxAspect: 2.0, Color: "#ce93d8", Zone: ZoneRear, Habitable: true},
	{Type: plan.RoomStorage, MinWidth: 1.0, MinHeight: 1.0, MaxAspect: 4.0, Color: "#bcaaa4", Zone: ZoneRear, Habitable: false},
}

// Catalog is an immutable room-type registry.
type Catalog struct {
	specs map[plan.RoomType]Spec
}

// Default returns a catalog populated with the built-in registry.
func Default() *Catalog {
	c := &Catalog{specs: make(map[plan.RoomType]Spec, len(defaults))}
	for _, s := range defaults {
		c.specs[s.Type] = s
	}
	return c
}

// Resolve maps an inbound type string to a registered room type.
// Unknown strings resolve to the fallback type; this is deliberate
// silent defaulting, never an error.
func (c *Catalog) Resolve(s string) plan.RoomType {
	t := plan.RoomType(s)
	if _, ok := c.specs[t]; ok {
		return t
	}
	return FallbackType
}

// Spec returns the registered spec for a room type. Unregistered types
// (which cannot come out of Resolve) fall back to the fallback type's
// spec so callers never deal with a zero value.
func (c *Catalog) Spec(t plan.RoomType) Spec {
	if s, ok := c.specs[t]; ok {
		return s
	}
	return c.specs[FallbackType]
}

// Zone returns the zone index for a room type.
func (c *Catalog) Zone(t plan.RoomType) int { return c.Spec(t).Zone }

// Habitable reports whether the type counts toward total area.
func (c *Catalog) Habitable(t plan.RoomType) bool { return c.Spec(t).Habitable }

// Types returns all registered room types in lexical order.
func (c *Catalog) Types() []plan.RoomType {
	out := make([]plan.RoomType, 0, len(c.specs))
	for t := range c.specs {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
