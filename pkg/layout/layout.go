// Package layout implements the deterministic floor-plan layout engine.
//
// Given an unordered list of room requirements, the engine produces a
// complete, non-overlapping, dimensioned building footprint: room
// positions, a derived wall network, an optional L-shaped front wing,
// and aggregate metrics. The pipeline runs leaves-first in a single
// closed-form pass — no search or backtracking:
//
//  1. size resolution: minimums applied, dimensions grid-snapped
//  2. zone assignment: rooms bucketed into five fixed bands
//  3. width distribution: rooms grown to fill the house width,
//     bounded by per-type aspect caps
//  4. auto-fill: filler rooms inserted to consume leftover width
//  5. footprint stacking: zones placed front-to-rear with wall gaps,
//     hallway spine inserted, L-shape detected
//  6. wall synthesis: exterior perimeter plus deduplicated interior
//     partitions derived from room edges
//
// Edit operations (move/resize/add/remove) transform an already-built
// plan and re-run wall synthesis and the area aggregate. Every
// operation is a pure function of its inputs; the engine holds no
// mutable state beyond its injected collaborators.
package layout

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planforge/planforge/pkg/catalog"
)

// Fixed design constants. These are part of the output contract and
// must be reproduced exactly for compatibility with consumers.
const (
	// MinHouseWidth is the interior-width floor applied to plans that
	// occupy more than one zone.
	MinHouseWidth = 8.0

	// HallwayHeight is the depth of the auto-inserted hallway spine.
	HallwayHeight = 1.2

	// LShapeThreshold declares the footprint L-shaped when the garage
	// zone's natural width is below this fraction of the house width.
	LShapeThreshold = 0.72
)

// IDGenerator produces identifiers for plans, rooms, and walls. It is
// injected so tests and reproducible builds can substitute sequential
// ids for random UUIDs.
type IDGenerator func() string

// UUIDs returns the default generator backed by random UUIDs.
func UUIDs() IDGenerator {
	return func() string { return uuid.NewString() }
}

// SequentialIDs returns a deterministic generator producing
// "<prefix>-1", "<prefix>-2", … in call order.
func SequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// Engine bundles the layout algorithms with their injected
// collaborators. A zero-configured engine (via New) uses the default
// catalog, random UUIDs, and the wall clock.
//
// Engine methods never mutate their inputs; concurrent use is safe as
// long as the injected IDGenerator is (the default UUID generator is;
// SequentialIDs is not and is meant for single-goroutine tests).
type Engine struct {
	Catalog *catalog.Catalog
	IDs     IDGenerator
	Now     func() time.Time
}

// New creates an engine with defaults filled in for any nil field.
func New(cat *catalog.Catalog, ids IDGenerator) *Engine {
	e := &Engine{Catalog: cat, IDs: ids}
	if e.Catalog == nil {
		e.Catalog = catalog.Default()
	}
	if e.IDs == nil {
		e.IDs = UUIDs()
	}
	if e.Now == nil {
		e.Now = func() time.Time { return time.Now().UTC() }
	}
	return e
}
