package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/planforge/planforge/pkg/layout"
	"github.com/planforge/planforge/pkg/observability"
	"github.com/planforge/planforge/pkg/plan"
)

// Runner executes builds and edits with a fixed engine configuration.
//
// The Runner is stateless apart from its engine and logger; multiple
// goroutines can share one Runner as long as its id generator is safe
// for concurrent use (sequential ids are not).
type Runner struct {
	Engine *layout.Engine
	Logger *log.Logger

	name        string
	targetWidth float64
}

// Result contains the outputs of a build.
type Result struct {
	Plan  plan.FloorPlan
	Stats Stats
}

// Stats contains build statistics.
type Stats struct {
	RoomCount int
	WallCount int
	BuildTime time.Duration
}

// NewRunner validates opts and creates a runner around a configured
// engine.
func NewRunner(opts Options) (*Runner, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &Runner{
		Engine:      layout.New(opts.Catalog, opts.IDs),
		Logger:      opts.Logger,
		name:        opts.Name,
		targetWidth: opts.TargetWidth,
	}, nil
}

// Build runs the layout pipeline over a request and returns the plan.
// Build never fails: malformed room specs are silently defaulted so an
// unreliable upstream producer still gets a valid plan back.
func (r *Runner) Build(req plan.Request) Result {
	name := r.name
	if name == "" {
		name = req.Name
	}

	observability.Engine().OnBuildStart(name, len(req.Rooms))
	start := time.Now()

	p := r.Engine.BuildPlan(req.Rooms, layout.BuildOptions{
		Name:        name,
		TargetWidth: r.targetWidth,
	})

	elapsed := time.Since(start)
	observability.Engine().OnBuildComplete(name, len(p.Rooms), len(p.Walls), elapsed)

	r.Logger.Debug("built floor plan",
		"rooms", len(p.Rooms),
		"walls", len(p.Walls),
		"width", p.Width,
		"depth", p.Depth,
		"area", p.TotalArea,
		"l_shaped", p.LShaped(),
		"duration", elapsed)

	return Result{
		Plan: p,
		Stats: Stats{
			RoomCount: len(p.Rooms),
			WallCount: len(p.Walls),
			BuildTime: elapsed,
		},
	}
}

// MoveRoom applies a move edit with logging and hook emission.
func (r *Runner) MoveRoom(p plan.FloorPlan, roomID string, x, y float64) plan.FloorPlan {
	out := r.Engine.MoveRoom(p, roomID, x, y)
	r.logEdit("move", p, roomID)
	return out
}

// ResizeRoom applies a resize edit with logging and hook emission.
func (r *Runner) ResizeRoom(p plan.FloorPlan, roomID string, w, h float64) plan.FloorPlan {
	out := r.Engine.ResizeRoom(p, roomID, w, h)
	r.logEdit("resize", p, roomID)
	return out
}

// AddRoom applies an add edit with logging and hook emission.
func (r *Runner) AddRoom(p plan.FloorPlan, spec plan.RoomSpec) plan.FloorPlan {
	out := r.Engine.AddRoom(p, spec)
	r.logEdit("add", p, spec.Type)
	return out
}

// RemoveRoom applies a remove edit with logging and hook emission.
func (r *Runner) RemoveRoom(p plan.FloorPlan, roomID string) plan.FloorPlan {
	out := r.Engine.RemoveRoom(p, roomID)
	r.logEdit("remove", p, roomID)
	return out
}

// RecalculateWalls re-derives walls and area after an external room
// list change.
func (r *Runner) RecalculateWalls(p plan.FloorPlan) plan.FloorPlan {
	out := r.Engine.RecalculateWalls(p)
	r.logEdit("recalculate", p, "")
	return out
}

func (r *Runner) logEdit(op string, p plan.FloorPlan, roomID string) {
	observability.Engine().OnEditApplied(op, p.ID, roomID)
	r.Logger.Debug("applied edit", "op", op, "plan", p.ID, "room", roomID)
}
