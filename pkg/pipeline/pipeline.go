// Package pipeline wires the layout engine into a configured, loggable
// unit of execution shared by every entry point.
//
// The pipeline is a single stage — specs in, plan out — plus the edit
// operations. Centralizing option validation, catalog loading, id
// generation, and logging here keeps the CLI and any embedding caller
// consistent.
//
// # Usage
//
//	runner, err := pipeline.NewRunner(pipeline.Options{Name: "My plan"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := runner.Build(req)
//	fmt.Println(result.Plan.TotalArea)
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/planforge/planforge/pkg/catalog"
	"github.com/planforge/planforge/pkg/errors"
	"github.com/planforge/planforge/pkg/layout"
)

// Options contains all configuration for a plan build.
// The struct supports JSON serialization for embedding callers.
type Options struct {
	// Name is the display name for the produced plan. An empty name
	// falls back to the request's name.
	Name string `json:"name,omitempty"`

	// TargetWidth is an explicit interior width in meters; zero lets
	// the engine derive the width from the zone contents.
	TargetWidth float64 `json:"target_width,omitempty"`

	// CatalogPath points to a TOML catalog override file. Empty means
	// the built-in room catalog.
	CatalogPath string `json:"catalog_path,omitempty"`

	// Deterministic switches id generation from random UUIDs to
	// sequential ids, for tests and reproducible output.
	Deterministic bool `json:"deterministic,omitempty"`

	// Runtime options (not serialized)
	Logger  *log.Logger        `json:"-"`
	Catalog *catalog.Catalog   `json:"-"`
	IDs     layout.IDGenerator `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults. The
// method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.TargetWidth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "target width must not be negative, got %.2f", o.TargetWidth)
	}
	if o.Catalog == nil {
		if o.CatalogPath != "" {
			cat, err := catalog.Load(o.CatalogPath)
			if err != nil {
				return err
			}
			o.Catalog = cat
		} else {
			o.Catalog = catalog.Default()
		}
	}
	if o.IDs == nil {
		if o.Deterministic {
			o.IDs = layout.SequentialIDs("pf")
		} else {
			o.IDs = layout.UUIDs()
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
