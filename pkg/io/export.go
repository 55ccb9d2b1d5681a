package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/planforge/planforge/pkg/plan"
)

// WritePlan encodes a floor plan as indented JSON and writes it to w.
// The output can be re-imported with [ReadPlan] for round-trip
// editing.
func WritePlan(p plan.FloorPlan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return nil
}

// ExportPlan writes a plan to a JSON file at path.
// This is a convenience wrapper around [WritePlan] for file output.
func ExportPlan(p plan.FloorPlan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePlan(p, f)
}
