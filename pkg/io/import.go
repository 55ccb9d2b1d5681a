// Package io reads room requests and writes floor plans in the JSON
// shapes consumed and produced by the engine's collaborators.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/planforge/planforge/pkg/errors"
	"github.com/planforge/planforge/pkg/plan"
)

// ReadRequest decodes a room request from r.
//
// The input must be a JSON object with a "rooms" array and an optional
// "name":
//
//	{
//	  "name": "Three bed with study",
//	  "rooms": [
//	    {"type": "garage", "label": "Double Garage", "width": 5.8, "height": 5.5},
//	    {"type": "bedroom", "label": "Bed 2"}
//	  ]
//	}
//
// Width and height are optional hints in meters. Unknown room type
// strings are kept as-is here; the catalog defaults them during the
// build rather than failing the request. Only JSON that cannot be
// decoded at all is an error.
func ReadRequest(r io.Reader) (plan.Request, error) {
	var req plan.Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return plan.Request{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request")
	}
	return req, nil
}

// ImportRequest reads a JSON request file at path.
func ImportRequest(path string) (plan.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return plan.Request{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	req, err := ReadRequest(f)
	if err != nil {
		return plan.Request{}, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

// ReadPlan decodes a floor plan from r. Used by edit commands that
// re-load a previously exported plan.
func ReadPlan(r io.Reader) (plan.FloorPlan, error) {
	var p plan.FloorPlan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return plan.FloorPlan{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode plan")
	}
	return p, nil
}

// ImportPlan reads a plan JSON file at path.
func ImportPlan(path string) (plan.FloorPlan, error) {
	f, err := os.Open(path)
	if err != nil {
		return plan.FloorPlan{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	p, err := ReadPlan(f)
	if err != nil {
		return plan.FloorPlan{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
