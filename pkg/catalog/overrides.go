package catalog

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/planforge/planforge/pkg/errors"
	"github.com/planforge/planforge/pkg/plan"
)

// overrideFile is the TOML shape for catalog overrides:
//
//	[rooms.bedroom]
//	min_width = 3.5
//	min_height = 3.0
//	max_aspect = 2.0
//	color = "#a5d6a7"
//
// Only registered room types may be overridden; the closed type set and
// zone assignment are fixed. Omitted fields keep their defaults.
type overrideFile struct {
	Rooms map[string]overrideEntry `toml:"rooms"`
}

type overrideEntry struct {
	MinWidth  *float64 `toml:"min_width"`
	MinHeight *float64 `toml:"min_height"`
	MaxAspect *float64 `toml:"max_aspect"`
	Color     *string  `toml:"color"`
}

// Load reads a catalog override file and returns a catalog with the
// overrides applied on top of the defaults.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read catalog %s", path)
	}
	return Parse(data)
}

// Parse applies TOML override data on top of the default catalog.
func Parse(data []byte) (*Catalog, error) {
	var file overrideFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse catalog overrides")
	}

	c := Default()
	for name, o := range file.Rooms {
		t := plan.RoomType(name)
		s, ok := c.specs[t]
		if !ok {
			return nil, errors.New(errors.ErrCodeCatalogInvalid, "unknown room type %q in overrides", name)
		}
		if o.MinWidth != nil {
			s.MinWidth = *o.MinWidth
		}
		if o.MinHeight != nil {
			s.MinHeight = *o.MinHeight
		}
		if o.MaxAspect != nil {
			s.MaxAspect = *o.MaxAspect
		}
		if o.Color != nil {
			s.Color = *o.Color
		}
		if err := validate(s); err != nil {
			return nil, err
		}
		c.specs[t] = s
	}
	return c, nil
}

func validate(s Spec) error {
	if s.MinWidth <= 0 || s.MinHeight <= 0 {
		return errors.New(errors.ErrCodeCatalogInvalid, "%s: minimum dimensions must be positive", s.Type)
	}
	if s.MaxAspect < 0 {
		return errors.New(errors.ErrCodeCatalogInvalid, "%s: max aspect must be zero (unbounded) or positive", s.Type)
	}
	return nil
}
