package config

import (
	"fmt"

	"github.com/randalmurphal/gridfn/pkg/gridfn"
	"github.com/randalmurphal/gridfn/pkg/gridfn/interp"
)

// Well-known configuration keys.
const (
	KeyInterpolation = "interpolation" // "multilinear" or "nearest"
	KeyBounds        = "bounds"        // "error", "clamp", or "extrapolate"
	KeyCoordSystem   = "coord_system"  // free-form label, e.g. "GDZ-sph"
	KeyStorePath     = "store_path"    // snapshot store file path
)

// Settings holds the gridfn-specific configuration values.
type Settings struct {
	// Interpolation is the method name. Default: "multilinear".
	Interpolation string

	// Bounds is the out-of-range policy name. Default: "error".
	Bounds string

	// CoordSystem is the coordinate-system label attached to built functions.
	CoordSystem string

	// StorePath is the snapshot store location ("" disables persistence).
	StorePath string
}

// SettingsFrom extracts Settings from a loaded Config.
func SettingsFrom(c Config) Settings {
	return Settings{
		Interpolation: c.String(KeyInterpolation, string(gridfn.MethodMultilinear)),
		Bounds:        c.String(KeyBounds, "error"),
		CoordSystem:   c.String(KeyCoordSystem, ""),
		StorePath:     c.String(KeyStorePath, ""),
	}
}

// Options converts the settings into Functionalize options.
// Unknown interpolation or bounds names fail here, before any binding work.
func (s Settings) Options() ([]gridfn.Option, error) {
	method := gridfn.Method(s.Interpolation)
	switch method {
	case gridfn.MethodMultilinear, gridfn.MethodNearest:
	default:
		return nil, fmt.Errorf("unknown interpolation method %q", s.Interpolation)
	}

	bounds, err := interp.ParseBounds(s.Bounds)
	if err != nil {
		return nil, err
	}

	opts := []gridfn.Option{
		gridfn.WithInterpolation(method),
		gridfn.WithBounds(bounds),
	}
	if s.CoordSystem != "" {
		opts = append(opts, gridfn.WithCoordSystem(s.CoordSystem))
	}
	return opts, nil
}
