/*
Package gridfn turns datasets sampled on coordinate grids into callable,
unit-tagged functions collected in a registry.

# Overview

gridfn is a Go library for functionalizing model output: raw N-dimensional
arrays bound to named coordinate axes become interpolants that can be
evaluated at arbitrary points, sliced down to lower dimensions, inspected
through metadata, and accumulated in a registry across repeated calls.

The library provides:
  - Validated coordinate axes and shape-checked dataset binding
  - Multilinear (default) and nearest-neighbour interpolation
  - A mutable function registry with summary and coordinate-range queries
  - Restriction (slicing) of functions by fixing axis values
  - Registry snapshots persisted to SQLite
  - OpenTelemetry integration for observability

# Basic Usage

Bind axes and datasets, then query the returned registry:

	axes := []gridfn.AxisIn{
	    {Name: "time", Unit: "hr", Data: times},
	    {Name: "lon", Unit: "deg", Data: lons},
	}
	vars := []gridfn.VarIn{
	    {Name: "T", Unit: "K", Data: temps, Shape: []int{len(times), len(lons)}},
	}

	reg, err := gridfn.Functionalize(axes, vars)
	if err != nil {
	    log.Fatal(err)
	}

	fn, _ := reg.Get("T")
	v, err := fn.Eval(map[string]float64{"time": 12, "lon": -90})

Repeated calls with WithRegistry accumulate functions built from different
axis sets into one registry:

	reg, err = gridfn.Functionalize(moreAxes, moreVars, gridfn.WithRegistry(reg))

# Slicing

Restrict fixes an axis to a literal value and returns a lower-dimensional
function, composable left-to-right:

	slice, err := fn.Restrict("time", 12)
	v, err := slice.Eval(map[string]float64{"lon": -90})

# Metadata

Each function carries a metadata record. Output unit and argument units are
fixed at build time; citation, equation text, and description may be set
afterwards and are visible to later readers:

	meta, _ := reg.Meta("T")
	meta.Citation = "Model run 2026-03-14, CCMC"
	meta.Description = "neutral temperature"

Summary() renders one row per function for tabular display, and
CoordinateRange() reports the (min, max, unit) span of every axis used by
the named functions.

# Out-of-Range Policy

By default, evaluating or restricting outside an axis range fails with
*OutOfRangeError. Pass WithBounds(interp.BoundsExtrapolate) or
interp.BoundsClamp at build time to extend or clamp instead.

# Thread Safety

  - Registry is safe for concurrent use
  - GriddedFunction evaluation is read-only and safe for concurrent callers
  - Meta mutation is NOT synchronized; coordinate writers externally

# Subpackages

  - interp: grid interpolation strategies
  - store: registry snapshot storage (memory, SQLite)
  - config: configuration loading (YAML, JSON)
  - observability: logging, metrics, and tracing helpers
  - flythrough: trajectory sampling through registered functions
*/
package gridfn
