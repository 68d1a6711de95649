package gridfn

import (
	"context"
	"fmt"
	"time"

	"github.com/randalmurphal/gridfn/pkg/gridfn/interp"
	"github.com/randalmurphal/gridfn/pkg/gridfn/observability"
)

// Functionalize binds datasets to coordinate axes, builds an interpolant
// per dataset, and registers the results.
//
// Every dataset in the call is bound against the same ordered axis set; a
// dataset whose shape does not match the axis-length tuple fails the whole
// call with *ShapeMismatchError. Registration is atomic: either every
// dataset binds, builds, and is registered, or the registry is untouched.
//
// With no options a new Registry is created; WithRegistry extends an
// existing one, accumulating functions across calls. Functions built from
// different axis sets coexist in one registry.
func Functionalize(axes []AxisIn, vars []VarIn, opts ...Option) (*Registry, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx := context.Background()
	var endSpan func(error)
	if cfg.spans != nil {
		_, span := cfg.spans.StartFunctionalizeSpan(ctx, cfg.coordSystem, len(vars))
		endSpan = func(err error) { cfg.spans.EndSpanWithError(span, err) }
	}

	start := time.Now()
	reg, err := functionalize(ctx, axes, vars, cfg)

	if cfg.metrics != nil {
		cfg.metrics.RecordFunctionalize(ctx, len(vars), time.Since(start), err)
	}
	if endSpan != nil {
		endSpan(err)
	}
	if err != nil {
		observability.LogFunctionalizeError(cfg.logger, err)
		return nil, err
	}
	observability.LogFunctionalize(cfg.logger, len(vars), len(axes),
		float64(time.Since(start).Nanoseconds())/1e6)
	return reg, nil
}

func functionalize(ctx context.Context, axes []AxisIn, vars []VarIn, cfg buildConfig) (*Registry, error) {
	if len(vars) == 0 {
		return nil, &ValidationError{Field: "vars", Message: "at least one dataset is required"}
	}

	bound, err := bindAxes(axes)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(vars))
	built := make([]*GriddedFunction, 0, len(vars))
	for _, v := range vars {
		if seen[v.Name] {
			return nil, &ValidationError{Field: v.Name, Message: "duplicate dataset name"}
		}
		seen[v.Name] = true

		if err := bindDataset(v, bound); err != nil {
			return nil, err
		}
		fn, err := build(v, bound, cfg)
		if err != nil {
			return nil, err
		}
		built = append(built, fn)
	}

	// All datasets bound and built; commit.
	reg := cfg.registry
	if reg == nil {
		reg = NewRegistry()
	}
	for _, fn := range built {
		reg.Register(fn)
		observability.LogRegister(cfg.logger, fn.name, fn.Rank(), gridSize(bound))
		if cfg.metrics != nil {
			cfg.metrics.RecordRegister(ctx, fn.name, int64(gridSize(bound)))
		}
	}
	return reg, nil
}

// build constructs the interpolant and metadata for one bound dataset.
// Descending axes are normalized to ascending order so the interpolation
// layer only ever sees ascending grids; reported ranges are unaffected.
func build(v VarIn, axes []*Axis, cfg buildConfig) (*GriddedFunction, error) {
	gridAxes := make([][]float64, len(axes))
	data := v.Data
	for d, ax := range axes {
		vals := ax.Values()
		if !ax.Ascending() {
			for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
				vals[i], vals[j] = vals[j], vals[i]
			}
			data = reverseAlong(data, v.Shape, d)
		}
		gridAxes[d] = vals
	}

	grid, err := interp.NewGrid(gridAxes, data)
	if err != nil {
		return nil, fmt.Errorf("build grid for %s: %w", v.Name, err)
	}

	var ip interp.Interpolator
	switch cfg.method {
	case MethodMultilinear:
		ip = interp.NewMultilinear(grid, cfg.bounds)
	case MethodNearest:
		ip = interp.NewNearest(grid, cfg.bounds)
	default:
		return nil, &ValidationError{
			Field:   "interpolation",
			Message: fmt.Sprintf("unknown method %q", cfg.method),
		}
	}

	fn := &GriddedFunction{
		name:        v.Name,
		method:      cfg.method,
		bounds:      cfg.bounds,
		coordSystem: cfg.coordSystem,
		axes:        axes,
		pinned:      map[string]float64{},
		grid:        grid,
		interp:      ip,
		logger:      cfg.logger,
		metrics:     cfg.metrics,
		spans:       cfg.spans,
	}
	fn.meta = newMeta(v.Unit, fn.Args())
	return fn, nil
}

func gridSize(axes []*Axis) int {
	size := 1
	for _, ax := range axes {
		size *= ax.Len()
	}
	return size
}
