package gridfn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/randalmurphal/gridfn/pkg/gridfn/interp"
	"github.com/randalmurphal/gridfn/pkg/gridfn/observability"
)

// GriddedFunction is a callable interpolant built from data sampled on
// coordinate axes. The argument order is fixed at build time and immutable.
//
// A function is safe for concurrent evaluation once built. Metadata
// mutation is not synchronized; see Meta.
type GriddedFunction struct {
	name        string
	method      Method
	bounds      interp.Bounds
	coordSystem string

	// axes holds every axis of the underlying grid, in argument order.
	// pinned maps axis names fixed by Restrict to their literal values.
	axes   []*Axis
	pinned map[string]float64

	grid    *interp.Grid
	interp  interp.Interpolator
	meta    *Meta
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// Name returns the function name.
func (f *GriddedFunction) Name() string { return f.name }

// Unit returns the function's output unit.
func (f *GriddedFunction) Unit() string { return f.meta.unit }

// CoordSystem returns the free-form coordinate-system label attached at
// build time, or "" if none was given.
func (f *GriddedFunction) CoordSystem() string { return f.coordSystem }

// Method returns the interpolation method the function was built with.
func (f *GriddedFunction) Method() Method { return f.method }

// Args returns the function's free arguments in declaration order.
// Axes fixed by Restrict are excluded.
func (f *GriddedFunction) Args() []Arg {
	args := make([]Arg, 0, len(f.axes)-len(f.pinned))
	for _, ax := range f.axes {
		if _, ok := f.pinned[ax.name]; ok {
			continue
		}
		args = append(args, Arg{Name: ax.name, Unit: ax.unit})
	}
	return args
}

// Rank returns the number of free arguments.
func (f *GriddedFunction) Rank() int { return len(f.axes) - len(f.pinned) }

// Meta returns the function's metadata record. The record is shared:
// setting Citation or Description on it is visible to later callers.
func (f *GriddedFunction) Meta() *Meta { return f.meta }

// Eval evaluates the function at the given point. The point must supply a
// value for exactly the free arguments, keyed by axis name; a restricted
// zero-argument function accepts a nil or empty point.
//
// Out-of-range coordinates follow the function's bounds policy: the strict
// default returns *OutOfRangeError, clamping and extrapolation are opt-in
// at build time.
func (f *GriddedFunction) Eval(point map[string]float64) (float64, error) {
	ctx := context.Background()
	var endSpan func(error)
	if f.spans != nil {
		_, span := f.spans.StartEvalSpan(ctx, f.name)
		endSpan = func(err error) { f.spans.EndSpanWithError(span, err) }
	}

	start := time.Now()
	v, err := f.eval(point)

	if f.metrics != nil {
		f.metrics.RecordEval(ctx, f.name, time.Since(start), err)
	}
	if endSpan != nil {
		endSpan(err)
	}
	if err != nil {
		observability.LogEvalError(f.logger, f.name, err)
	}
	return v, err
}

func (f *GriddedFunction) eval(point map[string]float64) (float64, error) {
	full := make([]float64, len(f.axes))
	used := 0
	for d, ax := range f.axes {
		if v, ok := f.pinned[ax.name]; ok {
			full[d] = v
			continue
		}
		v, ok := point[ax.name]
		if !ok {
			return 0, &ValidationError{Field: ax.name, Message: "missing argument"}
		}
		full[d] = v
		used++
	}
	if used != len(point) {
		for name := range point {
			if f.axisIndex(name) < 0 {
				return 0, &ValidationError{Field: name, Message: "unknown argument"}
			}
			if _, ok := f.pinned[name]; ok {
				return 0, &ValidationError{Field: name, Message: "argument is fixed by restriction"}
			}
		}
	}

	v, err := f.interp.At(full)
	if err != nil {
		var oor *interp.OutOfRangeError
		if errors.As(err, &oor) {
			ax := f.axes[oor.Dim]
			return 0, &OutOfRangeError{Axis: ax.name, Value: oor.Value, Min: oor.Min, Max: oor.Max}
		}
		return 0, fmt.Errorf("evaluate %s: %w", f.name, err)
	}
	return v, nil
}

// Restrict fixes one free axis to a literal value, returning a function of
// the remaining arguments. Restrictions compose left-to-right:
//
//	slice, err := fn.Restrict("time", 12)
//	line, err := slice.Restrict("lat", 0)
//
// Under the strict bounds policy the value must lie within the axis range.
// The restricted function starts with a fresh metadata record; Unit and the
// remaining argument units carry over.
func (f *GriddedFunction) Restrict(axisName string, value float64) (*GriddedFunction, error) {
	d := f.axisIndex(axisName)
	if d < 0 {
		return nil, &ValidationError{Field: axisName, Message: "unknown argument"}
	}
	if _, ok := f.pinned[axisName]; ok {
		return nil, &ValidationError{Field: axisName, Message: "argument already fixed by restriction"}
	}
	ax := f.axes[d]
	if f.bounds == interp.BoundsError && !ax.Contains(value) {
		return nil, &OutOfRangeError{Axis: axisName, Value: value, Min: ax.Min(), Max: ax.Max()}
	}

	pinned := make(map[string]float64, len(f.pinned)+1)
	for k, v := range f.pinned {
		pinned[k] = v
	}
	pinned[axisName] = value

	restricted := &GriddedFunction{
		name:        f.name,
		method:      f.method,
		bounds:      f.bounds,
		coordSystem: f.coordSystem,
		axes:        f.axes,
		pinned:      pinned,
		grid:        f.grid,
		interp:      f.interp,
		logger:      f.logger,
		metrics:     f.metrics,
		spans:       f.spans,
	}
	restricted.meta = newMeta(f.meta.unit, restricted.Args())
	return restricted, nil
}

func (f *GriddedFunction) axisIndex(name string) int {
	for d, ax := range f.axes {
		if ax.name == name {
			return d
		}
	}
	return -1
}

// argAxis returns the axis backing a free argument, or nil.
func (f *GriddedFunction) argAxis(name string) *Axis {
	if _, ok := f.pinned[name]; ok {
		return nil
	}
	d := f.axisIndex(name)
	if d < 0 {
		return nil
	}
	return f.axes[d]
}
