package gridfn

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry is an accumulating collection of gridded functions indexed by
// name. It uses sync.RWMutex for read-heavy workloads: lookups and
// evaluation dominate once functions are built.
type Registry struct {
	mu  sync.RWMutex
	fns map[string]*GriddedFunction
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fns: make(map[string]*GriddedFunction),
	}
}

// Register inserts a function, overwriting any previous entry with the
// same name.
func (r *Registry) Register(fn *GriddedFunction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fns[fn.name] = fn
}

// Get returns the function registered under name.
// Fails with *NotFoundError (matching ErrNotFound) for unknown names.
func (r *Registry) Get(name string) (*GriddedFunction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.fns[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return fn, nil
}

// Meta returns the metadata record of the named function. The record is
// mutable: callers may set Citation or Description in place and later
// readers observe the change.
func (r *Registry) Meta(name string) (*Meta, error) {
	fn, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return fn.meta, nil
}

// Has returns true if a function is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.fns[name]
	return ok
}

// Len returns the number of registered functions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fns)
}

// Names returns the registered function names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Range iterates over all registered functions. If fn returns false,
// iteration stops.
//
// Range iterates over a snapshot of the registry, so it is safe to call
// Register during iteration without affecting the current iteration.
func (r *Registry) Range(fn func(name string, f *GriddedFunction) bool) {
	r.mu.RLock()
	snapshot := make(map[string]*GriddedFunction, len(r.fns))
	for k, v := range r.fns {
		snapshot[k] = v
	}
	r.mu.RUnlock()

	for k, v := range snapshot {
		if !fn(k, v) {
			return
		}
	}
}

// SummaryRow is one function's entry in the registry summary: a read-only
// denormalized view for inspection and tabular display.
type SummaryRow struct {
	// Symbol is the rendered signature, e.g. "T(time, lon)".
	Symbol string
	// Unit is the output unit.
	Unit string
	// LHS is the function name.
	LHS string
	// RHS is the equation text from metadata, or a description of the
	// interpolation method when none is set.
	RHS string
	// ArgUnits maps argument names to their units.
	ArgUnits map[string]string
}

// Summary produces one row per registered function, sorted by name.
// It does not mutate registry state.
func (r *Registry) Summary() []SummaryRow {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]SummaryRow, 0, len(r.fns))
	for _, fn := range r.fns {
		rows = append(rows, summarize(fn))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].LHS < rows[j].LHS })
	return rows
}

func summarize(fn *GriddedFunction) SummaryRow {
	args := fn.Args()

	hidden := make(map[string]bool, len(fn.meta.HiddenArgs))
	for _, h := range fn.meta.HiddenArgs {
		hidden[h] = true
	}
	shown := make([]string, 0, len(args))
	for _, a := range args {
		if !hidden[a.Name] {
			shown = append(shown, a.Name)
		}
	}

	rhs := fn.meta.Equation
	if rhs == "" {
		rhs = fmt.Sprintf("%s(%s)", fn.method, strings.Join(shown, ", "))
	}

	return SummaryRow{
		Symbol:   fmt.Sprintf("%s(%s)", fn.name, strings.Join(shown, ", ")),
		Unit:     fn.meta.unit,
		LHS:      fn.name,
		RHS:      rhs,
		ArgUnits: fn.meta.ArgUnits(),
	}
}

// Range describes the coordinate span of one axis.
type Range struct {
	Min  float64
	Max  float64
	Unit string
}

// CoordinateRange reports, per axis referenced by any of the named
// functions, the (min, max, unit) over the stored axis values. Only axes
// present in the named functions' signatures appear in the result.
//
// With no names, every registered function is included. Unknown names fail
// with *NotFoundError; an empty registry fails with ErrEmptyRegistry.
func (r *Registry) CoordinateRange(names ...string) (map[string]Range, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.fns) == 0 {
		return nil, ErrEmptyRegistry
	}
	if len(names) == 0 {
		for name := range r.fns {
			names = append(names, name)
		}
	}

	ranges := make(map[string]Range)
	for _, name := range names {
		fn, ok := r.fns[name]
		if !ok {
			return nil, &NotFoundError{Name: name}
		}
		for _, arg := range fn.Args() {
			ax := fn.argAxis(arg.Name)
			if ax == nil {
				continue
			}
			rg, seen := ranges[ax.name]
			if !seen {
				ranges[ax.name] = Range{Min: ax.Min(), Max: ax.Max(), Unit: ax.unit}
				continue
			}
			// Same axis name bound by several functions: report the union,
			// keeping the first declared unit.
			if ax.Min() < rg.Min {
				rg.Min = ax.Min()
			}
			if ax.Max() > rg.Max {
				rg.Max = ax.Max()
			}
			ranges[ax.name] = rg
		}
	}
	return ranges, nil
}
