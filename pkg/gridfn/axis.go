package gridfn

import (
	"fmt"
	"math"
)

// Axis is a named, unit-tagged, ordered set of coordinate values.
// Axes are immutable after construction.
type Axis struct {
	name      string
	unit      string
	values    []float64
	ascending bool
}

// NewAxis creates a validated coordinate axis.
//
// Values must be finite and strictly monotonic (increasing or decreasing).
// A single-point axis is valid. Returns *ValidationError otherwise.
func NewAxis(name, unit string, values []float64) (*Axis, error) {
	if name == "" {
		return nil, &ValidationError{Field: "axis", Message: "name cannot be empty"}
	}
	if len(values) == 0 {
		return nil, &ValidationError{Field: name, Message: "axis must have at least one value"}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ValidationError{
				Field:   name,
				Message: fmt.Sprintf("non-finite value %g at index %d", v, i),
			}
		}
	}

	ascending := true
	if len(values) > 1 {
		ascending = values[1] > values[0]
		for i := 1; i < len(values); i++ {
			if ascending && values[i] <= values[i-1] {
				return nil, &ValidationError{
					Field:   name,
					Message: fmt.Sprintf("values not strictly increasing at index %d", i),
				}
			}
			if !ascending && values[i] >= values[i-1] {
				return nil, &ValidationError{
					Field:   name,
					Message: fmt.Sprintf("values not strictly decreasing at index %d", i),
				}
			}
		}
	}

	// Copy to keep the axis independent of the caller's slice.
	vals := make([]float64, len(values))
	copy(vals, values)

	return &Axis{name: name, unit: unit, values: vals, ascending: ascending}, nil
}

// Name returns the axis name.
func (a *Axis) Name() string { return a.name }

// Unit returns the axis unit string.
func (a *Axis) Unit() string { return a.unit }

// Len returns the number of grid points on the axis.
func (a *Axis) Len() int { return len(a.values) }

// Min returns the smallest coordinate value on the axis.
func (a *Axis) Min() float64 {
	if a.ascending {
		return a.values[0]
	}
	return a.values[len(a.values)-1]
}

// Max returns the largest coordinate value on the axis.
func (a *Axis) Max() float64 {
	if a.ascending {
		return a.values[len(a.values)-1]
	}
	return a.values[0]
}

// Values returns a copy of the axis values in their declared order.
func (a *Axis) Values() []float64 {
	vals := make([]float64, len(a.values))
	copy(vals, a.values)
	return vals
}

// Ascending reports whether the axis values increase with index.
func (a *Axis) Ascending() bool { return a.ascending }

// Contains reports whether v lies within [Min, Max].
func (a *Axis) Contains(v float64) bool {
	return v >= a.Min() && v <= a.Max()
}
