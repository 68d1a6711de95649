// Package gridfn provides registration and evaluation of functions sampled
// on multi-dimensional coordinate grids.
package gridfn

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry lookups.
var (
	// ErrNotFound indicates a function name is not present in the registry.
	ErrNotFound = errors.New("function not found")

	// ErrEmptyRegistry indicates a query was made against a registry with
	// no registered functions.
	ErrEmptyRegistry = errors.New("registry is empty")
)

// ValidationError indicates malformed axis, dataset, or evaluation input.
type ValidationError struct {
	// Field identifies the offending input (axis name, dataset name, argument).
	Field string
	// Message describes what was wrong.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ShapeMismatchError indicates a dataset's shape does not match the ordered
// axis-length tuple it was bound against.
type ShapeMismatchError struct {
	// Dataset is the name of the offending dataset.
	Dataset string
	// Expected is the axis-length tuple, in axis order.
	Expected []int
	// Actual is the shape the dataset declared.
	Actual []int
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("dataset %s: shape %v does not match axes %v", e.Dataset, e.Actual, e.Expected)
}

// NotFoundError wraps ErrNotFound with the name that was queried.
type NotFoundError struct {
	// Name is the function name that was not found.
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("function %q not found in registry", e.Name)
}

// Unwrap returns ErrNotFound for errors.Is support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// OutOfRangeError indicates an evaluation or restriction coordinate fell
// outside the axis range under the strict bounds policy.
type OutOfRangeError struct {
	// Axis is the axis whose range was violated.
	Axis string
	// Value is the coordinate that was requested.
	Value float64
	// Min and Max are the axis bounds.
	Min, Max float64
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("axis %s: value %g outside range [%g, %g]", e.Axis, e.Value, e.Min, e.Max)
}
