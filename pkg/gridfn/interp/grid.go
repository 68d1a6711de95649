package interp

import (
	"errors"
	"fmt"
)

// ErrRankMismatch indicates a point's dimensionality does not match the grid.
var ErrRankMismatch = errors.New("point rank does not match grid rank")

// OutOfRangeError indicates a point coordinate fell outside the grid range
// under the BoundsError policy.
type OutOfRangeError struct {
	// Dim is the zero-based dimension whose range was violated.
	Dim int
	// Value is the requested coordinate.
	Value float64
	// Min and Max are the dimension's bounds.
	Min, Max float64
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("dimension %d: value %g outside range [%g, %g]", e.Dim, e.Value, e.Min, e.Max)
}

// Bounds selects the out-of-range evaluation policy.
type Bounds int

const (
	// BoundsError rejects points outside the grid with *OutOfRangeError.
	BoundsError Bounds = iota

	// BoundsClamp evaluates out-of-range coordinates at the nearest grid edge.
	BoundsClamp

	// BoundsExtrapolate linearly extends the outermost grid cells.
	BoundsExtrapolate
)

// ParseBounds converts a policy name ("error", "clamp", "extrapolate")
// back to a Bounds value.
func ParseBounds(s string) (Bounds, error) {
	switch s {
	case "error", "":
		return BoundsError, nil
	case "clamp":
		return BoundsClamp, nil
	case "extrapolate":
		return BoundsExtrapolate, nil
	default:
		return BoundsError, fmt.Errorf("unknown bounds policy %q", s)
	}
}

// String returns the policy name.
func (b Bounds) String() string {
	switch b {
	case BoundsError:
		return "error"
	case BoundsClamp:
		return "clamp"
	case BoundsExtrapolate:
		return "extrapolate"
	default:
		return fmt.Sprintf("Bounds(%d)", int(b))
	}
}

// Grid is an N-dimensional regular grid: per-dimension coordinate values
// plus a flat row-major value array (the last dimension varies fastest).
// Grids are immutable after construction.
type Grid struct {
	axes    [][]float64
	values  []float64
	strides []int
}

// NewGrid creates a grid from per-dimension coordinates and row-major values.
//
// Each axis must be strictly ascending and non-empty, and len(values) must
// equal the product of the axis lengths.
func NewGrid(axes [][]float64, values []float64) (*Grid, error) {
	if len(axes) == 0 {
		return nil, errors.New("grid must have at least one dimension")
	}

	size := 1
	for d, ax := range axes {
		if len(ax) == 0 {
			return nil, fmt.Errorf("dimension %d: axis is empty", d)
		}
		for i := 1; i < len(ax); i++ {
			if ax[i] <= ax[i-1] {
				return nil, fmt.Errorf("dimension %d: axis not strictly ascending at index %d", d, i)
			}
		}
		size *= len(ax)
	}
	if len(values) != size {
		return nil, fmt.Errorf("values length %d does not match grid size %d", len(values), size)
	}

	// Copy inputs so the grid does not alias caller slices.
	axCopy := make([][]float64, len(axes))
	for d, ax := range axes {
		axCopy[d] = make([]float64, len(ax))
		copy(axCopy[d], ax)
	}
	valCopy := make([]float64, len(values))
	copy(valCopy, values)

	strides := make([]int, len(axes))
	stride := 1
	for d := len(axes) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= len(axes[d])
	}

	return &Grid{axes: axCopy, values: valCopy, strides: strides}, nil
}

// Rank returns the number of grid dimensions.
func (g *Grid) Rank() int { return len(g.axes) }

// Shape returns the per-dimension lengths.
func (g *Grid) Shape() []int {
	shape := make([]int, len(g.axes))
	for d, ax := range g.axes {
		shape[d] = len(ax)
	}
	return shape
}

// Size returns the total number of grid points.
func (g *Grid) Size() int { return len(g.values) }

// Axis returns the coordinate values of dimension d.
// The returned slice must not be modified.
func (g *Grid) Axis(d int) []float64 { return g.axes[d] }

// Values returns the flat row-major value array.
// The returned slice must not be modified.
func (g *Grid) Values() []float64 { return g.values }

// At returns the stored value at the given grid indices.
func (g *Grid) At(idx ...int) float64 {
	return g.values[g.flatIndex(idx)]
}

func (g *Grid) flatIndex(idx []int) int {
	flat := 0
	for d, i := range idx {
		flat += i * g.strides[d]
	}
	return flat
}

// Interpolator evaluates a grid at arbitrary points.
type Interpolator interface {
	// At evaluates the interpolant at the given point.
	// The point length must equal the grid rank.
	At(point []float64) (float64, error)

	// Rank returns the number of arguments the interpolant takes.
	Rank() int
}

// locate finds the cell index and fractional offset of x along an ascending
// axis, applying the bounds policy for points outside [axis[0], axis[n-1]].
//
// For an in-range x, the returned cell i satisfies axis[i] <= x <= axis[i+1]
// and t is the offset within the cell. Single-point axes always return cell
// 0 with t = 0; a strict policy rejects any x that is not the single value.
func locate(axis []float64, x float64, dim int, b Bounds) (int, float64, error) {
	n := len(axis)
	lo, hi := axis[0], axis[n-1]

	if n == 1 {
		if x != lo && b == BoundsError {
			return 0, 0, &OutOfRangeError{Dim: dim, Value: x, Min: lo, Max: lo}
		}
		return 0, 0, nil
	}

	if x < lo {
		switch b {
		case BoundsClamp:
			return 0, 0, nil
		case BoundsExtrapolate:
			return 0, (x - axis[0]) / (axis[1] - axis[0]), nil
		default:
			return 0, 0, &OutOfRangeError{Dim: dim, Value: x, Min: lo, Max: hi}
		}
	}
	if x > hi {
		switch b {
		case BoundsClamp:
			return n - 2, 1, nil
		case BoundsExtrapolate:
			return n - 2, (x - axis[n-2]) / (axis[n-1] - axis[n-2]), nil
		default:
			return n - 2, 1, &OutOfRangeError{Dim: dim, Value: x, Min: lo, Max: hi}
		}
	}

	// Binary search for the cell containing x.
	left, right := 0, n-1
	for right-left > 1 {
		mid := (left + right) / 2
		if axis[mid] <= x {
			left = mid
		} else {
			right = mid
		}
	}
	t := (x - axis[left]) / (axis[left+1] - axis[left])
	return left, t, nil
}
