package gridfn

import "fmt"

// AxisIn describes one coordinate axis supplied to Functionalize.
// Axis order is significant: datasets must store their values with the
// first axis varying slowest (row-major).
type AxisIn struct {
	Name string
	Unit string
	Data []float64
}

// VarIn describes one dataset supplied to Functionalize: an N-dimensional
// array flattened row-major, with its shape declared explicitly.
type VarIn struct {
	Name  string
	Unit  string
	Data  []float64
	Shape []int
}

// bindAxes validates the axis inputs and produces axis descriptors.
// Axis names must be unique within one call.
func bindAxes(axes []AxisIn) ([]*Axis, error) {
	if len(axes) == 0 {
		return nil, &ValidationError{Field: "axes", Message: "at least one axis is required"}
	}
	seen := make(map[string]bool, len(axes))
	bound := make([]*Axis, 0, len(axes))
	for _, in := range axes {
		if seen[in.Name] {
			return nil, &ValidationError{Field: in.Name, Message: "duplicate axis name"}
		}
		seen[in.Name] = true
		ax, err := NewAxis(in.Name, in.Unit, in.Data)
		if err != nil {
			return nil, err
		}
		bound = append(bound, ax)
	}
	return bound, nil
}

// bindDataset verifies a dataset's declared shape against the ordered axis
// lengths and its data length. Pure validation, no side effects.
func bindDataset(v VarIn, axes []*Axis) error {
	if v.Name == "" {
		return &ValidationError{Field: "dataset", Message: "name cannot be empty"}
	}
	expected := make([]int, len(axes))
	for d, ax := range axes {
		expected[d] = ax.Len()
	}

	if len(v.Shape) != len(axes) {
		return &ShapeMismatchError{Dataset: v.Name, Expected: expected, Actual: v.Shape}
	}
	size := 1
	for d, n := range v.Shape {
		if n != expected[d] {
			return &ShapeMismatchError{Dataset: v.Name, Expected: expected, Actual: v.Shape}
		}
		size *= n
	}
	if len(v.Data) != size {
		return &ValidationError{
			Field:   v.Name,
			Message: fmt.Sprintf("data length %d does not match shape %v", len(v.Data), v.Shape),
		}
	}
	return nil
}

// reverseAlong reverses a row-major array along one dimension, returning a
// new slice. Used to normalize descending axes before grid construction.
func reverseAlong(data []float64, shape []int, dim int) []float64 {
	out := make([]float64, len(data))

	// Strides for row-major layout.
	strides := make([]int, len(shape))
	stride := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= shape[d]
	}

	n := shape[dim]
	outer := len(data) / (n * strides[dim])
	for o := 0; o < outer; o++ {
		base := o * n * strides[dim]
		for i := 0; i < n; i++ {
			src := base + i*strides[dim]
			dst := base + (n-1-i)*strides[dim]
			copy(out[dst:dst+strides[dim]], data[src:src+strides[dim]])
		}
	}
	return out
}
