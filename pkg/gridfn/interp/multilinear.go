package interp

// Multilinear is an N-dimensional piecewise-linear interpolant.
// At grid points it exactly reproduces the stored values.
type Multilinear struct {
	grid   *Grid
	bounds Bounds
}

// NewMultilinear creates a multilinear interpolant over the grid.
func NewMultilinear(g *Grid, b Bounds) *Multilinear {
	return &Multilinear{grid: g, bounds: b}
}

// Rank implements Interpolator.
func (m *Multilinear) Rank() int { return m.grid.Rank() }

// At implements Interpolator.
//
// The result is the weighted sum over the 2^rank corners of the cell
// containing the point. With BoundsExtrapolate, cell offsets may fall
// outside [0, 1], linearly extending the outermost cells.
func (m *Multilinear) At(point []float64) (float64, error) {
	rank := m.grid.Rank()
	if len(point) != rank {
		return 0, ErrRankMismatch
	}

	cells := make([]int, rank)
	offs := make([]float64, rank)
	for d := range point {
		i, t, err := locate(m.grid.axes[d], point[d], d, m.bounds)
		if err != nil {
			return 0, err
		}
		cells[d] = i
		offs[d] = t
	}

	// Accumulate over the corners of the containing cell.
	var sum float64
	idx := make([]int, rank)
	for corner := 0; corner < 1<<rank; corner++ {
		weight := 1.0
		for d := 0; d < rank; d++ {
			upper := corner&(1<<d) != 0
			if upper {
				weight *= offs[d]
			} else {
				weight *= 1 - offs[d]
			}
			idx[d] = cells[d]
			// Single-point axes have no upper corner.
			if upper && len(m.grid.axes[d]) > 1 {
				idx[d]++
			}
		}
		if weight == 0 {
			continue
		}
		sum += weight * m.grid.At(idx...)
	}
	return sum, nil
}
