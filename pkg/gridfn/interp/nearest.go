package interp

// Nearest is a nearest-neighbour lookup over a grid.
// Ties between two neighbouring grid points resolve to the lower index.
type Nearest struct {
	grid   *Grid
	bounds Bounds
}

// NewNearest creates a nearest-neighbour interpolant over the grid.
// BoundsExtrapolate behaves as BoundsClamp for nearest-neighbour lookup.
func NewNearest(g *Grid, b Bounds) *Nearest {
	return &Nearest{grid: g, bounds: b}
}

// Rank implements Interpolator.
func (n *Nearest) Rank() int { return n.grid.Rank() }

// At implements Interpolator.
func (n *Nearest) At(point []float64) (float64, error) {
	rank := n.grid.Rank()
	if len(point) != rank {
		return 0, ErrRankMismatch
	}

	idx := make([]int, rank)
	for d := range point {
		i, t, err := locate(n.grid.axes[d], point[d], d, n.bounds)
		if err != nil {
			return 0, err
		}
		idx[d] = i
		if t > 0.5 && len(n.grid.axes[d]) > 1 {
			idx[d] = i + 1
		}
	}
	return n.grid.At(idx...), nil
}
