/*
Package interp provides interpolation over regular multi-dimensional grids.

A Grid pairs per-dimension coordinate values with a flat, row-major value
array. Interpolators evaluate the grid at arbitrary points:

  - Multilinear: N-dimensional piecewise-linear interpolation. Exactly
    reproduces the stored value at every grid point.
  - Nearest: nearest-neighbour lookup.

Behavior outside the grid's coordinate range is controlled by a Bounds
policy: BoundsError (the default) rejects the point, BoundsClamp evaluates
at the nearest edge, and BoundsExtrapolate linearly extends the outermost
cells (Nearest treats extrapolation as clamping).

Interpolators are immutable after construction and safe for concurrent use.
*/
package interp
