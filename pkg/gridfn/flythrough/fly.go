package flythrough

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/randalmurphal/gridfn/pkg/gridfn"
)

// Result holds the surviving samples of a flythrough and the evaluated
// variable values at each of them.
type Result struct {
	// RunID identifies this flythrough.
	RunID string

	// CoordSystem is carried over from the trajectory.
	CoordSystem string

	// Time, C1, C2, C3 are the surviving trajectory samples.
	Time []float64
	C1   []float64
	C2   []float64
	C3   []float64

	// NetIdx holds each surviving sample's index in the input trajectory,
	// for comparison against the original dataset.
	NetIdx []int

	// Values maps variable name to its evaluated series.
	Values map[string][]float64

	// Units maps variable name to its output unit.
	Units map[string]string
}

// Len returns the number of surviving samples.
func (r *Result) Len() int { return len(r.Time) }

// Fly evaluates the named registered functions at every trajectory sample.
//
// Function arguments are matched positionally against (time, c1, c2, c3):
// a rank-2 function receives (time, c1), a rank-4 function all four.
// Samples where any function falls outside its grid are dropped; NetIdx
// records the surviving indices. Unknown variable names fail with
// *gridfn.NotFoundError, and any non-range evaluation error aborts the
// flythrough.
func Fly(reg *gridfn.Registry, varNames []string, traj Trajectory) (*Result, error) {
	if err := traj.validate(); err != nil {
		return nil, err
	}
	if len(varNames) == 0 {
		return nil, fmt.Errorf("no variables requested")
	}

	components := [][]float64{traj.Time, traj.C1, traj.C2, traj.C3}

	fns := make([]*gridfn.GriddedFunction, len(varNames))
	for i, name := range varNames {
		fn, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		if fn.Rank() < 1 || fn.Rank() > len(components) {
			return nil, fmt.Errorf("variable %s: rank %d not usable for a flythrough", name, fn.Rank())
		}
		fns[i] = fn
	}

	n := traj.Len()
	values := make([][]float64, len(fns))
	for i := range values {
		values[i] = make([]float64, n)
	}
	alive := make([]bool, n)
	for s := 0; s < n; s++ {
		alive[s] = true
	}

	point := make(map[string]float64)
	for i, fn := range fns {
		args := fn.Args()
		for s := 0; s < n; s++ {
			if !alive[s] {
				continue
			}
			clear(point)
			for d, arg := range args {
				point[arg.Name] = components[d][s]
			}
			v, err := fn.Eval(point)
			if err != nil {
				var oor *gridfn.OutOfRangeError
				if errors.As(err, &oor) {
					alive[s] = false
					continue
				}
				return nil, fmt.Errorf("evaluate %s at sample %d: %w", varNames[i], s, err)
			}
			values[i][s] = v
		}
	}

	res := &Result{
		RunID:       uuid.NewString(),
		CoordSystem: traj.CoordSystem,
		Values:      make(map[string][]float64, len(fns)),
		Units:       make(map[string]string, len(fns)),
	}
	for s := 0; s < n; s++ {
		if !alive[s] {
			continue
		}
		res.Time = append(res.Time, traj.Time[s])
		res.C1 = append(res.C1, traj.C1[s])
		res.C2 = append(res.C2, traj.C2[s])
		res.C3 = append(res.C3, traj.C3[s])
		res.NetIdx = append(res.NetIdx, s)
	}
	for i, fn := range fns {
		series := make([]float64, 0, len(res.NetIdx))
		for _, s := range res.NetIdx {
			series = append(series, values[i][s])
		}
		res.Values[varNames[i]] = series
		res.Units[varNames[i]] = fn.Unit()
	}
	return res, nil
}
