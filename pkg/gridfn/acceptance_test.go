package gridfn_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/gridfn/pkg/gridfn"
	"github.com/randalmurphal/gridfn/pkg/gridfn/store"
)

// TestEndToEnd exercises the full public workflow: register datasets,
// inspect the registry, evaluate, slice, persist, and reload.
func TestEndToEnd(t *testing.T) {
	timeVals := make([]float64, 25)
	for i := range timeVals {
		timeVals[i] = float64(i)
	}
	lonVals := make([]float64, 12)
	for i := range lonVals {
		lonVals[i] = -180 + float64(i)*360/11
	}

	data := make([]float64, len(timeVals)*len(lonVals))
	for i := range timeVals {
		for j := range lonVals {
			data[i*len(lonVals)+j] = 100*float64(i) + float64(j)
		}
	}

	reg, err := gridfn.Functionalize(
		[]gridfn.AxisIn{
			{Name: "time", Unit: "hr", Data: timeVals},
			{Name: "lon", Unit: "deg", Data: lonVals},
		},
		[]gridfn.VarIn{
			{Name: "T", Unit: "S", Data: data, Shape: []int{25, 12}},
		},
		gridfn.WithCoordSystem("GDZ-sph"),
		gridfn.WithLogger(slog.Default()),
	)
	require.NoError(t, err)

	// Registry inspection
	require.Equal(t, []string{"T"}, reg.Names())
	rows := reg.Summary()
	require.Len(t, rows, 1)
	assert.Equal(t, "T(time, lon)", rows[0].Symbol)
	assert.Equal(t, "S", rows[0].Unit)

	ranges, err := reg.CoordinateRange()
	require.NoError(t, err)
	assert.Equal(t, gridfn.Range{Min: 0, Max: 24, Unit: "hr"}, ranges["time"])
	assert.Equal(t, gridfn.Range{Min: -180, Max: 180, Unit: "deg"}, ranges["lon"])

	// Evaluation at a corner grid point
	fn, err := reg.Get("T")
	require.NoError(t, err)
	v, err := fn.Eval(map[string]float64{"time": 0, "lon": -180})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	// Metadata attached through the registry is visible on the function
	meta, err := reg.Meta("T")
	require.NoError(t, err)
	meta.Citation = "model run"
	assert.Equal(t, "model run", fn.Meta().Citation)

	// Slicing
	slice, err := fn.Restrict("time", 12)
	require.NoError(t, err)
	sv, err := slice.Eval(map[string]float64{"lon": -180})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, sv)

	// Persistence round trip
	st := store.NewMemoryStore()
	defer st.Close()
	id, err := gridfn.SaveRegistry(st, "", reg, slog.Default())
	require.NoError(t, err)

	loaded, err := gridfn.LoadRegistry(st, id)
	require.NoError(t, err)
	lfn, err := loaded.Get("T")
	require.NoError(t, err)
	assert.Equal(t, "model run", lfn.Meta().Citation)

	lv, err := lfn.Eval(map[string]float64{"time": 12, "lon": -180})
	require.NoError(t, err)
	assert.Equal(t, 1200.0, lv)
}
