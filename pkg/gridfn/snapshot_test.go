package gridfn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/gridfn/pkg/gridfn/interp"
	"github.com/randalmurphal/gridfn/pkg/gridfn/store"
)

func TestSaveLoadRegistry(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	reg := timeLonRegistry(t, WithCoordSystem("GDZ-sph"))
	meta, err := reg.Meta("T")
	require.NoError(t, err)
	meta.Citation = "CTIPe run 2017-05-28"
	meta.Equation = `T_{i}(t, \lambda)`
	meta.Extra["model"] = "CTIPe"

	id, err := SaveRegistry(st, "", reg, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	loaded, err := LoadRegistry(st, id)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())

	fn, err := loaded.Get("T")
	require.NoError(t, err)
	assert.Equal(t, "S", fn.Unit())
	assert.Equal(t, "GDZ-sph", fn.CoordSystem())
	assert.Equal(t, MethodMultilinear, fn.Method())
	assert.Equal(t, []Arg{{Name: "time", Unit: "hr"}, {Name: "lon", Unit: "deg"}}, fn.Args())

	assert.Equal(t, "CTIPe run 2017-05-28", fn.Meta().Citation)
	assert.Equal(t, `T_{i}(t, \lambda)`, fn.Meta().Equation)
	assert.Equal(t, "CTIPe", fn.Meta().Extra["model"])

	// The reloaded interpolant agrees with the original.
	orig, err := reg.Get("T")
	require.NoError(t, err)
	for _, point := range []map[string]float64{
		{"time": 0, "lon": -180},
		{"time": 12.5, "lon": 33},
		{"time": 24, "lon": 180},
	} {
		want, err := orig.Eval(point)
		require.NoError(t, err)
		got, err := fn.Eval(point)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12)
	}
}

func TestSaveRegistryExplicitID(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	reg := timeLonRegistry(t)
	id, err := SaveRegistry(st, "snap-1", reg, nil)
	require.NoError(t, err)
	assert.Equal(t, "snap-1", id)

	infos, err := st.List("snap-1")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "T", infos[0].Name)
}

func TestSaveLoadRestrictedFunction(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	reg := timeLonRegistry(t)
	fn, err := reg.Get("T")
	require.NoError(t, err)
	slice, err := fn.Restrict("time", 12)
	require.NoError(t, err)
	reg.Register(slice)

	_, err = SaveRegistry(st, "snap-2", reg, nil)
	require.NoError(t, err)

	loaded, err := LoadRegistry(st, "snap-2")
	require.NoError(t, err)

	got, err := loaded.Get("T")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Rank())
	assert.Equal(t, []Arg{{Name: "lon", Unit: "deg"}}, got.Args())

	want, err := slice.Eval(map[string]float64{"lon": 0})
	require.NoError(t, err)
	v, err := got.Eval(map[string]float64{"lon": 0})
	require.NoError(t, err)
	assert.InDelta(t, want, v, 1e-12)
}

func TestSaveLoadDescendingAxisNormalized(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	reg, err := Functionalize(
		[]AxisIn{{Name: "pressure", Unit: "hPa", Data: []float64{1000, 500, 100}}},
		[]VarIn{{Name: "f", Data: []float64{1, 2, 3}, Shape: []int{3}}},
	)
	require.NoError(t, err)

	_, err = SaveRegistry(st, "snap-3", reg, nil)
	require.NoError(t, err)

	loaded, err := LoadRegistry(st, "snap-3")
	require.NoError(t, err)
	fn, err := loaded.Get("f")
	require.NoError(t, err)

	v, err := fn.Eval(map[string]float64{"pressure": 1000})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestLoadRegistryMissingSnapshot(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	_, err := LoadRegistry(st, "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSaveLoadNearestWithBounds(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	reg, err := Functionalize(
		[]AxisIn{{Name: "x", Data: []float64{0, 1, 2}}},
		[]VarIn{{Name: "f", Data: []float64{10, 20, 30}, Shape: []int{3}}},
		WithInterpolation(MethodNearest),
		WithBounds(interp.BoundsClamp),
	)
	require.NoError(t, err)

	_, err = SaveRegistry(st, "snap-4", reg, nil)
	require.NoError(t, err)

	loaded, err := LoadRegistry(st, "snap-4")
	require.NoError(t, err)
	fn, err := loaded.Get("f")
	require.NoError(t, err)
	assert.Equal(t, MethodNearest, fn.Method())

	// Method and clamp policy survive the round trip.
	v, err := fn.Eval(map[string]float64{"x": 99})
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)
}
