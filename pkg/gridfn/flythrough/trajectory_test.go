package flythrough

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleTrajectory(t *testing.T) {
	o := DefaultOptions()
	traj, err := SampleTrajectory(0, 3600, o)
	require.NoError(t, err)

	n := traj.Len()
	assert.Equal(t, 1800, n) // 3600s at 2s cadence
	assert.Equal(t, "GDZ-sph", traj.CoordSystem)
	assert.Len(t, traj.C1, n)
	assert.Len(t, traj.C2, n)
	assert.Len(t, traj.C3, n)

	// Time samples span the window in order.
	assert.Equal(t, 0.0, traj.Time[0])
	assert.Equal(t, 3600.0, traj.Time[n-1])
	for i := 1; i < n; i++ {
		assert.Greater(t, traj.Time[i], traj.Time[i-1])
	}

	// Tracks stay within their configured bounds.
	for i := 0; i < n; i++ {
		assert.GreaterOrEqual(t, traj.C1[i], -180.0, "lon sample %d", i)
		assert.Less(t, traj.C1[i], 180.0, "lon sample %d", i)
		assert.GreaterOrEqual(t, traj.C2[i], o.MinLat-1e-9, "lat sample %d", i)
		assert.LessOrEqual(t, traj.C2[i], o.MaxLat+1e-9, "lat sample %d", i)
		assert.LessOrEqual(t, traj.C3[i], o.MaxHeight+1e-9, "height sample %d", i)
	}
}

func TestSampleTrajectoryHeightDecay(t *testing.T) {
	o := DefaultOptions()
	traj, err := SampleTrajectory(0, 6*3600, o)
	require.NoError(t, err)

	// The overall decay pulls the final sample below the starting height.
	n := traj.Len()
	assert.Less(t, traj.C3[n-1], traj.C3[0])
}

func TestSampleTrajectoryErrors(t *testing.T) {
	o := DefaultOptions()

	_, err := SampleTrajectory(100, 100, o)
	assert.Error(t, err)

	_, err = SampleTrajectory(100, 50, o)
	assert.Error(t, err)

	bad := o
	bad.Cadence = 0
	_, err = SampleTrajectory(0, 3600, bad)
	assert.Error(t, err)

	bad = o
	bad.MaxLat = bad.MinLat
	_, err = SampleTrajectory(0, 3600, bad)
	assert.Error(t, err)

	bad = o
	bad.MaxHeight = bad.MinHeight
	_, err = SampleTrajectory(0, 3600, bad)
	assert.Error(t, err)

	// Window shorter than two samples
	_, err = SampleTrajectory(0, 3, o)
	assert.Error(t, err)
}

func TestTrajectoryValidate(t *testing.T) {
	traj := Trajectory{
		Time: []float64{0, 1},
		C1:   []float64{0, 1},
		C2:   []float64{0, 1},
		C3:   []float64{0, 1},
	}
	assert.NoError(t, traj.validate())

	assert.Error(t, Trajectory{}.validate())

	uneven := traj
	uneven.C3 = []float64{0}
	assert.Error(t, uneven.validate())
}
