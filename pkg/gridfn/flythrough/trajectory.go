package flythrough

import (
	"fmt"
	"math"
)

// Trajectory is a time series of positions. Time holds UTC seconds;
// C1, C2, C3 are coordinate components in the labeled system, typically
// (lon, lat, height) for spherical or (x, y, z) for cartesian frames.
type Trajectory struct {
	Time []float64
	C1   []float64
	C2   []float64
	C3   []float64

	// CoordSystem is a free-form label, e.g. "GDZ-sph". Not validated.
	CoordSystem string
}

// Len returns the number of trajectory samples.
func (t Trajectory) Len() int { return len(t.Time) }

func (t Trajectory) validate() error {
	if len(t.Time) == 0 {
		return fmt.Errorf("trajectory has no samples")
	}
	if len(t.C1) != len(t.Time) || len(t.C2) != len(t.Time) || len(t.C3) != len(t.Time) {
		return fmt.Errorf("trajectory component lengths differ: time=%d c1=%d c2=%d c3=%d",
			len(t.Time), len(t.C1), len(t.C2), len(t.C3))
	}
	return nil
}

// Options configures SampleTrajectory.
type Options struct {
	// MaxLat and MinLat bound the latitude track, in degrees.
	MaxLat, MinLat float64

	// LonPerOrbit is the degrees of longitude traversed per ~90 minute
	// orbit. Values other than 360 precess the track.
	LonPerOrbit float64

	// MaxHeight and MinHeight bound the starting orbit height, in km.
	MaxHeight, MinHeight float64

	// Precession is an overall height decay applied across the window,
	// as a fraction of MinHeight.
	Precession float64

	// Cadence is the seconds between samples.
	Cadence float64
}

// DefaultOptions returns the standard sample orbit parameters.
func DefaultOptions() Options {
	return Options{
		MaxLat:      65,
		MinLat:      -65,
		LonPerOrbit: 363,
		MaxHeight:   450,
		MinHeight:   400,
		Precession:  0.01,
		Cadence:     2,
	}
}

// SampleTrajectory generates a deterministic synthetic orbit between two
// UTC timestamps: sinusoidal latitude and height tracks with a precessing
// longitude, labeled "GDZ-sph" with (c1, c2, c3) = (lon, lat, height) in
// (deg, deg, km).
func SampleTrajectory(startTS, stopTS float64, o Options) (Trajectory, error) {
	if stopTS <= startTS {
		return Trajectory{}, fmt.Errorf("stop %g must be after start %g", stopTS, startTS)
	}
	if o.Cadence <= 0 {
		return Trajectory{}, fmt.Errorf("cadence must be positive, got %g", o.Cadence)
	}
	if o.MaxLat <= o.MinLat {
		return Trajectory{}, fmt.Errorf("max latitude %g must exceed min %g", o.MaxLat, o.MinLat)
	}
	if o.MaxHeight <= o.MinHeight {
		return Trajectory{}, fmt.Errorf("max height %g must exceed min %g", o.MaxHeight, o.MinHeight)
	}

	n := int((stopTS - startTS) / o.Cadence)
	if n < 2 {
		return Trajectory{}, fmt.Errorf("window too short for cadence %g", o.Cadence)
	}

	orbitSamples := int(90 * 60 / o.Cadence)
	if orbitSamples < 2 {
		orbitSamples = 2
	}
	nOrbits := float64(n) / float64(orbitSamples)

	hScale := (o.MaxHeight - o.MinHeight) / 2
	hOffset := (o.MaxHeight + o.MinHeight) / 2
	latScale := (o.MaxLat - o.MinLat) / 2
	latOffset := (o.MaxLat + o.MinLat) / 2

	traj := Trajectory{
		Time:        make([]float64, n),
		C1:          make([]float64, n),
		C2:          make([]float64, n),
		C3:          make([]float64, n),
		CoordSystem: "GDZ-sph",
	}

	for i := 0; i < n; i++ {
		frac := float64(i) / float64(n-1)
		traj.Time[i] = startTS + frac*(stopTS-startTS)

		// Phase within the current orbit.
		phase := 2 * math.Pi * float64(i%orbitSamples) / float64(orbitSamples-1)
		traj.C2[i] = math.Cos(phase)*latScale + latOffset

		// Longitude precesses across orbits, wrapped to [-180, 180).
		lon := math.Mod(frac*o.LonPerOrbit*nOrbits, 360)
		if lon < 0 {
			lon += 360
		}
		traj.C1[i] = lon - 180

		// Height track with overall decay.
		traj.C3[i] = math.Sin(phase)*hScale + hOffset - frac*o.Precession*o.MinHeight
	}

	return traj, nil
}
