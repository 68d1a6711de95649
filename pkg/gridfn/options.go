package gridfn

import (
	"log/slog"

	"github.com/randalmurphal/gridfn/pkg/gridfn/interp"
	"github.com/randalmurphal/gridfn/pkg/gridfn/observability"
)

// Method selects the interpolation strategy for built functions.
type Method string

const (
	// MethodMultilinear is N-dimensional piecewise-linear interpolation.
	// This is the default; it exactly reproduces stored values at grid points.
	MethodMultilinear Method = "multilinear"

	// MethodNearest is nearest-neighbour lookup.
	MethodNearest Method = "nearest"
)

// buildConfig holds configuration for Functionalize.
type buildConfig struct {
	registry    *Registry
	coordSystem string
	method      Method
	bounds      interp.Bounds
	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	spans       observability.SpanManager
}

func defaultBuildConfig() buildConfig {
	return buildConfig{
		method: MethodMultilinear,
		bounds: interp.BoundsError,
	}
}

// Option configures a Functionalize call.
type Option func(*buildConfig)

// WithRegistry directs Functionalize to extend an existing registry instead
// of creating a new one. Functions built from different axis sets accumulate
// side by side.
func WithRegistry(r *Registry) Option {
	return func(c *buildConfig) {
		c.registry = r
	}
}

// WithCoordSystem attaches a free-form coordinate-system label (e.g.
// "GDZ-sph") to the built functions. The label is not validated.
func WithCoordSystem(label string) Option {
	return func(c *buildConfig) {
		c.coordSystem = label
	}
}

// WithInterpolation selects the interpolation method.
// Default: MethodMultilinear.
func WithInterpolation(m Method) Option {
	return func(c *buildConfig) {
		if m != "" {
			c.method = m
		}
	}
}

// WithBounds selects the out-of-range evaluation policy.
// Default: interp.BoundsError (strict).
func WithBounds(b interp.Bounds) Option {
	return func(c *buildConfig) {
		c.bounds = b
	}
}

// WithLogger enables structured logging of the functionalize call and of
// failed evaluations of the built functions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *buildConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OTel metrics for the functionalize call and for
// evaluations of the built functions.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *buildConfig) {
		c.metrics = m
	}
}

// WithTracing enables OTel spans covering the functionalize call and
// evaluations of the built functions.
func WithTracing(s observability.SpanManager) Option {
	return func(c *buildConfig) {
		c.spans = s
	}
}
