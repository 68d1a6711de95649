package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records gridfn metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordEval records an interpolant evaluation with its duration and
	// error status.
	RecordEval(ctx context.Context, function string, duration time.Duration, err error)

	// RecordFunctionalize records a functionalize call building the given
	// number of functions.
	RecordFunctionalize(ctx context.Context, functions int, duration time.Duration, err error)

	// RecordRegister records a function insertion with its grid size.
	RecordRegister(ctx context.Context, function string, gridPoints int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	evals           metric.Int64Counter
	evalLatency     metric.Float64Histogram
	evalErrors      metric.Int64Counter
	functionalizes  metric.Int64Counter
	functionalizeMs metric.Float64Histogram
	gridPoints      metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("gridfn")

	evals, err := meter.Int64Counter("gridfn.eval.count",
		metric.WithDescription("Number of interpolant evaluations"),
	)
	if err != nil {
		return nil, err
	}

	evalLatency, err := meter.Float64Histogram("gridfn.eval.latency_ms",
		metric.WithDescription("Interpolant evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	evalErrors, err := meter.Int64Counter("gridfn.eval.errors",
		metric.WithDescription("Number of failed evaluations"),
	)
	if err != nil {
		return nil, err
	}

	functionalizes, err := meter.Int64Counter("gridfn.functionalize.count",
		metric.WithDescription("Number of functionalize calls"),
	)
	if err != nil {
		return nil, err
	}

	functionalizeMs, err := meter.Float64Histogram("gridfn.functionalize.latency_ms",
		metric.WithDescription("Functionalize latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	gridPoints, err := meter.Int64Histogram("gridfn.function.grid_points",
		metric.WithDescription("Grid size of registered functions"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		evals:           evals,
		evalLatency:     evalLatency,
		evalErrors:      evalErrors,
		functionalizes:  functionalizes,
		functionalizeMs: functionalizeMs,
		gridPoints:      gridPoints,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordEval records an interpolant evaluation.
func (m *otelMetrics) RecordEval(ctx context.Context, function string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("function", function),
	}

	m.evals.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.evalLatency.Record(ctx, float64(duration.Nanoseconds())/1e6, metric.WithAttributes(attrs...))

	if err != nil {
		m.evalErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordFunctionalize records a functionalize call.
func (m *otelMetrics) RecordFunctionalize(ctx context.Context, functions int, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", err == nil),
		attribute.Int("functions", functions),
	}
	m.functionalizes.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.functionalizeMs.Record(ctx, float64(duration.Nanoseconds())/1e6, metric.WithAttributes(attrs...))
}

// RecordRegister records a function insertion.
func (m *otelMetrics) RecordRegister(ctx context.Context, function string, gridPoints int64) {
	attrs := []attribute.KeyValue{
		attribute.String("function", function),
	}
	m.gridPoints.Record(ctx, gridPoints, metric.WithAttributes(attrs...))
}
