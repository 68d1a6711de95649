// Package observability provides structured logging, metrics, and tracing
// helpers for gridfn.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds gridfn context to a logger.
// Returns a new logger with function and coord_system fields.
func EnrichLogger(logger *slog.Logger, function, coordSystem string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("function", function),
		slog.String("coord_system", coordSystem),
	)
}

// LogFunctionalize logs completion of a functionalize call.
func LogFunctionalize(logger *slog.Logger, functions, axes int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("datasets functionalized",
		slog.Int("functions", functions),
		slog.Int("axes", axes),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogFunctionalizeError logs a failed functionalize call.
func LogFunctionalizeError(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Error("functionalize failed",
		slog.String("error", err.Error()),
	)
}

// LogRegister logs insertion of a function into a registry.
func LogRegister(logger *slog.Logger, function string, rank, gridPoints int) {
	if logger == nil {
		return
	}
	logger.Debug("function registered",
		slog.String("function", function),
		slog.Int("rank", rank),
		slog.Int("grid_points", gridPoints),
	)
}

// LogEvalError logs a failed evaluation.
func LogEvalError(logger *slog.Logger, function string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("evaluation failed",
		slog.String("function", function),
		slog.String("error", err.Error()),
	)
}

// LogSnapshotSave logs persistence of a registry snapshot.
func LogSnapshotSave(logger *slog.Logger, snapshotID string, functions int, sizeBytes int) {
	if logger == nil {
		return
	}
	logger.Debug("snapshot saved",
		slog.String("snapshot_id", snapshotID),
		slog.Int("functions", functions),
		slog.Int("size_bytes", sizeBytes),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
