package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest creates a test tracer provider with an in-memory span recorder.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	// Save the original provider
	originalProvider := otel.GetTracerProvider()

	// Set test provider
	otel.SetTracerProvider(tp)

	// Update the package-level tracer
	tracer = otel.Tracer("gridfn")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}

	return exporter, cleanup
}

func TestStartFunctionalizeSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()

	t.Run("creates span with correct name and attributes", func(t *testing.T) {
		ctx := context.Background()
		_, span := sm.StartFunctionalizeSpan(ctx, "GDZ-sph", 3)
		require.NotNil(t, span)

		// End the span to flush it to the exporter
		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		assert.Equal(t, "gridfn.functionalize", s.Name)

		// Check attributes
		var coordSystem string
		var variables int64
		for _, attr := range s.Attributes {
			switch attr.Key {
			case "coord_system":
				coordSystem = attr.Value.AsString()
			case "variables":
				variables = attr.Value.AsInt64()
			}
		}
		assert.Equal(t, "GDZ-sph", coordSystem)
		assert.Equal(t, int64(3), variables)
	})

	t.Run("returns context with span", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		newCtx, span := sm.StartFunctionalizeSpan(ctx, "", 1)

		// Context should be different
		assert.NotEqual(t, ctx, newCtx)

		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
	})
}

func TestStartEvalSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()

	t.Run("creates span with function name suffix", func(t *testing.T) {
		ctx := context.Background()
		_, span := sm.StartEvalSpan(ctx, "T")
		require.NotNil(t, span)

		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		assert.Equal(t, "gridfn.eval.T", s.Name)

		var function string
		for _, attr := range s.Attributes {
			if attr.Key == "function" {
				function = attr.Value.AsString()
			}
		}
		assert.Equal(t, "T", function)
	})

	t.Run("child spans have correct parent", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		ctx, outerSpan := sm.StartFunctionalizeSpan(ctx, "", 1)

		_, evalSpan := sm.StartEvalSpan(ctx, "T")
		evalSpan.End()

		outerSpan.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 2)

		var evalSpanData *tracetest.SpanStub
		for i := range spans {
			if spans[i].Name == "gridfn.eval.T" {
				evalSpanData = &spans[i]
				break
			}
		}
		require.NotNil(t, evalSpanData)

		// Verify parent-child relationship
		assert.True(t, evalSpanData.Parent.IsValid())
	})
}

func TestEndSpanWithError(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()

	t.Run("sets OK status for nil error", func(t *testing.T) {
		ctx := context.Background()
		_, span := sm.StartFunctionalizeSpan(ctx, "", 1)

		sm.EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		assert.Equal(t, codes.Ok, spans[0].Status.Code)
		assert.Equal(t, "", spans[0].Status.Description)
	})

	t.Run("sets Error status and records error", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		_, span := sm.StartFunctionalizeSpan(ctx, "", 1)
		testErr := errors.New("shape mismatch")

		sm.EndSpanWithError(span, testErr)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		assert.Equal(t, codes.Error, s.Status.Code)
		assert.Equal(t, "shape mismatch", s.Status.Description)

		// Check that error was recorded as an event
		require.NotEmpty(t, s.Events)
		found := false
		for _, event := range s.Events {
			if event.Name == "exception" {
				found = true
			}
		}
		assert.True(t, found, "Expected exception event")
	})

	t.Run("nil span does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.EndSpanWithError(nil, nil)
		})
		assert.NotPanics(t, func() {
			sm.EndSpanWithError(nil, errors.New("test"))
		})
	})
}

func TestAddSpanEvent(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()

	t.Run("adds event to current span", func(t *testing.T) {
		ctx := context.Background()
		ctx, span := sm.StartFunctionalizeSpan(ctx, "", 1)

		sm.AddSpanEvent(ctx, "function_registered",
			attribute.String("function", "T"),
			attribute.Int64("grid_points", 300),
		)

		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		require.NotEmpty(t, s.Events)

		var found bool
		for _, event := range s.Events {
			if event.Name == "function_registered" {
				found = true
				var function string
				var gridPoints int64
				for _, attr := range event.Attributes {
					switch attr.Key {
					case "function":
						function = attr.Value.AsString()
					case "grid_points":
						gridPoints = attr.Value.AsInt64()
					}
				}
				assert.Equal(t, "T", function)
				assert.Equal(t, int64(300), gridPoints)
			}
		}
		assert.True(t, found, "Expected to find function_registered event")
	})

	t.Run("no panic with no current span", func(t *testing.T) {
		ctx := context.Background()
		assert.NotPanics(t, func() {
			sm.AddSpanEvent(ctx, "test_event")
		})
	})
}

func TestOtelSpanManager_EndSpanWithError_Scenarios(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := &otelSpanManager{}

	t.Run("wrapped error message is preserved", func(t *testing.T) {
		ctx := context.Background()
		_, span := sm.StartFunctionalizeSpan(ctx, "", 1)

		wrappedErr := errors.New("build grid for T: values length mismatch")
		sm.EndSpanWithError(span, wrappedErr)

		spans := exporter.GetSpans()
		require.NotEmpty(t, spans)
		assert.Contains(t, spans[0].Status.Description, "values length mismatch")
	})
}
