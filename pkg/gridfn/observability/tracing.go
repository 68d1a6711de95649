package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the gridfn tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("gridfn")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartFunctionalizeSpan starts a span covering a functionalize call.
	StartFunctionalizeSpan(ctx context.Context, coordSystem string, variables int) (context.Context, trace.Span)

	// StartEvalSpan starts a span for an interpolant evaluation.
	StartEvalSpan(ctx context.Context, function string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartFunctionalizeSpan starts a span covering a functionalize call.
func (m *otelSpanManager) StartFunctionalizeSpan(ctx context.Context, coordSystem string, variables int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "gridfn.functionalize",
		trace.WithAttributes(
			attribute.String("coord_system", coordSystem),
			attribute.Int("variables", variables),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartEvalSpan starts a span for an interpolant evaluation.
func (m *otelSpanManager) StartEvalSpan(ctx context.Context, function string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "gridfn.eval."+function,
		trace.WithAttributes(
			attribute.String("function", function),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
