package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans started by application services
const TracerName = "ushop"

// StartSpan starts a business span with optional string attributes
// given as alternating key/value pairs. The caller must End the span.
func StartSpan(ctx context.Context, name string, keyValues ...string) (context.Context, trace.Span) {
	opts := []trace.SpanStartOption{
		trace.WithSpanKind(trace.SpanKindInternal),
	}
	if len(keyValues) > 1 {
		attrs := make([]attribute.KeyValue, 0, len(keyValues)/2)
		for i := 0; i+1 < len(keyValues); i += 2 {
			attrs = append(attrs, attribute.String(keyValues[i], keyValues[i+1]))
		}
		opts = append(opts, trace.WithAttributes(attrs...))
	}
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx, name, opts...)
}

// RecordError records err on the span and marks the span as failed.
// Nil spans and nil errors are ignored.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a string attribute to an existing span
func SetAttribute(span trace.Span, key, value string) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.String(key, value))
}

// TraceID returns the active trace ID from the context, or "" when no
// recording span is present.
func TraceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
