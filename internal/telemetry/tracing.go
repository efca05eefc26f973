package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer returns the named tracer from the global provider. Without an
// installed SDK it is a no-op.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// EndSpan records err on span (if any), sets the status and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
