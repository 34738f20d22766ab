// Package tracing provides OpenTelemetry tracing integration for the HTTP
// layer: a shared tracer plus middleware that opens a server span per
// request.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the service.
var tracer = otel.Tracer("article-cms")

// GetTracer returns the global tracer for creating spans.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
