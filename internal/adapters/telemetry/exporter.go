package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/render/internal/core/ports"
)

// LogExporter prints finished spans through the logger.
// It backs the --trace flag of the CLI.
type LogExporter struct {
	logger ports.Logger
}

// NewLogExporter creates an exporter writing to logger.
func NewLogExporter(logger ports.Logger) *LogExporter {
	return &LogExporter{logger: logger}
}

// ExportSpans logs one line per span.
func (e *LogExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		var b strings.Builder
		fmt.Fprintf(&b, "span %s %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))
		for _, kv := range s.Attributes() {
			fmt.Fprintf(&b, " %s=%s", kv.Key, kv.Value.Emit())
		}
		if s.Status().Description != "" {
			fmt.Fprintf(&b, " error=%q", s.Status().Description)
		}
		e.logger.Info(b.String())
	}
	return nil
}

// Shutdown does nothing.
func (e *LogExporter) Shutdown(_ context.Context) error {
	return nil
}

// NewProvider creates a tracer provider that exports every span synchronously to exporter.
func NewProvider(exporter sdktrace.SpanExporter) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSyncer(exporter),
	)
}
