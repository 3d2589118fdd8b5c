package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for recording units of work, such as the steps
// of the sandboxed verification pipeline.
type Tracer interface {
	// Start begins a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
	// Close flushes and closes the recording session.
	Close() error
}

// Span represents a unit of work. Writes stream external tool output into
// the span's log.
type Span interface {
	io.Writer
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
	// RecordError records a failure for the span.
	RecordError(err error)
	// End completes the span.
	End()
}
