// Package telemetry provides the Progrock implementation of the tracer port.
package telemetry

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/equip/internal/core/ports"
)

// Recorder implements ports.Tracer on top of a progrock tape. Every span
// becomes a vertex so interleaved tool output stays attributed to the
// pipeline step that produced it.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// NewRecorder creates a Recorder writing to the given progrock writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start begins recording a new vertex named after the span.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &span{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// span implements ports.Span wrapping *progrock.VertexRecorder.
type span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write streams external tool output into the vertex log.
func (s *span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// SetAttribute records a key-value pair in the vertex log. Progrock has no
// structured attribute channel, so attributes ride along as log lines.
func (s *span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// RecordError marks the span as failed. The error is reported when the
// span ends.
func (s *span) RecordError(err error) {
	s.err = err
}

// End completes the vertex, carrying any recorded error.
func (s *span) End() {
	s.vertex.Done(s.err)
}
