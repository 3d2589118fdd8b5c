package telemetry

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

// StreamWriter is a progrock.Writer that forwards vertex log output to a
// plain writer as it arrives. It is the non-interactive sink used by the
// CLI, where streamed tool output should reach the terminal immediately
// rather than accumulate on a tape.
type StreamWriter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewStreamWriter creates a StreamWriter targeting out.
func NewStreamWriter(out io.Writer) *StreamWriter {
	return &StreamWriter{out: out}
}

// WriteStatus forwards every log chunk of the update in arrival order.
func (w *StreamWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, l := range update.Logs {
		if _, err := w.out.Write(l.Data); err != nil {
			return err
		}
	}
	return nil
}

// Close implements the optional closer contract of progrock writers.
func (w *StreamWriter) Close() error {
	return nil
}
