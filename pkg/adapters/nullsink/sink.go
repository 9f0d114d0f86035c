// Package nullsink provides a frame sink that discards everything, used in
// preview runs.
package nullsink

import "github.com/user/mandelfly/pkg/ports"

// Sink discards all frames.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// FramePath returns an empty path.
func (s *Sink) FramePath(index int) string {
	return ""
}

// WriteFrame does nothing.
func (s *Sink) WriteFrame(index int, data []byte) error {
	return nil
}

var _ ports.FrameSink = (*Sink)(nil)
