package ports

// FrameSink receives encoded frame files.
type FrameSink interface {
	// Enabled returns false for sinks that discard frames (preview runs).
	Enabled() bool

	// FramePath returns where the frame with the given index is written.
	FramePath(index int) string

	// WriteFrame stores an encoded frame, replacing any previous file at
	// FramePath(index).
	WriteFrame(index int, data []byte) error
}
