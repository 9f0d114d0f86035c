package pipeline

import (
	"time"

	"github.com/user/mandelfly/pkg/framebuf"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// =============================================================================
// Render Stage Types
// =============================================================================

// RenderInput configures the capture loop.
type RenderInput struct {
	MaxFrames int // frames to capture; also the period of the animation clock
	Frame     Dimension

	// Capture receives every rendered frame. Nil runs a preview: frames are
	// rendered and dropped.
	Capture *framebuf.Buffer

	// Unbounded keeps a preview running past MaxFrames until the source
	// closes or the context is cancelled. Ignored when capturing.
	Unbounded bool

	// Stop ends the loop early like closing the window does: frames captured
	// so far are kept. Cancelling the context instead aborts the run.
	Stop <-chan struct{}
}

// DefaultRenderInput returns the 1000x1000, 2000-frame configuration.
func DefaultRenderInput() RenderInput {
	return RenderInput{
		MaxFrames: 2000,
		Frame:     Dimension{Width: 1000, Height: 1000},
	}
}

// RenderResult describes how the capture loop ended.
type RenderResult struct {
	Frames      int           // frames rendered
	Captured    int           // frames stored in the capture buffer
	Elapsed     time.Duration // wall time of the loop
	Interrupted bool          // loop ended before MaxFrames
}

// =============================================================================
// Save Stage Types
// =============================================================================

// SaveInput points the save stage at a filled capture buffer.
type SaveInput struct {
	Capture *framebuf.Buffer
}

// FailedFrame records a frame that could not be written.
type FailedFrame struct {
	Index int
	Path  string
	Err   error
}

// SaveResult lists what was written.
type SaveResult struct {
	Saved   int
	Paths   []string
	Failed  []FailedFrame
	Elapsed time.Duration
}

// =============================================================================
// Convert Stage Types
// =============================================================================

// ConvertInput selects a directory of frame_<n>.bmp files to re-encode.
type ConvertInput struct {
	InputDir  string
	OutputDir string // defaults to InputDir
	Workers   int    // <= 0 uses runtime.NumCPU()
}

// ConvertedFrame maps a source bitmap to its re-encoded file.
type ConvertedFrame struct {
	Index  int
	Source string
	Target string
	Size   int
}

// ConvertResult lists converted frames in capture order.
type ConvertResult struct {
	Frames  []ConvertedFrame
	Failed  []FailedFrame
	Elapsed time.Duration
}
