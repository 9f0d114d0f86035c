package ports

import (
	"context"

	"github.com/user/mandelfly/pkg/pixbuf"
)

// FrameRequest describes one frame the render driver should produce.
type FrameRequest struct {
	Index  int
	Time   float32 // animation time passed to the scene as u_time
	Width  int
	Height int
}

// FrameSource abstracts the render driver. Implementations own their window,
// camera and input handling; the capture loop only asks for frames.
type FrameSource interface {
	// Render draws one frame and returns its pixels. Row 0 of the returned
	// buffer is the bottom scan line of the framebuffer.
	Render(ctx context.Context, req FrameRequest) (*pixbuf.Buffer, error)

	// ShouldClose reports whether the user asked to stop (window closed,
	// escape pressed) or the source has no more frames.
	ShouldClose() bool

	// Close releases the driver's resources.
	Close() error
}
