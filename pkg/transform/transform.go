// Package transform turns a captured frame into a bitmap file: flip, encode,
// write, release.
package transform

import (
	"fmt"

	"github.com/user/mandelfly/pkg/bitmap"
	"github.com/user/mandelfly/pkg/pixbuf"
	"github.com/user/mandelfly/pkg/ports"
)

// FrameError carries the frame index and target path of a failed save.
type FrameError struct {
	Index int
	Path  string
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// PrepareAndSave flips buf vertically, encodes it as a 24-bit bitmap and
// writes it through sink at sink.FramePath(index). It takes ownership of buf
// and releases it on every path, including failures.
func PrepareAndSave(sink ports.FrameSink, index int, buf *pixbuf.Buffer) (string, error) {
	defer buf.Release()

	path := sink.FramePath(index)
	fail := func(err error) (string, error) {
		return path, &FrameError{Index: index, Path: path, Err: err}
	}

	if err := buf.Validate(); err != nil {
		return fail(fmt.Errorf("%w: %w", bitmap.ErrMalformedBuffer, err))
	}

	buf.FlipVertical()

	data, err := bitmap.Marshal(buf.Pix, buf.Width, buf.Height)
	if err != nil {
		return fail(err)
	}
	if err := sink.WriteFrame(index, data); err != nil {
		return fail(err)
	}
	return path, nil
}
