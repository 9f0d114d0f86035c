package transform

import (
	"bytes"
	"errors"
	"testing"

	"github.com/user/mandelfly/pkg/bitmap"
	"github.com/user/mandelfly/pkg/mocks"
	"github.com/user/mandelfly/pkg/pixbuf"
	"golang.org/x/image/bmp"
)

// striped returns a buffer whose row y is filled with red = y*10.
func striped(width, height int) *pixbuf.Buffer {
	buf := pixbuf.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.Set(x, y, uint8(y*10), 0, 0)
		}
	}
	return buf
}

func TestPrepareAndSave_WhiteFrame(t *testing.T) {
	sink := mocks.NewFrameSink()
	buf := pixbuf.Filled(4, 4, 255, 255, 255)

	path, err := PrepareAndSave(sink, 0, buf)
	if err != nil {
		t.Fatalf("PrepareAndSave failed: %v", err)
	}
	if path != sink.FramePath(0) {
		t.Errorf("expected path %q, got %q", sink.FramePath(0), path)
	}

	data, ok := sink.Frame(0)
	if !ok {
		t.Fatal("expected frame 0 to be written")
	}
	if len(data) != 54+4*12 {
		t.Errorf("expected %d bytes, got %d", 54+4*12, len(data))
	}
	for i := bitmap.PixelOffset; i < len(data); i++ {
		if data[i] != 255 {
			t.Fatalf("expected white pixel data, byte %d = %d", i, data[i])
		}
	}
	if !buf.Released() {
		t.Error("expected buffer to be released")
	}
}

func TestPrepareAndSave_Orientation(t *testing.T) {
	// Row 0 of a read-back framebuffer is the bottom scan line, so after the
	// flip and the bottom-up write it must decode at the bottom of the image.
	const width, height = 3, 5
	sink := mocks.NewFrameSink()

	if _, err := PrepareAndSave(sink, 4, striped(width, height)); err != nil {
		t.Fatalf("PrepareAndSave failed: %v", err)
	}

	data, _ := sink.Frame(4)
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("bmp.Decode failed: %v", err)
	}

	for y := 0; y < height; y++ {
		r, _, _, _ := img.At(1, y).RGBA()
		want := uint32((height - 1 - y) * 10)
		if r>>8 != want {
			t.Errorf("decoded row %d: red %d, want %d", y, r>>8, want)
		}
	}
}

func TestPrepareAndSave_FirstStoredRowIsCapturedRowZero(t *testing.T) {
	sink := mocks.NewFrameSink()
	buf := striped(2, 3)
	buf.Set(0, 0, 1, 2, 3)

	if _, err := PrepareAndSave(sink, 0, buf); err != nil {
		t.Fatal(err)
	}
	data, _ := sink.Frame(0)
	first := data[bitmap.PixelOffset : bitmap.PixelOffset+3]
	if !bytes.Equal(first, []byte{3, 2, 1}) {
		t.Errorf("expected captured (0,0) as first stored pixel in BGR, got %v", first)
	}
}

func TestPrepareAndSave_Malformed(t *testing.T) {
	sink := mocks.NewFrameSink()
	buf := &pixbuf.Buffer{Pix: make([]byte, 10), Width: 2, Height: 2}

	_, err := PrepareAndSave(sink, 1, buf)
	if !errors.Is(err, bitmap.ErrMalformedBuffer) {
		t.Errorf("expected ErrMalformedBuffer, got %v", err)
	}
	if !buf.Released() {
		t.Error("expected malformed buffer to be released")
	}
	if _, ok := sink.Frame(1); ok {
		t.Error("expected nothing written")
	}
}

func TestPrepareAndSave_SinkFailure(t *testing.T) {
	errFull := errors.New("disk full")
	sink := mocks.NewFrameSink()
	sink.WriteFrameFunc = func(index int, data []byte) error { return errFull }
	buf := pixbuf.Filled(2, 2, 9, 9, 9)

	path, err := PrepareAndSave(sink, 6, buf)
	if !errors.Is(err, errFull) {
		t.Fatalf("expected sink error, got %v", err)
	}

	var frameErr *FrameError
	if !errors.As(err, &frameErr) {
		t.Fatalf("expected *FrameError, got %T", err)
	}
	if frameErr.Index != 6 || frameErr.Path != sink.FramePath(6) || path != frameErr.Path {
		t.Errorf("unexpected frame error %+v (path %q)", frameErr, path)
	}
	if !buf.Released() {
		t.Error("expected buffer to be released after sink failure")
	}
}

func TestPrepareAndSave_ReleasedBuffer(t *testing.T) {
	buf := pixbuf.Filled(2, 2, 0, 0, 0)
	buf.Release()

	_, err := PrepareAndSave(mocks.NewFrameSink(), 0, buf)
	if !errors.Is(err, pixbuf.ErrReleased) {
		t.Errorf("expected ErrReleased, got %v", err)
	}
}
