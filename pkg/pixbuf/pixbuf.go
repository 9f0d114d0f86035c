// Package pixbuf provides the owned RGB8 pixel buffer handed from the render
// driver through capture to the bitmap encoder.
package pixbuf

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// BytesPerPixel is the number of samples per pixel (R, G, B).
const BytesPerPixel = 3

var (
	// ErrMalformed is returned when the sample count does not match width*height*3
	// or the dimensions are not positive.
	ErrMalformed = errors.New("pixbuf: malformed buffer")

	// ErrReleased is returned when a released buffer is used.
	ErrReleased = errors.New("pixbuf: buffer already released")
)

// Buffer is a row-major RGB8 image. Rows are kept in the order the render
// driver delivered them; for OpenGL read-back that is bottom scan line first.
type Buffer struct {
	Pix    []byte
	Width  int
	Height int

	released bool
}

// New allocates a zeroed buffer of width x height pixels.
func New(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		return &Buffer{Width: width, Height: height}
	}
	return &Buffer{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
	}
}

// Wrap takes ownership of pix without copying.
func Wrap(pix []byte, width, height int) (*Buffer, error) {
	b := &Buffer{Pix: pix, Width: width, Height: height}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Filled returns a buffer with every pixel set to (r, g, b).
func Filled(width, height int, r, g, b uint8) *Buffer {
	buf := New(width, height)
	for i := 0; i+2 < len(buf.Pix); i += BytesPerPixel {
		buf.Pix[i] = r
		buf.Pix[i+1] = g
		buf.Pix[i+2] = b
	}
	return buf
}

// Stride returns the number of bytes in one unpadded row.
func (b *Buffer) Stride() int {
	return b.Width * BytesPerPixel
}

// Validate checks the buffer dimensions against its sample count.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrMalformed)
	}
	if b.released {
		return ErrReleased
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrMalformed, b.Width, b.Height)
	}
	if want := b.Width * b.Height * BytesPerPixel; len(b.Pix) != want {
		return fmt.Errorf("%w: %d bytes for %dx%d, want %d", ErrMalformed, len(b.Pix), b.Width, b.Height, want)
	}
	return nil
}

// At returns the RGB sample at (x, y) in buffer row order.
func (b *Buffer) At(x, y int) (r, g, bl uint8) {
	i := (y*b.Width + x) * BytesPerPixel
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Set writes the RGB sample at (x, y) in buffer row order.
func (b *Buffer) Set(x, y int, r, g, bl uint8) {
	i := (y*b.Width + x) * BytesPerPixel
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
}

// Row returns the samples of row y.
func (b *Buffer) Row(y int) []byte {
	s := b.Stride()
	return b.Pix[y*s : (y+1)*s]
}

// FlipVertical swaps row y with row Height-1-y for y < Height/2, in place.
// The middle row of an odd height maps to itself and is left alone.
func (b *Buffer) FlipVertical() {
	for y := 0; y < b.Height/2; y++ {
		top := b.Row(y)
		bottom := b.Row(b.Height - 1 - y)
		for i := range top {
			top[i], bottom[i] = bottom[i], top[i]
		}
	}
}

// Release drops the pixel storage. It is safe to call more than once.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.Pix = nil
	b.released = true
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool {
	return b != nil && b.released
}

// FromImage converts img to a buffer in framebuffer row order: row 0 of the
// buffer is the bottom row of the image, as glReadPixels would return it.
func FromImage(img image.Image) *Buffer {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	w, h := b.Dx(), b.Dy()
	buf := New(w, h)
	for y := 0; y < h; y++ {
		src := rgba.Pix[(h-1-y)*rgba.Stride:]
		dst := buf.Row(y)
		for x := 0; x < w; x++ {
			dst[x*3] = src[x*4]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return buf
}
