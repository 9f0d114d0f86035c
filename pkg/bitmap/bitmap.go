// Package bitmap writes uncompressed 24-bit BMP files from RGB8 pixel data.
package bitmap

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// FileHeaderSize is the size of BITMAPFILEHEADER.
	FileHeaderSize = 14
	// InfoHeaderSize is the size of BITMAPINFOHEADER.
	InfoHeaderSize = 40
	// PixelOffset is where pixel data starts in the file.
	PixelOffset = FileHeaderSize + InfoHeaderSize

	bitsPerPixel  = 24
	bytesPerPixel = 3
)

// ErrMalformedBuffer is returned when the pixel data does not hold exactly
// width*height*3 samples or the dimensions are not positive.
var ErrMalformedBuffer = errors.New("bitmap: malformed pixel buffer")

// RowPadding returns the zero bytes appended to each row so that the row
// length is a multiple of four.
func RowPadding(width int) int {
	return (4 - (width*bytesPerPixel)%4) % 4
}

// RowSize returns the on-disk length of one row, padding included.
func RowSize(width int) int {
	return width*bytesPerPixel + RowPadding(width)
}

// FileSize returns the total size of an encoded width x height bitmap.
func FileSize(width, height int) int {
	return PixelOffset + height*RowSize(width)
}

func checkBuffer(pix []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrMalformedBuffer, width, height)
	}
	if want := width * height * bytesPerPixel; len(pix) != want {
		return fmt.Errorf("%w: %d bytes for %dx%d, want %d", ErrMalformedBuffer, len(pix), width, height, want)
	}
	return nil
}

// header builds the file header followed by the info header.
func header(width, height int) [PixelOffset]byte {
	var h [PixelOffset]byte

	// BITMAPFILEHEADER
	h[0], h[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(h[2:6], uint32(FileSize(width, height)))
	// h[6:10] reserved
	binary.LittleEndian.PutUint32(h[10:14], PixelOffset)

	// BITMAPINFOHEADER
	info := h[FileHeaderSize:]
	binary.LittleEndian.PutUint32(info[0:4], InfoHeaderSize)
	binary.LittleEndian.PutUint32(info[4:8], uint32(width))
	binary.LittleEndian.PutUint32(info[8:12], uint32(height))
	binary.LittleEndian.PutUint16(info[12:14], 1)
	binary.LittleEndian.PutUint16(info[14:16], bitsPerPixel)
	// compression, image size, resolution and palette fields stay zero

	return h
}

// Encode writes the bitmap for pix to w. Rows are emitted from y = height-1
// down to 0 and every pixel is written as B, G, R.
func Encode(w io.Writer, pix []byte, width, height int) error {
	if err := checkBuffer(pix, width, height); err != nil {
		return err
	}

	h := header(width, height)
	if _, err := w.Write(h[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	stride := width * bytesPerPixel
	row := make([]byte, RowSize(width))
	for y := height - 1; y >= 0; y-- {
		src := pix[y*stride : (y+1)*stride]
		for i := 0; i < stride; i += bytesPerPixel {
			row[i] = src[i+2]
			row[i+1] = src[i+1]
			row[i+2] = src[i]
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", y, err)
		}
	}

	return nil
}

// Marshal returns the encoded bitmap as a byte slice.
func Marshal(pix []byte, width, height int) ([]byte, error) {
	if err := checkBuffer(pix, width, height); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(FileSize(width, height))
	if err := Encode(&buf, pix, width, height); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes pix into a new or truncated file at path.
func WriteFile(path string, pix []byte, width, height int) (err error) {
	if err := checkBuffer(pix, width, height); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriterSize(f, 64*1024)
	if err := Encode(bw, pix, width, height); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
