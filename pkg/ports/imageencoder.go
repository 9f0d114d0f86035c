package ports

import (
	"image"
	"io"
)

// ImageEncoder writes an image in a single still-image format.
type ImageEncoder interface {
	// Encode writes img to w.
	Encode(w io.Writer, img image.Image) error

	// Extension returns the file extension without the dot, e.g. "webp".
	Extension() string
}
