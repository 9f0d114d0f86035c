// Package imagecodec provides the still-image encoders saved bitmap frames
// can be converted to.
package imagecodec

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"sort"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/user/mandelfly/pkg/ports"
)

// ErrUnknownFormat is returned by ForFormat for an unsupported format name.
var ErrUnknownFormat = errors.New("imagecodec: unknown format")

// WebP encodes lossless WebP.
type WebP struct{}

func (WebP) Encode(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

func (WebP) Extension() string { return "webp" }

// TGA encodes uncompressed Truevision TGA.
type TGA struct{}

func (TGA) Encode(w io.Writer, img image.Image) error {
	return tga.Encode(w, img)
}

func (TGA) Extension() string { return "tga" }

// PNG encodes PNG at the given compression level.
type PNG struct {
	Level png.CompressionLevel
}

func (p PNG) Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: p.Level}
	return enc.Encode(w, img)
}

func (PNG) Extension() string { return "png" }

var encoders = map[string]ports.ImageEncoder{
	"webp": WebP{},
	"tga":  TGA{},
	"png":  PNG{},
}

// Formats returns the supported format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForFormat returns the encoder for a format name (case-insensitive).
func ForFormat(name string) (ports.ImageEncoder, error) {
	enc, ok := encoders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
	return enc, nil
}

var (
	_ ports.ImageEncoder = WebP{}
	_ ports.ImageEncoder = TGA{}
	_ ports.ImageEncoder = PNG{}
)
