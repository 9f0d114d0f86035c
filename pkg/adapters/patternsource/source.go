// Package patternsource is a render driver that draws a moving 2D test
// pattern with gg. It needs no GPU and is used for smoke runs and tests.
package patternsource

import (
	"context"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/user/mandelfly/pkg/pixbuf"
	"github.com/user/mandelfly/pkg/ports"
)

// Options configures the pattern.
type Options struct {
	// Solid, when set, fills every frame with this colour and skips drawing.
	Solid color.Color

	// Label draws the frame index in the corner.
	Label bool

	// Limit makes ShouldClose report true after this many frames (0 = never).
	Limit int
}

// Source draws one frame per Render call.
type Source struct {
	opts     Options
	rendered int
	closed   bool
}

// New creates a pattern source.
func New(opts Options) *Source {
	return &Source{opts: opts}
}

// Render draws the pattern at req.Time and returns it bottom row first.
func (s *Source) Render(ctx context.Context, req ports.FrameRequest) (*pixbuf.Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.closed {
		return nil, fmt.Errorf("patternsource: render after close")
	}
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("%w: frame size %dx%d", pixbuf.ErrMalformed, req.Width, req.Height)
	}
	s.rendered++

	if s.opts.Solid != nil {
		r, g, b, _ := s.opts.Solid.RGBA()
		return pixbuf.Filled(req.Width, req.Height, uint8(r>>8), uint8(g>>8), uint8(b>>8)), nil
	}

	dc := gg.NewContext(req.Width, req.Height)
	s.draw(dc, req)
	return pixbuf.FromImage(dc.Image()), nil
}

func (s *Source) draw(dc *gg.Context, req ports.FrameRequest) {
	w, h := float64(req.Width), float64(req.Height)
	t := float64(req.Time)

	// Vertical gradient, dark at the bottom.
	for y := 0; y < req.Height; y++ {
		v := float64(y) / math.Max(h-1, 1)
		dc.SetRGB(0.05+0.25*(1-v), 0.05, 0.15+0.45*(1-v))
		dc.DrawRectangle(0, float64(y), w, 1)
		dc.Fill()
	}

	// Orbiting disc so consecutive frames differ.
	cx := w/2 + math.Cos(t)*w/4
	cy := h/2 + math.Sin(t)*h/4
	dc.SetRGB(1, 0.8, 0.2)
	dc.DrawCircle(cx, cy, math.Min(w, h)/10)
	dc.Fill()

	// basicfont glyphs are 7x13; skip the label when it cannot fit.
	if !s.opts.Label || req.Width < 32 || req.Height < 16 {
		return
	}
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(fmt.Sprintf("%d", req.Index), 4, 4, 0, 1)
}

// ShouldClose reports whether the frame limit has been reached.
func (s *Source) ShouldClose() bool {
	return s.closed || (s.opts.Limit > 0 && s.rendered >= s.opts.Limit)
}

// Close marks the source closed.
func (s *Source) Close() error {
	s.closed = true
	return nil
}

var _ ports.FrameSource = (*Source)(nil)
