package mocks

import (
	"context"

	"github.com/user/mandelfly/pkg/pixbuf"
	"github.com/user/mandelfly/pkg/ports"
)

// FrameSource is a scripted render driver. By default every frame is a
// Width x Height buffer filled with Color, and ShouldClose turns true once
// CloseAfter frames have been rendered (0 = never).
type FrameSource struct {
	Width, Height int
	Color         [3]uint8
	CloseAfter    int

	RenderFunc      func(ctx context.Context, req ports.FrameRequest) (*pixbuf.Buffer, error)
	ShouldCloseFunc func() bool

	// Recorded calls for verification
	Requests    []ports.FrameRequest
	Returned    []*pixbuf.Buffer
	CloseCalled bool
}

func (m *FrameSource) Render(ctx context.Context, req ports.FrameRequest) (*pixbuf.Buffer, error) {
	m.Requests = append(m.Requests, req)
	var (
		buf *pixbuf.Buffer
		err error
	)
	if m.RenderFunc != nil {
		buf, err = m.RenderFunc(ctx, req)
	} else {
		w, h := m.Width, m.Height
		if w == 0 || h == 0 {
			w, h = req.Width, req.Height
		}
		buf = pixbuf.Filled(w, h, m.Color[0], m.Color[1], m.Color[2])
	}
	if buf != nil {
		m.Returned = append(m.Returned, buf)
	}
	return buf, err
}

func (m *FrameSource) ShouldClose() bool {
	if m.ShouldCloseFunc != nil {
		return m.ShouldCloseFunc()
	}
	return m.CloseAfter > 0 && len(m.Requests) >= m.CloseAfter
}

func (m *FrameSource) Close() error {
	m.CloseCalled = true
	return nil
}

var _ ports.FrameSource = (*FrameSource)(nil)
