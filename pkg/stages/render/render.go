// Package render implements the capture loop: render a frame, keep its pixels,
// report progress, until the frame cap is reached or the source closes.
package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/user/mandelfly/pkg/camera"
	"github.com/user/mandelfly/pkg/pipeline"
	"github.com/user/mandelfly/pkg/ports"
	"github.com/user/mandelfly/pkg/progress"
)

// ErrInvalidInput is returned for a non-positive frame cap or frame size.
var ErrInvalidInput = errors.New("render: invalid input")

// Stage drives a FrameSource frame by frame.
type Stage struct {
	source ports.FrameSource
	logger ports.Logger
	now    func() time.Time
}

// NewStage creates a new render stage.
func NewStage(source ports.FrameSource, logger ports.Logger) *Stage {
	return &Stage{
		source: source,
		logger: logger.WithComponent("render"),
		now:    time.Now,
	}
}

// Execute runs the loop. Each iteration checks, in order, the context, the
// stop channel, the source's close flag and the frame cap.
func (s *Stage) Execute(ctx context.Context, input pipeline.RenderInput) (result pipeline.RenderResult, err error) {
	if input.MaxFrames <= 0 || input.Frame.Width <= 0 || input.Frame.Height <= 0 {
		return result, fmt.Errorf("%w: %d frames of %dx%d", ErrInvalidInput,
			input.MaxFrames, input.Frame.Width, input.Frame.Height)
	}

	capturing := input.Capture != nil
	bounded := capturing || !input.Unbounded
	if capturing {
		s.logger.Debug("Rendering up to %d frames at %dx%d", input.MaxFrames, input.Frame.Width, input.Frame.Height)
	} else {
		s.logger.Info("Preview mode, frames are not captured")
	}

	start := s.now()
	defer func() {
		result.Elapsed = s.now().Sub(start)
		result.Interrupted = bounded && result.Frames < input.MaxFrames
	}()

	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-input.Stop:
			s.logger.Debug("Render loop stopped after %d frames", result.Frames)
			return result, nil
		default:
		}
		if s.source.ShouldClose() || (bounded && frame >= input.MaxFrames) {
			s.logger.Debug("Render loop stopped after %d frames", result.Frames)
			return result, nil
		}

		frameStart := s.now()
		req := ports.FrameRequest{
			Index:  frame,
			Time:   camera.AnimationTime(frame, input.MaxFrames),
			Width:  input.Frame.Width,
			Height: input.Frame.Height,
		}
		buf, rerr := s.source.Render(ctx, req)
		if rerr != nil {
			return result, fmt.Errorf("render frame %d: %w", frame, rerr)
		}
		result.Frames++

		if !capturing {
			buf.Release()
			continue
		}

		if serr := input.Capture.Store(frame, buf); serr != nil {
			buf.Release()
			return result, fmt.Errorf("capture frame %d: %w", frame, serr)
		}
		result.Captured = input.Capture.Captured()
		s.logger.Info("RENDERED: %s", progress.FormatProgress(frame+1, input.MaxFrames, s.now().Sub(frameStart)))
	}
}
