// Package save drains the capture buffer to disk once rendering has ended.
package save

import (
	"context"
	"errors"
	"time"

	"github.com/user/mandelfly/pkg/pipeline"
	"github.com/user/mandelfly/pkg/ports"
	"github.com/user/mandelfly/pkg/progress"
	"github.com/user/mandelfly/pkg/transform"
)

// ErrNoCapture is returned when the input carries no capture buffer.
var ErrNoCapture = errors.New("save: no capture buffer")

// Stage writes every captured frame through a FrameSink.
type Stage struct {
	sink   ports.FrameSink
	logger ports.Logger
	now    func() time.Time
}

// NewStage creates a new save stage.
func NewStage(sink ports.FrameSink, logger ports.Logger) *Stage {
	return &Stage{
		sink:   sink,
		logger: logger.WithComponent("save"),
		now:    time.Now,
	}
}

// Execute saves frames [0, Captured()) in index order. A frame that fails is
// logged and recorded in the result; the remaining frames are still saved.
// Cancellation is honoured between frames: the frames not yet saved are
// released and the context error is returned.
func (s *Stage) Execute(ctx context.Context, input pipeline.SaveInput) (pipeline.SaveResult, error) {
	result := pipeline.SaveResult{}
	capture := input.Capture
	if capture == nil {
		return result, ErrNoCapture
	}

	total := capture.Captured()
	start := s.now()
	s.logger.Debug("Saving %d frames to %s", total, s.sink.FramePath(0))

	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			s.logger.Warn("Save interrupted, releasing %d frames", capture.Pending())
			capture.Release()
			result.Elapsed = s.now().Sub(start)
			return result, ctx.Err()
		default:
		}

		frameStart := s.now()
		path, err := s.saveFrame(i, input)
		if err != nil {
			s.logger.Warn("Failed to save frame %d to %s: %v", i, path, err)
			result.Failed = append(result.Failed, pipeline.FailedFrame{Index: i, Path: path, Err: err})
		} else {
			result.Saved++
			result.Paths = append(result.Paths, path)
		}
		s.logger.Info("SAVED: %s", progress.FormatProgress(i+1, total, s.now().Sub(frameStart)))
	}

	result.Elapsed = s.now().Sub(start)
	return result, nil
}

func (s *Stage) saveFrame(index int, input pipeline.SaveInput) (string, error) {
	buf, err := input.Capture.Retrieve(index)
	if err != nil {
		return s.sink.FramePath(index), err
	}
	path, err := transform.PrepareAndSave(s.sink, index, buf)
	if err != nil {
		var frameErr *transform.FrameError
		if errors.As(err, &frameErr) {
			return path, frameErr.Err
		}
		return path, err
	}
	return path, nil
}
