// Package orchestrator runs a capture session: render into the capture
// buffer, then drain it to disk.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/user/mandelfly/pkg/framebuf"
	"github.com/user/mandelfly/pkg/pipeline"
	"github.com/user/mandelfly/pkg/ports"
	"github.com/user/mandelfly/pkg/progress"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Render
	Width     int
	Height    int
	MaxFrames int
	Unbounded bool // preview only: keep rendering until the source closes

	// Output
	SaveFrames bool
	OutputDir  string

	// Stop ends rendering early and still saves the frames captured so far.
	Stop <-chan struct{}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	render := pipeline.DefaultRenderInput()
	return Config{
		Width:      render.Frame.Width,
		Height:     render.Frame.Height,
		MaxFrames:  render.MaxFrames,
		SaveFrames: true,
		OutputDir:  "./output",
	}
}

// Orchestrator coordinates the render and save stages.
type Orchestrator struct {
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult]
	saveStage   pipeline.Stage[pipeline.SaveInput, pipeline.SaveResult]
	sink        ports.FrameSink
	logger      ports.Logger
	now         func() time.Time
}

// New creates a new Orchestrator.
func New(
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult],
	saveStage pipeline.Stage[pipeline.SaveInput, pipeline.SaveResult],
	sink ports.FrameSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		renderStage: renderStage,
		saveStage:   saveStage,
		sink:        sink,
		logger:      logger,
		now:         time.Now,
	}
}

// Run renders and, when capturing, saves every captured frame. Frames that
// fail to save are reported in the result and do not fail the run. On
// cancellation every frame still held is released and the context error is
// returned together with the partial result.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	start := o.now()
	capturing := config.SaveFrames && o.sink.Enabled()
	result := RunResult{Capturing: capturing}

	var capture *framebuf.Buffer
	if capturing {
		capture = framebuf.New(config.MaxFrames)
		defer capture.Release()
	}

	o.logger.Info("Starting render")
	render, err := o.renderStage.Execute(ctx, pipeline.RenderInput{
		MaxFrames: config.MaxFrames,
		Frame:     pipeline.Dimension{Width: config.Width, Height: config.Height},
		Capture:   capture,
		Unbounded: config.Unbounded,
		Stop:      config.Stop,
	})
	result.Render = render
	if err != nil {
		result.Elapsed = o.now().Sub(start)
		o.logger.Error("Failed to render frames: %s", err)
		return result, fmt.Errorf("render stage: %w", err)
	}

	if capturing {
		o.logger.Info("Saving %d frames to %s", capture.Captured(), config.OutputDir)
		saved, err := o.saveStage.Execute(ctx, pipeline.SaveInput{Capture: capture})
		result.Save = saved
		if err != nil {
			result.Elapsed = o.now().Sub(start)
			o.logger.Error("Failed to save frames: %s", err)
			return result, fmt.Errorf("save stage: %w", err)
		}
		o.logger.Info("%d frames saved, %d failed", saved.Saved, len(saved.Failed))
	}

	result.Elapsed = o.now().Sub(start)
	o.logger.Info("Total time taken: %s", progress.Format(result.Elapsed))
	return result, nil
}

// RunResult contains the results of a run for summary generation.
type RunResult struct {
	Capturing bool
	Render    pipeline.RenderResult
	Save      pipeline.SaveResult
	Elapsed   time.Duration
}

// Failed reports whether any captured frame could not be saved.
func (r RunResult) Failed() bool {
	return len(r.Save.Failed) > 0
}
