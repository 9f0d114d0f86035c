// Package summarizer builds a markdown report of a capture run.
package summarizer

import "time"

// Summary contains all data collected during a run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Render settings and outcome
	Render RenderInfo

	// Camera pose at the start of the run
	Camera CameraInfo

	// Saved frames
	Output OutputInfo

	// Wall time of the whole run
	TotalElapsed time.Duration
}

// RenderInfo describes the render loop.
type RenderInfo struct {
	Source      string
	Width       int
	Height      int
	MaxFrames   int
	Frames      int
	Captured    int
	Interrupted bool
	Elapsed     time.Duration
}

// CameraInfo is the starting camera pose.
type CameraInfo struct {
	Position  [3]float32
	Yaw       float32
	Pitch     float32
	FOV       float32
	Speed     float32
	Autopilot string
}

// OutputInfo describes the save phase. Enabled is false for preview runs.
type OutputInfo struct {
	Enabled bool
	Dir     string
	Saved   int
	Failed  []FailedFrame
	Elapsed time.Duration
}

// FailedFrame is a frame that could not be written.
type FailedFrame struct {
	Index int
	Path  string
	Error string
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithRender sets render information.
func (b *Builder) WithRender(render RenderInfo) *Builder {
	b.summary.Render = render
	return b
}

// WithCamera sets the camera pose.
func (b *Builder) WithCamera(camera CameraInfo) *Builder {
	b.summary.Camera = camera
	return b
}

// WithOutput sets save information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// WithTotal sets the wall time of the run.
func (b *Builder) WithTotal(elapsed time.Duration) *Builder {
	b.summary.TotalElapsed = elapsed
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
