package summarizer

import (
	"errors"
	"testing"
	"time"

	"github.com/user/mandelfly/pkg/mocks"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_FullChain(t *testing.T) {
	summary := NewBuilder().
		WithRender(RenderInfo{Source: "bulb", Width: 64, Height: 48, MaxFrames: 10, Frames: 10, Captured: 10}).
		WithCamera(CameraInfo{FOV: 60, Yaw: -90}).
		WithOutput(OutputInfo{Enabled: true, Dir: "out", Saved: 9, Failed: []FailedFrame{{Index: 3}}}).
		WithTotal(3 * time.Second).
		Build()

	if summary.Render.Source != "bulb" || summary.Render.Captured != 10 {
		t.Errorf("unexpected render info: %+v", summary.Render)
	}
	if summary.Camera.FOV != 60 {
		t.Errorf("unexpected camera info: %+v", summary.Camera)
	}
	if summary.Output.Saved != 9 || len(summary.Output.Failed) != 1 {
		t.Errorf("unexpected output info: %+v", summary.Output)
	}
	if summary.TotalElapsed != 3*time.Second {
		t.Errorf("unexpected total: %v", summary.TotalElapsed)
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) string { return "report" }), fs)

	if err := w.Write("reports/run.md", NewSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if exists, _ := fs.Exists("reports"); !exists {
		t.Error("expected parent directory to be created")
	}
	data, ok := fs.GetFile("reports/run.md")
	if !ok || string(data) != "report" {
		t.Errorf("unexpected file content %q", data)
	}
}

func TestWriter_Write_Error(t *testing.T) {
	fs := mocks.NewFileSystem()
	diskErr := errors.New("read-only")
	fs.WriteFileFunc = func(path string, data []byte) error { return diskErr }

	w := NewWriter(NewMarkdownFormatter(), fs)
	if err := w.Write("run.md", NewSummary()); !errors.Is(err, diskErr) {
		t.Errorf("expected wrapped disk error, got %v", err)
	}
}
