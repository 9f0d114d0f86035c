package summarizer

import (
	"strings"
	"testing"
	"time"
)

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	formatter := NewMarkdownFormatter()

	summary := &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Render: RenderInfo{
			Source:    "bulb",
			Width:     1000,
			Height:    1000,
			MaxFrames: 2000,
			Frames:    2000,
			Captured:  2000,
			Elapsed:   90 * time.Second,
		},
		Camera: CameraInfo{
			Position:  [3]float32{0, 0, -2},
			Yaw:       -90,
			FOV:       60,
			Speed:     0.03,
			Autopilot: "s",
		},
		Output: OutputInfo{
			Enabled: true,
			Dir:     "./output",
			Saved:   2000,
			Elapsed: 30 * time.Second,
		},
		TotalElapsed: 2 * time.Minute,
	}

	result := formatter.Format(summary)

	checks := []string{
		"# Render Summary",
		"2024-01-15T10:30:00Z",
		"| Source | bulb |",
		"1000x1000",
		"2000 / 2000",
		"1.50 minute(s)",         // render time
		"(0.000, 0.000, -2.000)", // position
		"-90.0 / 0.0",
		"| Autopilot | S |",
		"| Directory | ./output |",
		"30.00 second(s)", // save time
		"Total time taken: 2.00 minute(s)",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
	if strings.Contains(result, "Stopped Early") || strings.Contains(result, "Failed Frames") {
		t.Error("unexpected interruption or failure section")
	}
}

func TestMarkdownFormatter_Format_FailuresAndInterruption(t *testing.T) {
	formatter := NewMarkdownFormatter()

	summary := &Summary{
		GeneratedAt: time.Now(),
		Render:      RenderInfo{Frames: 5, MaxFrames: 10, Captured: 5, Interrupted: true},
		Output: OutputInfo{
			Enabled: true,
			Saved:   4,
			Failed:  []FailedFrame{{Index: 2, Path: "out/frame_2.bmp", Error: "disk full"}},
		},
	}

	result := formatter.Format(summary)

	for _, check := range []string{
		"| Stopped Early | Yes |",
		"| Frames Failed | 1 |",
		"### Failed Frames",
		"- 2 `out/frame_2.bmp`: disk full",
	} {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestMarkdownFormatter_Format_Preview(t *testing.T) {
	result := NewMarkdownFormatter().Format(&Summary{GeneratedAt: time.Now()})

	if !strings.Contains(result, "Preview run, no frames saved.") {
		t.Error("expected preview note")
	}
	if strings.Contains(result, "Frames Saved") {
		t.Error("preview summary should not list saved frames")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Render Summary": "レンダリングサマリー",
			"Source":         "ソース",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	formatter := NewMarkdownFormatter(WithTranslator(translator))
	result := formatter.Format(&Summary{GeneratedAt: time.Now(), Render: RenderInfo{Source: "pattern"}})

	if !strings.Contains(result, "# レンダリングサマリー") {
		t.Error("expected translated title")
	}
	if !strings.Contains(result, "| ソース | pattern |") {
		t.Error("expected translated row label")
	}
}
