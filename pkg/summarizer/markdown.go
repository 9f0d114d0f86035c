package summarizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/user/mandelfly/pkg/progress"
)

// MarkdownFormatter renders a Summary as a markdown document.
type MarkdownFormatter struct {
	translate func(string) string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(t func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// NewMarkdownFormatter creates a formatter. Labels are English unless a
// translator is given.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{translate: func(s string) string { return s }}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Render Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated"), s.GeneratedAt.Format(time.RFC3339))

	fmt.Fprintf(&b, "## %s\n\n", t("Render"))
	row := func(label, value string) {
		fmt.Fprintf(&b, "| %s | %s |\n", t(label), value)
	}
	header := func() {
		fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	}
	header()
	row("Source", s.Render.Source)
	row("Frame Size", fmt.Sprintf("%dx%d", s.Render.Width, s.Render.Height))
	row("Frames Rendered", fmt.Sprintf("%d / %d", s.Render.Frames, s.Render.MaxFrames))
	row("Frames Captured", fmt.Sprintf("%d", s.Render.Captured))
	if s.Render.Interrupted {
		row("Stopped Early", t("Yes"))
	}
	row("Render Time", progress.Format(s.Render.Elapsed))
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Camera"))
	header()
	p := s.Camera.Position
	row("Position", fmt.Sprintf("(%.3f, %.3f, %.3f)", p[0], p[1], p[2]))
	row("Yaw / Pitch", fmt.Sprintf("%.1f / %.1f", s.Camera.Yaw, s.Camera.Pitch))
	row("FOV", fmt.Sprintf("%.1f", s.Camera.FOV))
	row("Speed", fmt.Sprintf("%.4f", s.Camera.Speed))
	if s.Camera.Autopilot != "" {
		row("Autopilot", strings.ToUpper(s.Camera.Autopilot))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	if !s.Output.Enabled {
		fmt.Fprintf(&b, "%s\n\n", t("Preview run, no frames saved."))
	} else {
		header()
		row("Directory", s.Output.Dir)
		row("Frames Saved", fmt.Sprintf("%d", s.Output.Saved))
		row("Frames Failed", fmt.Sprintf("%d", len(s.Output.Failed)))
		row("Save Time", progress.Format(s.Output.Elapsed))
		b.WriteString("\n")

		if len(s.Output.Failed) > 0 {
			fmt.Fprintf(&b, "### %s\n\n", t("Failed Frames"))
			for _, ff := range s.Output.Failed {
				fmt.Fprintf(&b, "- %d `%s`: %s\n", ff.Index, ff.Path, ff.Error)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "%s: %s\n", t("Total time taken"), progress.Format(s.TotalElapsed))
	return b.String()
}

var _ Formatter = (*MarkdownFormatter)(nil)
