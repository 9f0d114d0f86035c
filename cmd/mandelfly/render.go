package main

import (
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/mandelfly/pkg/adapters/bulbsource"
	"github.com/user/mandelfly/pkg/adapters/filesink"
	"github.com/user/mandelfly/pkg/adapters/gldriver"
	"github.com/user/mandelfly/pkg/adapters/nullsink"
	"github.com/user/mandelfly/pkg/adapters/osfilesystem"
	"github.com/user/mandelfly/pkg/adapters/patternsource"
	"github.com/user/mandelfly/pkg/config"
	"github.com/user/mandelfly/pkg/orchestrator"
	"github.com/user/mandelfly/pkg/ports"
	"github.com/user/mandelfly/pkg/stages/render"
	"github.com/user/mandelfly/pkg/stages/save"
	"github.com/user/mandelfly/pkg/summarizer"
)

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:        "render",
		Usage:       l10n.T("Render frames and save them as bitmaps"),
		Description: l10n.T("Render up to --frames frames, keep them in memory, then write frame_<n>.bmp files to the output directory."),
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    l10n.T("YAML configuration file"),
				Category: l10n.T("Input"),
			},
			&cli.StringFlag{
				Name:     "source",
				Aliases:  []string{"s"},
				Usage:    l10n.T("Render driver (bulb, pattern, gl)"),
				Category: l10n.T("Input"),
			},
			&cli.StringFlag{
				Name:     "shader",
				Usage:    l10n.T("Shader file for the gl driver"),
				Category: l10n.T("Input"),
			},
			&cli.IntFlag{
				Name:     "width",
				Aliases:  []string{"W"},
				Usage:    l10n.T("Frame width (default: 1000)"),
				Category: l10n.T("Frames"),
			},
			&cli.IntFlag{
				Name:     "height",
				Aliases:  []string{"H"},
				Usage:    l10n.T("Frame height (default: 1000)"),
				Category: l10n.T("Frames"),
			},
			&cli.IntFlag{
				Name:     "frames",
				Aliases:  []string{"n"},
				Usage:    l10n.T("Number of frames to capture (default: 2000)"),
				Category: l10n.T("Frames"),
			},
			&cli.IntFlag{
				Name:     "workers",
				Aliases:  []string{"j"},
				Usage:    l10n.T("Rows traced in parallel by the bulb driver (0 = all CPUs)"),
				Category: l10n.T("Frames"),
			},
			&cli.Float64Flag{
				Name:     "fov",
				Usage:    l10n.T("Camera field of view in degrees"),
				Category: l10n.T("Camera"),
			},
			&cli.StringFlag{
				Name:     "autopilot",
				Usage:    l10n.T("Keys held on every frame, e.g. s or s+a"),
				Category: l10n.T("Camera"),
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    l10n.T("Output directory for frame_<n>.bmp files"),
				Category: l10n.T("Output"),
			},
			&cli.BoolFlag{
				Name:     "preview",
				Usage:    l10n.T("Render without saving frames"),
				Category: l10n.T("Output"),
			},
			&cli.BoolFlag{
				Name:     "unbounded",
				Usage:    l10n.T("In preview, keep rendering until the window closes"),
				Category: l10n.T("Output"),
			},
			&cli.StringFlag{
				Name:     "summary",
				Usage:    l10n.T("Output execution summary to file (Markdown format)"),
				Category: l10n.T("Output"),
			},
		}, loggingFlags()...),
		Action: runRender,
	}
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("source") {
		cfg.Source = c.String("source")
	}
	if c.IsSet("shader") {
		cfg.Shader = c.String("shader")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("frames") {
		cfg.MaxFrames = c.Int("frames")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("fov") {
		cfg.Camera.FOV = float32(c.Float64("fov"))
	}
	if c.IsSet("autopilot") {
		cfg.Camera.Autopilot = c.String("autopilot")
	}
	if c.IsSet("output") {
		cfg.OutputDir = c.String("output")
	}
	if c.Bool("preview") {
		cfg.SaveFrames = false
	}
	if c.IsSet("unbounded") {
		cfg.Unbounded = c.Bool("unbounded")
	}
	if c.IsSet("summary") {
		cfg.Summary = c.String("summary")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	return cfg, cfg.Validate()
}

func newSource(cfg config.Config, log ports.Logger) (ports.FrameSource, error) {
	cam := cfg.Camera.NewCamera()
	switch cfg.Source {
	case config.SourcePattern:
		return patternsource.New(patternsource.Options{Label: true}), nil
	case config.SourceGL:
		return gldriver.Open(gldriver.Options{
			Width:      cfg.Width,
			Height:     cfg.Height,
			ShaderPath: cfg.Shader,
			Camera:     cam,
			Logger:     log,
		})
	default:
		return bulbsource.New(bulbsource.Options{
			Camera:    cam,
			Autopilot: cfg.Camera.AutopilotKeys(),
			Workers:   cfg.Workers,
		}), nil
	}
}

func runRender(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(c, cfg.LogLevel)

	ctx, stop, cleanup := watchSignals(c.Context, log)
	defer cleanup()

	source, err := newSource(cfg, log)
	if err != nil {
		return fmt.Errorf("open %s source: %w", cfg.Source, err)
	}
	defer source.Close()

	fs := osfilesystem.New()
	var sink ports.FrameSink
	if cfg.SaveFrames {
		sink = filesink.New(cfg.OutputDir, fs)
	} else {
		sink = nullsink.New()
	}

	orch := orchestrator.New(
		render.NewStage(source, log),
		save.NewStage(sink, log),
		sink,
		log,
	)

	orchConfig := cfg.ToOrchestratorConfig()
	orchConfig.Stop = stop

	result, runErr := orch.Run(ctx, orchConfig)

	if cfg.Summary != "" {
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(summarizer.WithTranslator(l10n.T)), fs)
		if err := writer.Write(cfg.Summary, buildSummary(cfg, result)); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary written to %s", cfg.Summary)
		}
	}

	return runErr
}

func buildSummary(cfg config.Config, result orchestrator.RunResult) *summarizer.Summary {
	failed := make([]summarizer.FailedFrame, 0, len(result.Save.Failed))
	for _, f := range result.Save.Failed {
		failed = append(failed, summarizer.FailedFrame{Index: f.Index, Path: f.Path, Error: f.Err.Error()})
	}

	return summarizer.NewBuilder().
		WithRender(summarizer.RenderInfo{
			Source:      cfg.Source,
			Width:       cfg.Width,
			Height:      cfg.Height,
			MaxFrames:   cfg.MaxFrames,
			Frames:      result.Render.Frames,
			Captured:    result.Render.Captured,
			Interrupted: result.Render.Interrupted,
			Elapsed:     result.Render.Elapsed,
		}).
		WithCamera(summarizer.CameraInfo{
			Position:  cfg.Camera.Position,
			Yaw:       cfg.Camera.Yaw,
			Pitch:     cfg.Camera.Pitch,
			FOV:       cfg.Camera.FOV,
			Speed:     cfg.Camera.Speed,
			Autopilot: cfg.Camera.Autopilot,
		}).
		WithOutput(summarizer.OutputInfo{
			Enabled: result.Capturing,
			Dir:     cfg.OutputDir,
			Saved:   result.Save.Saved,
			Failed:  failed,
			Elapsed: result.Save.Elapsed,
		}).
		WithTotal(result.Elapsed).
		Build()
}
