package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/mandelfly/pkg/adapters/imagecodec"
	"github.com/user/mandelfly/pkg/adapters/osfilesystem"
	"github.com/user/mandelfly/pkg/pipeline"
	"github.com/user/mandelfly/pkg/stages/convert"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:        "convert",
		Usage:       l10n.T("Convert saved bitmaps to another image format"),
		ArgsUsage:   "<frames-dir>",
		Description: l10n.T("Re-encode every frame_<n>.bmp in a directory as png, webp or tga."),
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "format",
				Aliases:  []string{"f"},
				Value:    "png",
				Usage:    l10n.T("Target format (png, webp, tga)"),
				Category: l10n.T("Output"),
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    l10n.T("Output directory (default: the input directory)"),
				Category: l10n.T("Output"),
			},
			&cli.IntFlag{
				Name:     "workers",
				Aliases:  []string{"j"},
				Usage:    l10n.T("Frames converted in parallel (0 = all CPUs)"),
				Category: l10n.T("Output"),
			},
		}, loggingFlags()...),
		Action: runConvert,
	}
}

func runConvert(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("A frames directory argument is required"), 2)
	}
	encoder, err := imagecodec.ForFormat(c.String("format"))
	if err != nil {
		return err
	}
	log := newLogger(c, "info")

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stage := convert.NewStage(osfilesystem.New(), encoder, log)
	result, err := stage.Execute(ctx, pipeline.ConvertInput{
		InputDir:  c.Args().First(),
		OutputDir: c.String("output"),
		Workers:   c.Int("workers"),
	})
	if err != nil {
		return err
	}
	if n := len(result.Failed); n > 0 {
		return fmt.Errorf("%d of %d frames failed to convert", n, n+len(result.Frames))
	}
	return nil
}
