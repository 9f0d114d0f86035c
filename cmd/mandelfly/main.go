// Package main provides the CLI entry point for mandelfly.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/mandelfly/pkg/adapters/logger"
	"github.com/user/mandelfly/pkg/ports"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "mandelfly",
		Usage:   l10n.T("Fly through a Mandelbulb and capture the frames as bitmaps"),
		Version: version,
		Commands: []*cli.Command{
			renderCommand(),
			convertCommand(),
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Println(l10n.F("mandelfly version %s", version))
					return nil
				},
			},
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "log-level",
			Aliases:  []string{"l"},
			Usage:    l10n.T("Log level (debug, info, warn, error)"),
			Category: l10n.T("Logging"),
		},
		&cli.BoolFlag{
			Name:     "quiet",
			Aliases:  []string{"Q"},
			Usage:    l10n.T("Suppress all log output"),
			Category: l10n.T("Logging"),
		},
	}
}

func newLogger(c *cli.Context, level string) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	if c.IsSet("log-level") {
		level = c.String("log-level")
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}

// watchSignals turns the first SIGINT/SIGTERM into a graceful stop (the
// returned channel closes) and the second into cancellation of ctx.
func watchSignals(parent context.Context, log ports.Logger) (context.Context, <-chan struct{}, func()) {
	ctx, cancel := context.WithCancel(parent)
	stop := make(chan struct{})
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
			return
		}
		log.Warn("Interrupted, saving captured frames (interrupt again to abort)")
		close(stop)

		select {
		case <-sigCh:
		case <-ctx.Done():
			return
		}
		log.Warn("Interrupted, shutting down...")
		cancel()
	}()

	return ctx, stop, func() {
		signal.Stop(sigCh)
		cancel()
	}
}
