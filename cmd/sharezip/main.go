package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/reminderapp/sharezip/pkg/pack"
)

const (
	appVersion  = "0.1.0"
	archiveName = "reminderApp - share.zip"
	srcDir      = "src"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "sharezip",
		Usage:     "zip the project in the current directory for sharing",
		ArgsUsage: " ",
		Before: func(c *cli.Context) error {
			configureLogging(c.Bool("verbose"))
			return nil
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose output",
			},
		},
		Action: archiveAction,
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print version",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, appVersion)
					return nil
				},
			},
		},
	}
}

func archiveAction(c *cli.Context) error {
	if c.NArg() != 0 {
		return fmt.Errorf("usage: sharezip (takes no arguments)")
	}
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working dir: %w", err)
	}

	res, err := pack.Archive(root, srcDir, archiveName)
	if err != nil {
		return err
	}
	slog.Debug("done",
		"files", res.Count,
		"size", humanBytes(res.Size),
	)

	fmt.Fprintf(c.App.Writer,
		"Zip file '%s' created successfully!\n", archiveName,
	)
	return nil
}

func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}),
	))
}

func humanBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf(
			"%.1f MB", float64(n)/(1<<20),
		)
	case n >= 1<<10:
		return fmt.Sprintf(
			"%.1f KB", float64(n)/(1<<10),
		)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
