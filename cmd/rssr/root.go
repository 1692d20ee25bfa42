package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/sonnes/rssr/config"
	"github.com/sonnes/rssr/limit"
	"github.com/sonnes/rssr/render"
	"github.com/urfave/cli/v3"
)

func rootCmd(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "rssr",
		Usage:     "Read RSS and Atom feeds as plain text, JSON or styled terminal cards",
		ArgsUsage: "SOURCE...",
		Version:   version,
		Writer:    stdout,
		Description: `Each SOURCE is a feed URL or a local file. With no SOURCE arguments the
sources listed in the --config file are read.

JSON output is written once, after every feed has been read, as a single
array with one object per feed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "Output format: text, json, terminal",
				Value:   string(render.FormatText),
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print result as JSON (same as --format=json)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of entries per feed (0 for all)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "HTTP timeout per feed",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Print debug logs (same as --log=debug)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			level, err := log.ParseLevel(cfg.Log)
			if err != nil {
				return err
			}
			log.SetLevel(level)

			sources := cmd.Args().Slice()
			if len(sources) == 0 {
				sources = cfg.Sources
			}
			if len(sources) == 0 {
				return fmt.Errorf("at least one SOURCE is required")
			}

			a := newApp(cfg)

			rnd, err := a.renderer(render.Format(cfg.Format), stdout)
			if err != nil {
				return err
			}

			return renderSources(ctx, a.reader(), rnd, sources, limit.New(cfg.Limit))
		},
	}
}

// resolveConfig loads the --config file and applies flags that were set
// explicitly on top of it.
func resolveConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("format") {
		cfg.Format = cmd.String("format")
	}
	if cmd.Bool("json") {
		cfg.Format = string(render.FormatJSON)
	}
	if cmd.IsSet("limit") {
		cfg.Limit = int(cmd.Int("limit"))
	}
	if cmd.IsSet("timeout") {
		cfg.Timeout = cmd.Duration("timeout")
	}
	if cmd.IsSet("log") {
		cfg.Log = cmd.String("log")
	}
	if cmd.Bool("verbose") {
		cfg.Log = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
