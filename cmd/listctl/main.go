package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/liuzl/linkedlist/internal/config"
	"github.com/liuzl/linkedlist/internal/log"
	"github.com/liuzl/linkedlist/internal/match"
	"github.com/liuzl/linkedlist/internal/script"
)

var version = "dev"

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		logrus.WithError(err).Fatal("read config")
	}

	if err = newApp(cfg).Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp(cfg *config.Config) *cli.App {
	return &cli.App{
		Name:      "listctl",
		Usage:     "Replay list operations against a basic or sorted linked list",
		UsageText: "listctl [global options] basic|sorted TOKEN...",
		Version:   version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "order", Value: cfg.Order, Usage: "element order for sorted lists and remove: lexical or numeric"},
			&cli.BoolFlag{Name: "ignore-case", Value: cfg.IgnoreCase, Usage: "compare and match case-insensitively"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: cfg.Format, Usage: "output format: json or text"},
			&cli.StringFlag{Name: "log-level", Value: cfg.LogLevel.String(), Usage: "logrus level"},
		},
		Commands: []*cli.Command{
			{
				Name:      string(script.ModeBasic),
				Usage:     "unordered list: end:X front:X remove:X match:GLOB first last pop-first pop-last size",
				ArgsUsage: "TOKEN...",
				Action:    func(ctx *cli.Context) error { return run(ctx, cfg, script.ModeBasic) },
			},
			{
				Name:      string(script.ModeSorted),
				Usage:     "sorted list: add:X remove:X first last pop-first pop-last size",
				ArgsUsage: "TOKEN...",
				Action:    func(ctx *cli.Context) error { return run(ctx, cfg, script.ModeSorted) },
			},
		},
	}
}

func run(ctx *cli.Context, base *config.Config, mode script.Mode) error {
	cfg := *base
	cfg.Order = ctx.String("order")
	cfg.IgnoreCase = ctx.Bool("ignore-case")
	cfg.Format = ctx.String("format")

	level, err := logrus.ParseLevel(ctx.String("log-level"))
	if err != nil {
		return err
	}
	cfg.LogLevel = level

	logger := log.NewLogger(log.NewLogrus(ctx.App.ErrWriter, cfg.LogLevel, cfg.LogToEcs)).
		WithField(log.PkgKey, "listctl").
		WithField("mode", mode)

	if err = cfg.Validate(); err != nil {
		logger.WithError(err).Error("invalid options")
		return err
	}

	ops, err := script.Parse(mode, ctx.Args().Slice())
	if err != nil {
		logger.WithError(err).Error("parse tokens")
		return err
	}

	runner := script.NewRunner(match.ForOrder(cfg.Order, cfg.IgnoreCase), cfg.IgnoreCase, logger)
	report, err := runner.Run(mode, ops)
	if err != nil {
		logger.WithError(err).Error("run failed")
		return err
	}

	logger.WithField("size", report.Size).Debug("done")

	return report.Encode(ctx.App.Writer, cfg.Format)
}
