package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/df07/go-adaptive-raytracer/pkg/output"
	"github.com/df07/go-adaptive-raytracer/pkg/renderer"
	"github.com/df07/go-adaptive-raytracer/pkg/scene"
)

// RenderFlags are the options of the render command. Values only override
// the configuration file when given explicitly.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "YAML run configuration; flags override its values",
	},
	cli.IntFlag{
		Name:  "width",
		Value: 512,
		Usage: "image width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 512,
		Usage: "image height",
	},
	cli.IntFlag{
		Name:  "spp",
		Value: 64,
		Usage: "maximum samples per pixel (number of passes)",
	},
	cli.IntFlag{
		Name:  "time-limit",
		Usage: "stop after this many seconds, checked between passes (0 = no limit)",
	},
	cli.IntFlag{
		Name:  "checkpoint",
		Usage: "write a preview every N passes (0 = disabled)",
	},
	cli.Float64Flag{
		Name:  "gamma",
		Value: 1.0 / 2.2,
		Usage: "tone-mapping exponent",
	},
	cli.Float64Flag{
		Name:  "error",
		Value: 0.001,
		Usage: "per-channel variance below which a pixel counts as converged",
	},
	cli.Float64Flag{
		Name:  "blur",
		Usage: "gaussian blur radius in pixels (0 = disabled)",
	},
	cli.IntFlag{
		Name:  "median",
		Usage: "median filter half window (0 = disabled)",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 42,
		Usage: "base seed for the per-tile jitter generators",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "number of worker goroutines (0 = one per CPU)",
	},
	cli.IntFlag{
		Name:  "tile",
		Value: 32,
		Usage: "tile edge length in pixels",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "result.bmp",
		Usage: "final image filename (.bmp or .png)",
	},
	cli.StringFlag{
		Name:  "out-dir",
		Value: ".",
		Usage: "directory for the timestamped copy of the final image",
	},
	cli.StringFlag{
		Name:  "checkpoint-out",
		Value: "result.bmp",
		Usage: "preview image filename",
	},
}

// Render a scene until the sample budget or time limit is used up.
func Render(ctx *cli.Context) error {
	setupLogging(ctx)

	config, err := runConfig(ctx)
	if err != nil {
		return err
	}

	runID := uuid.New()
	logger.Noticef("run %s: %dx%d, up to %d passes, %d workers", runID, config.Width, config.Height,
		config.SamplesPerPixel, config.Workers)

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := renderer.Render(renderCtx, config, scene.New(), output.New, logger)
	if err != nil {
		return err
	}

	displayRunStats(runID, result)
	return nil
}

// runConfig layers explicitly set flags over the config file, or over the
// defaults when no file is given.
func runConfig(ctx *cli.Context) (renderer.RunConfig, error) {
	config := renderer.DefaultRunConfig()
	if path := ctx.String("config"); path != "" {
		var err error
		if config, err = renderer.LoadConfig(path); err != nil {
			return config, err
		}
	}

	switch ctx.NArg() {
	case 0:
	case 1:
		config.ModelPath = ctx.Args().First()
	default:
		return config, errors.New("expected at most one scene file argument")
	}

	if ctx.IsSet("width") {
		config.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		config.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("time-limit") {
		config.TimeLimit = ctx.Int("time-limit")
	}
	if ctx.IsSet("checkpoint") {
		config.CheckpointInterval = ctx.Int("checkpoint")
	}
	if ctx.IsSet("gamma") {
		config.Gamma = ctx.Float64("gamma")
	}
	if ctx.IsSet("error") {
		config.ErrorThreshold = ctx.Float64("error")
	}
	if ctx.IsSet("blur") {
		config.BlurRadius = ctx.Float64("blur")
	}
	if ctx.IsSet("median") {
		config.MedianWindow = ctx.Int("median")
	}
	if ctx.IsSet("seed") {
		config.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("workers") {
		config.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("tile") {
		config.TileSize = ctx.Int("tile")
	}
	if ctx.IsSet("out") {
		config.OutputPath = ctx.String("out")
	}
	if ctx.IsSet("out-dir") {
		config.OutputDir = ctx.String("out-dir")
	}
	if ctx.IsSet("checkpoint-out") {
		config.CheckpointPath = ctx.String("checkpoint-out")
	}

	return config, config.Validate()
}
