package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-adaptive-raytracer/cmd"
	"github.com/df07/go-adaptive-raytracer/pkg/log"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "adaptive-raytracer"
	app.Usage = "render scenes with adaptive progressive path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene",
			Description: `
Render a YAML sphere scene in progressive passes. Each pass sends one more ray
through every pixel that has not converged yet. The run stops when the sample
budget is spent, the time limit passes or the process is interrupted; the
image is then tone mapped, filtered and written twice: to --out and to a
timestamped file in --out-dir.

Without a scene argument the built-in scene is rendered.`,
			ArgsUsage: "[scene.yaml]",
			Flags:     cmd.RenderFlags,
			Action:    cmd.Render,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("adaptive-raytracer").Errorf("%v", err)
		log.Flush()
		os.Exit(1)
	}
	log.Flush()
}
