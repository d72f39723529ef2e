package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-adaptive-raytracer/pkg/log"
)

var logger = log.New("adaptive-raytracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
