package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/log"
)

// Render loads the scene model, runs the sampling loop and writes the final
// snapshots. Configuration and scene errors abort before any sampling.
func Render(ctx context.Context, config RunConfig, scene core.Scene, newImage core.ImageFactory, logger log.Logger) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger.Infof("loading model %q", config.ModelPath)
	if err := scene.LoadModel(config.ModelPath); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSceneLoad, err)
	}

	scheduler, err := NewScheduler(config, scene, newImage, logger)
	if err != nil {
		return nil, err
	}

	result, err := scheduler.Run(ctx)
	if err != nil {
		return nil, err
	}

	logger.Noticef("%d of %d passes in %v (%s)", result.PassesCompleted, result.PassBudget,
		result.Elapsed, result.Stopped)

	result.Outputs, err = WriteSnapshots(config, result, newImage, time.Now())
	if err != nil {
		return result, err
	}
	return result, nil
}
