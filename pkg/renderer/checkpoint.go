package renderer

import (
	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/log"
)

// checkpointWriter saves preview grids between passes. Failed saves are
// logged and counted but never stop the run. A nil writer ignores every call.
type checkpointWriter struct {
	path     string
	newImage core.ImageFactory
	logger   log.Logger

	written int
	failed  int
}

func newCheckpointWriter(path string, newImage core.ImageFactory, logger log.Logger) *checkpointWriter {
	return &checkpointWriter{
		path:     path,
		newImage: newImage,
		logger:   logger,
	}
}

// Write hands the preview grid to a new image and saves it. It returns once
// the save has finished.
func (cw *checkpointWriter) Write(pass int, grid *core.ImageGrid) {
	if cw == nil {
		return
	}

	img := cw.newImage(grid.Width, grid.Height)
	grid.WriteTo(img)
	if err := img.Save(cw.path); err != nil {
		cw.failed++
		cw.logger.Warningf("checkpoint for pass %d could not be saved to %s: %v", pass, cw.path, err)
		return
	}
	cw.written++
	cw.logger.Noticef("image update (pass %d, %s)", pass, cw.path)
}

// counts returns written and failed checkpoints
func (cw *checkpointWriter) counts() (written, failed int) {
	if cw == nil {
		return 0, 0
	}
	return cw.written, cw.failed
}
