package renderer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// defaultExtension is used for the timestamped snapshot when OutputPath has
// no extension of its own
const defaultExtension = ".bmp"

// SnapshotName builds the base name of the timestamped final image:
// date, elapsed milliseconds, passes completed of budget and the dispersion
// statistics.
func SnapshotName(finishedAt time.Time, result *Result) string {
	return fmt.Sprintf("%d-%d-%d-%d-%d-%d  %d   %d of %d  max_disp %f  min_disp %f  aver_disp %f",
		finishedAt.Year(), int(finishedAt.Month()), finishedAt.Day(),
		finishedAt.Hour(), finishedAt.Minute(), finishedAt.Second(),
		result.Elapsed.Milliseconds(),
		result.PassesCompleted, result.PassBudget,
		result.Stats.MaxDispersion, result.Stats.MinDispersion, result.Stats.MeanDispersion)
}

// WriteSnapshots saves the final grid twice: once under the timestamped name
// in OutputDir and once at OutputPath. It returns the paths written.
func WriteSnapshots(config RunConfig, result *Result, newImage core.ImageFactory, finishedAt time.Time) ([]string, error) {
	img := newImage(config.Width, config.Height)
	result.Image.WriteTo(img)

	ext := filepath.Ext(config.OutputPath)
	if ext == "" {
		ext = defaultExtension
	}
	paths := []string{
		filepath.Join(config.OutputDir, SnapshotName(finishedAt, result)+ext),
		config.OutputPath,
	}

	var written []string
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := img.Save(path); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
