package renderer

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is the immutable description of one render. It is built once at
// startup and passed by value to every component.
type RunConfig struct {
	Width              int     `yaml:"width"`
	Height             int     `yaml:"height"`
	SamplesPerPixel    int     `yaml:"samples_per_pixel"`   // pass budget
	TimeLimit          int     `yaml:"time_limit_s"`        // seconds, 0 = unlimited
	CheckpointInterval int     `yaml:"checkpoint_interval"` // passes between previews, 0 = disabled
	Gamma              float64 `yaml:"gamma"`
	ErrorThreshold     float64 `yaml:"error_threshold"` // per-channel variance below which a pixel may be skipped
	BlurRadius         float64 `yaml:"blur_radius"`     // 0 = disabled
	MedianWindow       int     `yaml:"median_window"`   // half-window, 0 = disabled
	Seed               int64   `yaml:"seed"`

	Workers        int    `yaml:"workers"`   // 0 = use CPU count
	TileSize       int    `yaml:"tile_size"` // edge of the square pixel blocks handed to workers
	ModelPath      string `yaml:"model_path"`
	CheckpointPath string `yaml:"checkpoint_path"`
	OutputPath     string `yaml:"output_path"`
	OutputDir      string `yaml:"output_dir"` // directory for the timestamped snapshot
}

// DefaultRunConfig returns sensible default values
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Width:              512,
		Height:             512,
		SamplesPerPixel:    64,
		TimeLimit:          0,
		CheckpointInterval: 0,
		Gamma:              1.0 / 2.2,
		ErrorThreshold:     0.001,
		BlurRadius:         0,
		MedianWindow:       0,
		Seed:               42,
		Workers:            0,
		TileSize:           32,
		CheckpointPath:     "result.bmp",
		OutputPath:         "result.bmp",
		OutputDir:          ".",
	}
}

// LoadConfig reads a YAML file on top of DefaultRunConfig. The result is not
// validated, so callers can layer further overrides before calling Validate.
func LoadConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Blur radii outside this range either underflow 2r² or build kernels
// larger than any image worth rendering.
const (
	MinBlurRadius = 0.01
	MaxBlurRadius = 256.0
)

// Validate checks dimensions and parameter ranges
func (c RunConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples_per_pixel must be > 0, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.TimeLimit < 0:
		return fmt.Errorf("%w: time_limit_s must be >= 0, got %d", ErrInvalidConfig, c.TimeLimit)
	case c.CheckpointInterval < 0:
		return fmt.Errorf("%w: checkpoint_interval must be >= 0, got %d", ErrInvalidConfig, c.CheckpointInterval)
	case !(c.Gamma > 0) || math.IsInf(c.Gamma, 1):
		return fmt.Errorf("%w: gamma must be finite and > 0, got %g", ErrInvalidConfig, c.Gamma)
	case !(c.ErrorThreshold >= 0) || math.IsInf(c.ErrorThreshold, 1):
		return fmt.Errorf("%w: error_threshold must be finite and >= 0, got %g", ErrInvalidConfig, c.ErrorThreshold)
	case c.BlurRadius != 0 && !(c.BlurRadius >= MinBlurRadius && c.BlurRadius <= MaxBlurRadius):
		return fmt.Errorf("%w: blur_radius must be 0 or within [%g, %g], got %g",
			ErrInvalidConfig, MinBlurRadius, MaxBlurRadius, c.BlurRadius)
	case c.MedianWindow < 0:
		return fmt.Errorf("%w: median_window must be >= 0, got %d", ErrInvalidConfig, c.MedianWindow)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be > 0, got %d", ErrInvalidConfig, c.TileSize)
	case c.CheckpointInterval > 0 && c.CheckpointPath == "":
		return fmt.Errorf("%w: checkpoint_path is required when checkpoints are enabled", ErrInvalidConfig)
	}
	return nil
}
