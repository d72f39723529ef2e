package renderer

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRunConfigIsValid(t *testing.T) {
	if err := DefaultRunConfig().Validate(); err != nil {
		t.Errorf("Default configuration should validate, got %v", err)
	}
}

func TestRunConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RunConfig)
	}{
		{"Zero width", func(c *RunConfig) { c.Width = 0 }},
		{"Negative height", func(c *RunConfig) { c.Height = -3 }},
		{"No samples", func(c *RunConfig) { c.SamplesPerPixel = 0 }},
		{"Negative time limit", func(c *RunConfig) { c.TimeLimit = -1 }},
		{"Negative checkpoint interval", func(c *RunConfig) { c.CheckpointInterval = -2 }},
		{"Zero gamma", func(c *RunConfig) { c.Gamma = 0 }},
		{"Negative error threshold", func(c *RunConfig) { c.ErrorThreshold = -0.1 }},
		{"Negative blur radius", func(c *RunConfig) { c.BlurRadius = -1 }},
		{"Infinite blur radius", func(c *RunConfig) { c.BlurRadius = math.Inf(1) }},
		{"NaN blur radius", func(c *RunConfig) { c.BlurRadius = math.NaN() }},
		{"Underflowing blur radius", func(c *RunConfig) { c.BlurRadius = 1e-200 }},
		{"Huge blur radius", func(c *RunConfig) { c.BlurRadius = 1e6 }},
		{"Infinite gamma", func(c *RunConfig) { c.Gamma = math.Inf(1) }},
		{"NaN gamma", func(c *RunConfig) { c.Gamma = math.NaN() }},
		{"Infinite error threshold", func(c *RunConfig) { c.ErrorThreshold = math.Inf(1) }},
		{"NaN error threshold", func(c *RunConfig) { c.ErrorThreshold = math.NaN() }},
		{"Negative median window", func(c *RunConfig) { c.MedianWindow = -1 }},
		{"Negative workers", func(c *RunConfig) { c.Workers = -1 }},
		{"Zero tile size", func(c *RunConfig) { c.TileSize = 0 }},
		{"Checkpoints without path", func(c *RunConfig) {
			c.CheckpointInterval = 5
			c.CheckpointPath = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := `
width: 320
height: 200
samples_per_pixel: 128
time_limit_s: 60
checkpoint_interval: 8
gamma: 0.5
error_threshold: 0.0005
blur_radius: 1.5
median_window: 1
seed: 7
model_path: scenes/glass.yaml
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DefaultRunConfig()
	want.Width = 320
	want.Height = 200
	want.SamplesPerPixel = 128
	want.TimeLimit = 60
	want.CheckpointInterval = 8
	want.Gamma = 0.5
	want.ErrorThreshold = 0.0005
	want.BlurRadius = 1.5
	want.MedianWindow = 1
	want.Seed = 7
	want.ModelPath = "scenes/glass.yaml"

	if cfg != want {
		t.Errorf("Expected %+v, got %+v", want, cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	malformed := filepath.Join(dir, "bad.yaml")
	os.WriteFile(malformed, []byte("width: [1, 2"), 0o644)
	if _, err := LoadConfig(malformed); err == nil {
		t.Error("Expected error for malformed YAML")
	}

}

func TestLoadConfigLeavesValidationToCaller(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	os.WriteFile(path, []byte("width: 0\n"), 0o644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should not validate, got %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig from Validate, got %v", err)
	}

	cfg.Width = 8
	if err := cfg.Validate(); err != nil {
		t.Errorf("Override should make the configuration valid, got %v", err)
	}
}

func TestRunConfigAcceptsBlurBounds(t *testing.T) {
	for _, r := range []float64{0, MinBlurRadius, 1.5, MaxBlurRadius} {
		cfg := DefaultRunConfig()
		cfg.BlurRadius = r
		if err := cfg.Validate(); err != nil {
			t.Errorf("blur radius %g: unexpected error %v", r, err)
		}
	}
}
