package renderer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

func TestRenderEndToEnd(t *testing.T) {
	cfg := testConfig(4, 4, 3)
	cfg.ModelPath = "scene.yaml"
	cfg.BlurRadius = 1
	cfg.MedianWindow = 1
	scene := newMockScene(4, 4, core.NewVec3(0.25, 0.25, 0.25))
	recorder := &imageRecorder{}

	result, err := Render(context.Background(), cfg, scene, recorder.factory, &testLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if scene.loadedPath != "scene.yaml" {
		t.Errorf("Expected model path to be loaded, got %q", scene.loadedPath)
	}
	if result.PassesCompleted != 3 {
		t.Errorf("Expected 3 passes, got %d", result.PassesCompleted)
	}
	if len(result.Outputs) != 2 {
		t.Errorf("Expected two final images, got %q", result.Outputs)
	}

	// Uniform field survives both filters: sqrt(0.25)*255 = 127.5
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := result.Image.At(x, y); got != (core.RGB{R: 128, G: 128, B: 128}) {
				t.Fatalf("pixel (%d,%d): expected 128 gray, got %v", x, y, got)
			}
		}
	}
}

func TestRenderSceneLoadErrorIsFatal(t *testing.T) {
	cfg := testConfig(2, 2, 3)
	scene := newMockScene(2, 2, core.Vec3{})
	scene.loadErr = fmt.Errorf("failed to read model: %w", fs.ErrNotExist)

	_, err := Render(context.Background(), cfg, scene, (&imageRecorder{}).factory, &testLogger{})
	if !errors.Is(err, ErrSceneLoad) {
		t.Fatalf("Expected ErrSceneLoad, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected the load cause to stay in the error chain, got %v", err)
	}
	if scene.calls.Load() != 0 {
		t.Error("No sampling should happen after a failed load")
	}
}

func TestRenderInvalidConfigIsFatal(t *testing.T) {
	cfg := testConfig(2, 2, 3)
	cfg.Gamma = -1
	scene := newMockScene(2, 2, core.Vec3{})

	_, err := Render(context.Background(), cfg, scene, (&imageRecorder{}).factory, &testLogger{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}
	if scene.loadedPath != "" {
		t.Error("Model should not be loaded with an invalid configuration")
	}
}
