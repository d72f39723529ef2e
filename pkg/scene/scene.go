// Package scene provides a sphere scene loaded from YAML that advances camera
// rays one bounce per TraceStep call.
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
)

// ErrNotLoaded is returned by TraceStep before a model was loaded
var ErrNotLoaded = errors.New("scene model not loaded")

// tMin skips self-intersections at the previous hit point
const tMin = 0.001

//go:embed default.yaml
var defaultModel []byte

// world is the immutable geometry of a loaded model
type world struct {
	top, bottom core.Vec3
	maxBounces  int
	spheres     []*Sphere
}

// Scene is a list of spheres with a gradient background. It is safe for
// concurrent TraceStep calls once loaded.
type Scene struct {
	mu    sync.RWMutex
	world *world
}

// New creates an empty scene. LoadModel must be called before tracing.
func New() *Scene {
	return &Scene{}
}

// LoadModel reads a YAML model from path. An empty path loads the built-in
// default model.
func (s *Scene) LoadModel(path string) error {
	data := defaultModel
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read model: %w", err)
		}
	}
	return s.Load(data)
}

// Load replaces the scene contents with a model given as YAML bytes
func (s *Scene) Load(data []byte) error {
	model, err := parseModel(data)
	if err != nil {
		return err
	}
	w, err := model.build()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.world = w
	s.mu.Unlock()
	return nil
}

// SphereCount returns the number of spheres in the loaded model
func (s *Scene) SphereCount() int {
	w := s.current()
	if w == nil {
		return 0
	}
	return len(w.spheres)
}

func (s *Scene) current() *world {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.world
}

// TraceStep advances the ray by one bounce. A miss picks up the background,
// an emitter adds its emission, and both terminate the ray. Otherwise the
// material scatters the ray and its throughput is attenuated.
func (s *Scene) TraceStep(ray core.Ray, sampler core.Sampler) (core.Ray, error) {
	if !ray.IsActive() {
		return ray, nil
	}
	w := s.current()
	if w == nil {
		return ray, ErrNotLoaded
	}
	if ray.Direction.IsZero() || !finite(ray.Direction) {
		return ray, fmt.Errorf("degenerate ray direction %v at pixel (%d,%d)", ray.Direction, ray.Pixel.X, ray.Pixel.Y)
	}

	hit, ok := w.closestHit(ray)
	if !ok {
		ray.Color = ray.Color.Add(ray.Throughput.MultiplyVec(w.background(ray.Direction)))
		ray.Terminate()
		return ray, nil
	}

	if emitter, isEmitter := hit.Material.(material.Emitter); isEmitter {
		ray.Color = ray.Color.Add(ray.Throughput.MultiplyVec(emitter.Emit()))
	}
	if ray.Bounces >= w.maxBounces {
		ray.Terminate()
		return ray, nil
	}

	scatter, scattered := hit.Material.Scatter(ray.Direction, hit, sampler)
	if !scattered {
		ray.Terminate()
		return ray, nil
	}

	ray.Throughput = ray.Throughput.MultiplyVec(scatter.Attenuation)
	ray.Origin = hit.Point
	ray.Direction = scatter.Direction
	ray.Bounces++
	return ray, nil
}

// closestHit finds the nearest sphere along the ray
func (w *world) closestHit(ray core.Ray) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := math.Inf(1)

	for _, sphere := range w.spheres {
		if hit, ok := sphere.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}
	return closest, hitAnything
}

// background blends bottom to top by the direction's height
func (w *world) background(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Normalize().Y + 1.0) // map Y from [-1,1] to [0,1]
	return w.bottom.Multiply(1.0 - t).Add(w.top.Multiply(t))
}

func finite(v core.Vec3) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
