package renderer

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/log"
)

// testLogger implements log.Logger for testing by discarding all output
type testLogger struct{}

// Ensure testLogger implements log.Logger
var _ log.Logger = (*testLogger)(nil)

func (tl *testLogger) Debug(v ...interface{})                   {}
func (tl *testLogger) Debugf(format string, v ...interface{})   {}
func (tl *testLogger) Notice(v ...interface{})                  {}
func (tl *testLogger) Noticef(format string, v ...interface{})  {}
func (tl *testLogger) Info(v ...interface{})                    {}
func (tl *testLogger) Infof(format string, v ...interface{})    {}
func (tl *testLogger) Warning(v ...interface{})                 {}
func (tl *testLogger) Warningf(format string, v ...interface{}) {}
func (tl *testLogger) Error(v ...interface{})                   {}
func (tl *testLogger) Errorf(format string, v ...interface{})   {}

// MockScene terminates every ray after a fixed number of steps with a fixed
// color and counts the rays traced per pixel
type MockScene struct {
	width      int
	color      core.Vec3
	colorFor   func(x, y int) core.Vec3 // overrides color when set
	steps      int                      // TraceStep calls per ray, 0 means 1
	loadErr    error
	traceErr   error
	loadedPath string

	rays  []atomic.Int64 // rays started per pixel
	calls atomic.Int64   // total TraceStep calls

	onStep func(ray core.Ray) // called on every step when set
}

func newMockScene(width, height int, color core.Vec3) *MockScene {
	return &MockScene{
		width: width,
		color: color,
		rays:  make([]atomic.Int64, width*height),
	}
}

func (m *MockScene) LoadModel(path string) error {
	m.loadedPath = path
	return m.loadErr
}

func (m *MockScene) TraceStep(ray core.Ray, sampler core.Sampler) (core.Ray, error) {
	m.calls.Add(1)
	if m.onStep != nil {
		m.onStep(ray)
	}
	if m.traceErr != nil {
		return ray, m.traceErr
	}
	if ray.Bounces == 0 {
		m.rays[ray.Pixel.Y*m.width+ray.Pixel.X].Add(1)
	}

	ray.Bounces++
	steps := max(1, m.steps)
	if ray.Bounces >= steps {
		if m.colorFor != nil {
			ray.Color = m.colorFor(ray.Pixel.X, ray.Pixel.Y)
		} else {
			ray.Color = m.color
		}
		ray.Terminate()
	}
	return ray, nil
}

func (m *MockScene) raysAt(x, y int) int64 {
	return m.rays[y*m.width+x].Load()
}

// imageRecorder collects every image created by its factory
type imageRecorder struct {
	mu      sync.Mutex
	images  []*MockImage
	saveErr error
	onSave  func(path string) // called at the start of every Save when set
}

func (r *imageRecorder) factory(width, height int) core.Image {
	r.mu.Lock()
	defer r.mu.Unlock()
	img := &MockImage{
		width:    width,
		height:   height,
		pixels:   make(map[core.Pixel]core.RGB),
		recorder: r,
	}
	r.images = append(r.images, img)
	return img
}

func (r *imageRecorder) savedPaths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var paths []string
	for _, img := range r.images {
		paths = append(paths, img.saved...)
	}
	return paths
}

// MockImage keeps pixels in memory and records save paths
type MockImage struct {
	width, height int
	pixels        map[core.Pixel]core.RGB
	saved         []string
	recorder      *imageRecorder
}

func (m *MockImage) SetPixel(x, y, r, g, b int) {
	m.pixels[core.Pixel{X: x, Y: y}] = core.RGB{R: r, G: g, B: b}
}

func (m *MockImage) Save(path string) error {
	if m.recorder.onSave != nil {
		m.recorder.onSave(path)
	}
	if m.recorder.saveErr != nil {
		return m.recorder.saveErr
	}
	m.recorder.mu.Lock()
	m.saved = append(m.saved, path)
	m.recorder.mu.Unlock()
	return nil
}

var errMockTrace = errors.New("mock trace failure")

// testConfig returns a small deterministic configuration
func testConfig(width, height, spp int) RunConfig {
	cfg := DefaultRunConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.SamplesPerPixel = spp
	cfg.TileSize = 2
	cfg.Workers = 3
	cfg.Gamma = 0.5
	cfg.OutputDir = "out"
	cfg.OutputPath = "result.bmp"
	return cfg
}
