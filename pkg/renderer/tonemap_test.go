package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

func TestToneMapperImage(t *testing.T) {
	tests := []struct {
		name  string
		gamma float64
		mean  core.Vec3
		want  core.RGB
	}{
		{"White", 0.5, core.NewVec3(1, 1, 1), core.RGB{R: 255, G: 255, B: 255}},
		{"Linear gamma", 1, core.NewVec3(0.5, 0.25, 0), core.RGB{R: 128, G: 64, B: 0}},
		{"Square root gamma", 0.5, core.NewVec3(0.25, 0.04, 0.01), core.RGB{R: 128, G: 51, B: 26}},
		{"Over range clamps", 1, core.NewVec3(2, 1.5, 10), core.RGB{R: 255, G: 255, B: 255}},
		{"Negative clamps", 1, core.NewVec3(-0.5, 0, 0.1), core.RGB{R: 0, G: 0, B: 26}},
		{"Negative under fractional gamma", 0.5, core.NewVec3(-0.25, 0.25, 0), core.RGB{R: 0, G: 128, B: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewToneMapper(1, 1, tt.gamma)
			// Two samples with the requested mean
			accs := []PixelAccumulator{*accumulatorOf(tt.mean, tt.mean)}

			grid := tm.Image(accs)
			if !grid.IsSet(0, 0) {
				t.Fatal("Sampled pixel should be set")
			}
			if got := grid.At(0, 0); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestToneMapperLeavesUnsampledPixelsUnset(t *testing.T) {
	tm := NewToneMapper(2, 1, 1)
	accs := []PixelAccumulator{
		*accumulatorOf(core.NewVec3(1, 0, 0)),
		{},
	}

	grid := tm.Image(accs)
	if !grid.IsSet(0, 0) || grid.IsSet(1, 0) {
		t.Errorf("Expected only pixel 0 set, got set=(%v,%v)", grid.IsSet(0, 0), grid.IsSet(1, 0))
	}
}

func TestToneMapperStatistics(t *testing.T) {
	tm := NewToneMapper(2, 2, 1)
	accs := []PixelAccumulator{
		*accumulatorOf(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0)), // dispersion 1
		*accumulatorOf(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)), // dispersion 0.75
		*accumulatorOf(core.NewVec3(3, 3, 3)),                        // dispersion 0
		{},                                                           // penalty 1
	}

	stats := tm.Statistics(accs)

	if math.Abs(stats.MaxDispersion-1) > 1e-12 {
		t.Errorf("Expected max 1, got %f", stats.MaxDispersion)
	}
	if stats.MinDispersion != 0 {
		t.Errorf("Expected min 0, got %f", stats.MinDispersion)
	}
	if want := (1 + 0.75 + 0 + 1) / 4.0; math.Abs(stats.MeanDispersion-want) > 1e-12 {
		t.Errorf("Expected mean %f, got %f", want, stats.MeanDispersion)
	}
	if stats.SampledPixels != 3 || stats.TotalPixels != 4 || stats.TotalSamples != 5 {
		t.Errorf("Unexpected counts %+v", stats)
	}
}

func TestToneMapperStatisticsWithoutSamples(t *testing.T) {
	tm := NewToneMapper(3, 1, 1)
	stats := tm.Statistics(make([]PixelAccumulator, 3))

	if stats.MaxDispersion != 0 || stats.MinDispersion != 0 {
		t.Errorf("Expected zero max/min without samples, got %+v", stats)
	}
	if stats.MeanDispersion != 1 {
		t.Errorf("Expected mean penalty 1, got %f", stats.MeanDispersion)
	}
}
