package renderer

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// unsampledDispersion is charged to the mean dispersion for every pixel that
// never received a sample, so incomplete coverage shows in the statistic.
const unsampledDispersion = 1.0

// ToneMapper turns accumulated sums into displayable colors and summarises
// how well the image converged.
type ToneMapper struct {
	width, height int
	gamma         float64
}

// NewToneMapper creates a tone mapper for a width x height accumulator slice
func NewToneMapper(width, height int, gamma float64) ToneMapper {
	return ToneMapper{width: width, height: height, gamma: gamma}
}

// Image maps every sampled pixel to round(clamp(mean^gamma * 255, 0, 255)).
// Pixels without samples are left unset.
func (tm ToneMapper) Image(accs []PixelAccumulator) *core.ImageGrid {
	grid := core.NewImageGrid(tm.width, tm.height)
	for y := 0; y < tm.height; y++ {
		for x := 0; x < tm.width; x++ {
			acc := &accs[y*tm.width+x]
			if acc.Count == 0 {
				continue
			}
			grid.Set(x, y, tm.toRGB(acc.Mean()))
		}
	}
	return grid
}

// toRGB gamma corrects a linear color and quantizes it to 8 bits
func (tm ToneMapper) toRGB(c core.Vec3) core.RGB {
	// NaN from negative bases with fractional gamma clamps to 0
	v := c.Pow(tm.gamma).Multiply(255)
	return core.RGB{
		R: quantize(v.X),
		G: quantize(v.Y),
		B: quantize(v.Z),
	}
}

func quantize(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(max(0, min(255, v))))
}

// Statistics computes max, min and mean dispersion. Max and min consider
// sampled pixels only; the mean runs over every pixel with unsampled ones
// contributing unsampledDispersion. Without any sampled pixel max and min
// are 0.
func (tm ToneMapper) Statistics(accs []PixelAccumulator) RunStats {
	stats := RunStats{
		MinDispersion: math.Inf(1),
		TotalPixels:   len(accs),
	}

	dispersions := make([]float64, len(accs))
	for i := range accs {
		acc := &accs[i]
		stats.TotalSamples += acc.Count
		if acc.Count == 0 {
			dispersions[i] = unsampledDispersion
			continue
		}

		d := acc.Dispersion()
		dispersions[i] = d
		stats.SampledPixels++
		stats.MaxDispersion = max(stats.MaxDispersion, d)
		stats.MinDispersion = min(stats.MinDispersion, d)
	}

	if stats.SampledPixels == 0 {
		stats.MinDispersion = 0
	}
	if len(dispersions) > 0 {
		stats.MeanDispersion = stat.Mean(dispersions, nil)
	}
	return stats
}
