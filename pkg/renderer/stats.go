package renderer

import (
	"time"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// PixelAccumulator holds the running sample sums of one pixel. During a pass
// it is written only by the worker owning the pixel's tile.
type PixelAccumulator struct {
	Sum        core.Vec3 // sum of sample colors
	SumSquares core.Vec3 // sum of squared sample colors
	Count      int       // number of samples taken
}

// AddSample adds a new color sample to the accumulator
func (pa *PixelAccumulator) AddSample(color core.Vec3) {
	pa.Sum = pa.Sum.Add(color)
	pa.SumSquares = pa.SumSquares.Add(color.Square())
	pa.Count++
}

// Mean returns Sum/Count. Callers must check Count > 0.
func (pa *PixelAccumulator) Mean() core.Vec3 {
	return pa.Sum.Divide(float64(pa.Count))
}

// Variance returns the per-channel sample variance
// SumSquares/Count - (Sum/Count)². It may be slightly negative from
// floating-point cancellation. Callers must check Count > 0.
func (pa *PixelAccumulator) Variance() core.Vec3 {
	n := float64(pa.Count)
	return pa.SumSquares.Divide(n).Subtract(pa.Sum.Divide(n).Square())
}

// Dispersion returns the sum of the channel variances
func (pa *PixelAccumulator) Dispersion() float64 {
	return pa.Variance().Sum()
}

// RunStats summarises pixel dispersion after a run
type RunStats struct {
	MaxDispersion  float64 // over sampled pixels
	MinDispersion  float64 // over sampled pixels
	MeanDispersion float64 // over all pixels, unsampled ones count as 1
	SampledPixels  int
	TotalPixels    int
	TotalSamples   int
}

// Result is what a finished run hands back to its caller
type Result struct {
	Image           *core.ImageGrid // tone mapped and filtered
	Stats           RunStats
	PassesCompleted int
	PassBudget      int
	Elapsed         time.Duration
	Stopped         StopReason

	CheckpointsWritten int
	CheckpointsFailed  int

	Outputs []string // files written by Render
}

// StopReason tells why the sampling loop ended
type StopReason int

const (
	StopBudget    StopReason = iota // every pass of the sample budget ran
	StopTimeLimit                   // the wall-clock budget expired
	StopCancelled                   // the context was cancelled
)

func (r StopReason) String() string {
	switch r {
	case StopBudget:
		return "sample budget reached"
	case StopTimeLimit:
		return "time limit reached"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
