package renderer

// bootstrapSamples is the sample count up to which a pixel is always
// resampled, because its variance estimate is not yet trustworthy.
const bootstrapSamples = 10

// refreshInterval forces a sample on every pass index divisible by it, even
// for pixels that look converged.
const refreshInterval = 4

// VarianceGate decides per pixel and pass whether a new sample is taken
type VarianceGate struct {
	threshold float64
}

// NewVarianceGate creates a gate with the given per-channel variance threshold
func NewVarianceGate(threshold float64) VarianceGate {
	return VarianceGate{threshold: threshold}
}

// ShouldSample reports whether the pixel gets a ray on the given 1-based pass
func (g VarianceGate) ShouldSample(acc *PixelAccumulator, pass int) bool {
	if acc.Count <= bootstrapSamples {
		return true
	}
	if pass%refreshInterval == 0 {
		return true
	}
	v := acc.Variance()
	converged := v.X < g.threshold && v.Y < g.threshold && v.Z < g.threshold
	return !converged
}
