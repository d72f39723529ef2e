package material

import (
	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Emissive is a light-emitting material that does not scatter
type Emissive struct {
	Emission core.Vec3
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter always absorbs
func (e *Emissive) Scatter(direction core.Vec3, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emitted radiance
func (e *Emissive) Emit() core.Vec3 {
	return e.Emission
}
