package material

import (
	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter samples a cosine-weighted direction. With that PDF the cosine and
// 1/pi terms cancel and the attenuation is just the albedo.
func (l *Lambertian) Scatter(direction core.Vec3, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scattered := core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	return ScatterResult{
		Direction:   scattered,
		Attenuation: l.Albedo,
	}, true
}
