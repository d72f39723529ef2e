package material

import (
	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: max(0.0, min(1.0, fuzzness))}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(direction core.Vec3, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := Reflect(direction.Normalize(), hit.Normal)

	if m.Fuzzness > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation)
	}

	// Fuzz can push the direction below the surface, which absorbs the ray
	return ScatterResult{
		Direction:   reflected,
		Attenuation: m.Albedo,
	}, reflected.Dot(hit.Normal) > 0
}
