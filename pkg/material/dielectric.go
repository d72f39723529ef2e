package material

import (
	"math"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(direction core.Vec3, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // entering (air to glass)
	} else {
		refractionRatio = d.RefractiveIndex // exiting (glass to air)
	}

	unitDirection := direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)

	var scattered core.Vec3
	if CannotRefract(unitDirection, hit.Normal, refractionRatio) ||
		Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		scattered = Reflect(unitDirection, hit.Normal)
	} else {
		scattered = Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Direction:   scattered,
		Attenuation: core.NewVec3(1.0, 1.0, 1.0), // clear glass does not absorb
	}, true
}
