package material

import (
	"math"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Reflect mirrors d about the normal n: r = d - 2*dot(d,n)*n
func Reflect(d, n core.Vec3) core.Vec3 {
	return d.Subtract(n.Multiply(2 * d.Dot(n)))
}

// Refract returns the transmitted direction for a unit incidence direction d
// hitting a surface with unit normal n, where cos(theta_i) = -dot(n,d) >= 0
// and eta is the ratio of incident over transmitted refractive index.
//
// When eta*sin(theta_i) > 1 no transmission exists and the mirror reflection
// of d is returned instead. Inputs are not validated.
func Refract(d, n core.Vec3, eta float64) core.Vec3 {
	cosIncidence := -n.Dot(d)
	sinRefraction := eta * math.Sqrt(1.0-cosIncidence*cosIncidence)
	if sinRefraction > 1 {
		return Reflect(d, n)
	}
	cosRefraction := math.Sqrt(1.0 - sinRefraction*sinRefraction)
	return d.Multiply(eta).Add(n.Multiply(eta*cosIncidence - cosRefraction))
}

// CannotRefract reports whether Refract would fall back to reflection
func CannotRefract(d, n core.Vec3, eta float64) bool {
	cosIncidence := -n.Dot(d)
	return eta*math.Sqrt(1.0-cosIncidence*cosIncidence) > 1
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
