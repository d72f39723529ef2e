package core

import (
	"math"
	"math/rand"
)

// Sampler hands out uniform numbers in [0,1) to materials. Each tile owns one
// so that scattering decisions stay reproducible for a given seed.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler draws from a tile's generator. It is not safe for concurrent
// use, matching the single-writer ownership of tiles.
type RandomSampler struct {
	random *rand.Rand
}

func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

func (r *RandomSampler) Get2D() Vec2 {
	u := r.random.Float64()
	v := r.random.Float64()
	return NewVec2(u, v)
}

func (r *RandomSampler) Get3D() Vec3 {
	u := r.random.Float64()
	v := r.random.Float64()
	w := r.random.Float64()
	return NewVec3(u, v, w)
}

// tangentFrame returns two unit vectors that, with n, form a right-handed
// orthonormal basis. n must be unit length.
func tangentFrame(n Vec3) (Vec3, Vec3) {
	helper := NewVec3(1, 0, 0)
	if math.Abs(n.X) > 0.1 {
		helper = NewVec3(0, 1, 0)
	}
	t := helper.Cross(n).Normalize()
	return t, n.Cross(t)
}

// SampleCosineHemisphere maps u to a unit direction around normal with
// density cos(θ)/π. u.X picks the azimuth and u.Y the squared disk radius.
func SampleCosineHemisphere(normal Vec3, u Vec2) Vec3 {
	phi := 2 * math.Pi * u.X
	diskR := math.Sqrt(u.Y)
	up := math.Sqrt(1 - u.Y)

	t, b := tangentFrame(normal)
	return t.Multiply(diskR * math.Cos(phi)).
		Add(b.Multiply(diskR * math.Sin(phi))).
		Add(normal.Multiply(up))
}

// SamplePointInUnitSphere maps u to a point uniformly distributed in the
// unit ball: the cube root of u.X gives the radius, u.Y and u.Z the direction.
func SamplePointInUnitSphere(u Vec3) Vec3 {
	radius := math.Cbrt(u.X)
	phi := 2 * math.Pi * u.Y
	cosTheta := 2*u.Z - 1
	sinTheta := math.Sqrt(max(0, 1-cosTheta*cosTheta))

	return NewVec3(
		math.Cos(phi)*sinTheta,
		math.Sin(phi)*sinTheta,
		cosTheta,
	).Multiply(radius)
}
