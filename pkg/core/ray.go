package core

// RayStatus is the state of a ray being advanced through a scene
type RayStatus int

const (
	// RayActive rays still need TraceStep calls
	RayActive RayStatus = iota
	// RayTerminated rays carry their final color
	RayTerminated
)

func (s RayStatus) String() string {
	switch s {
	case RayActive:
		return "active"
	case RayTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Pixel identifies an image pixel
type Pixel struct {
	X, Y int
}

// Ray is a camera path in flight. The scheduler creates it Active and polls
// the scene until Status reports RayTerminated.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Bounces   int
	Pixel     Pixel
	Status    RayStatus

	Color      Vec3 // radiance carried back to the pixel
	Throughput Vec3 // path weight applied to light picked up at the next vertex
}

// NewRay creates an active camera ray for a pixel with unit throughput
func NewRay(origin, direction Vec3, pixel Pixel) Ray {
	return Ray{
		Origin:     origin,
		Direction:  direction,
		Pixel:      pixel,
		Status:     RayActive,
		Throughput: NewVec3(1, 1, 1),
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// IsActive reports whether the ray still needs tracing
func (r Ray) IsActive() bool {
	return r.Status == RayActive
}

// Terminate marks the ray as finished
func (r *Ray) Terminate() {
	r.Status = RayTerminated
}
