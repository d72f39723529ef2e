package renderer

import (
	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// CameraOrigin is the fixed eye position; the camera looks along +z
var CameraOrigin = core.NewVec3(0, 0, -20)

// PrimaryRay builds the camera ray through pixel (x, y) offset by the
// jitter (jx, jy), each in [-0.5, 0.5). The image plane spans [-0.5, 0.5] on
// both axes at z = 1 relative to the eye with y pointing up, so row 0 is the
// top of the image. The direction is not normalized.
func PrimaryRay(x, y, width, height int, jx, jy float64) core.Ray {
	direction := core.NewVec3(
		(float64(x)+jx)/float64(width)-0.5,
		-(float64(y)+jy)/float64(height)+0.5,
		1,
	)
	return core.NewRay(CameraOrigin, direction, core.Pixel{X: x, Y: y})
}
