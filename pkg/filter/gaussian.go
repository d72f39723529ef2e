package filter

import (
	"math"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// kernelExtent is the number of standard deviations the truncated kernel
// covers on each side.
const kernelExtent = 2.57

// GaussianBlur blurs grid with a Gaussian of standard deviation radius.
// A radius of 0 returns grid unchanged.
//
// Every output pixel is normalized by the sum of the weights actually used,
// so truncated kernels at the border do not darken the image.
func GaussianBlur(grid *core.ImageGrid, radius float64) *core.ImageGrid {
	if radius == 0 {
		return grid
	}

	rs := int(math.Ceil(radius * kernelExtent))
	weights := gaussianWeights(rs, radius)
	side := 2*rs + 1

	out := grid.CloneEmpty()
	for i := 0; i < grid.Height; i++ {
		for j := 0; j < grid.Width; j++ {
			var r, g, b, wsum float64
			for dy := -rs; dy <= rs; dy++ {
				y := clampIndex(i+dy, grid.Height)
				for dx := -rs; dx <= rs; dx++ {
					x := clampIndex(j+dx, grid.Width)
					w := weights[(dy+rs)*side+(dx+rs)]
					c := grid.At(x, y)
					r += w * float64(c.R)
					g += w * float64(c.G)
					b += w * float64(c.B)
					wsum += w
				}
			}
			out.Put(j, i, core.RGB{
				R: int(math.Round(r / wsum)),
				G: int(math.Round(g / wsum)),
				B: int(math.Round(b / wsum)),
			})
		}
	}
	return out
}

// gaussianWeights precomputes exp(-(dx²+dy²)/(2r²)) / (2πr²) for the
// (2rs+1)² kernel, row-major from (-rs,-rs).
func gaussianWeights(rs int, radius float64) []float64 {
	side := 2*rs + 1
	weights := make([]float64, side*side)
	twoR2 := 2 * radius * radius
	norm := math.Pi * twoR2
	for dy := -rs; dy <= rs; dy++ {
		for dx := -rs; dx <= rs; dx++ {
			dsq := float64(dx*dx + dy*dy)
			weights[(dy+rs)*side+(dx+rs)] = math.Exp(-dsq/twoR2) / norm
		}
	}
	return weights
}
