package filter

import (
	"slices"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Median replaces every pixel, channel by channel, with an order statistic
// of its (2w+1)² neighbourhood. A half-window of 0 returns grid unchanged.
//
// The value kept is the one at sorted index w*w, which for w > 0 lies below
// the middle of the window. Channels are filtered independently, so colors
// at hard edges may mix.
func Median(grid *core.ImageGrid, halfWindow int) *core.ImageGrid {
	if halfWindow == 0 {
		return grid
	}

	size := (2*halfWindow + 1) * (2*halfWindow + 1)
	rank := halfWindow * halfWindow
	windowR := make([]int, 0, size)
	windowG := make([]int, 0, size)
	windowB := make([]int, 0, size)

	out := grid.CloneEmpty()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			windowR, windowG, windowB = windowR[:0], windowG[:0], windowB[:0]
			for wx := -halfWindow; wx <= halfWindow; wx++ {
				i := clampIndex(x+wx, grid.Width)
				for wy := -halfWindow; wy <= halfWindow; wy++ {
					j := clampIndex(y+wy, grid.Height)
					c := grid.At(i, j)
					windowR = append(windowR, c.R)
					windowG = append(windowG, c.G)
					windowB = append(windowB, c.B)
				}
			}
			slices.Sort(windowR)
			slices.Sort(windowG)
			slices.Sort(windowB)
			out.Put(x, y, core.RGB{R: windowR[rank], G: windowG[rank], B: windowB[rank]})
		}
	}
	return out
}
