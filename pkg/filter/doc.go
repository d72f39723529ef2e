// Package filter implements the post-exposure image filters applied to a
// finalized core.ImageGrid: a normalized Gaussian blur and a per-channel
// windowed order-statistic (median) filter.
//
// Both filters replicate border pixels when the window leaves the image and
// never change which pixels of the grid are set.
package filter

// clampIndex replicates the border: indices outside [0, size-1] snap to the
// nearest edge.
func clampIndex(i, size int) int {
	return max(0, min(size-1, i))
}
