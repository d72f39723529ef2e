package core

// RGB is an 8-bit color triple stored as ints in [0,255]
type RGB struct {
	R, G, B int
}

// ImageGrid is a finalized width x height color grid. Pixels that never
// received a sample are left unset and are skipped when the grid is written.
type ImageGrid struct {
	Width, Height int
	pix           []RGB
	set           []bool
}

// NewImageGrid creates an empty grid with every pixel unset
func NewImageGrid(width, height int) *ImageGrid {
	return &ImageGrid{
		Width:  width,
		Height: height,
		pix:    make([]RGB, width*height),
		set:    make([]bool, width*height),
	}
}

// At returns the color stored at (x, y); unset pixels are black
func (g *ImageGrid) At(x, y int) RGB {
	return g.pix[y*g.Width+x]
}

// Set stores a color at (x, y) and marks the pixel as set
func (g *ImageGrid) Set(x, y int, c RGB) {
	i := y*g.Width + x
	g.pix[i] = c
	g.set[i] = true
}

// IsSet reports whether (x, y) holds a color
func (g *ImageGrid) IsSet(x, y int) bool {
	return g.set[y*g.Width+x]
}

// CloneEmpty returns a grid of the same size sharing no storage, with the
// same set mask and all colors zeroed.
func (g *ImageGrid) CloneEmpty() *ImageGrid {
	out := NewImageGrid(g.Width, g.Height)
	copy(out.set, g.set)
	return out
}

// Put writes a color at (x, y) without touching the set mask
func (g *ImageGrid) Put(x, y int, c RGB) {
	g.pix[y*g.Width+x] = c
}

// WriteTo copies every set pixel into img
func (g *ImageGrid) WriteTo(img Image) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsSet(x, y) {
				continue
			}
			c := g.At(x, y)
			img.SetPixel(x, y, c.R, c.G, c.B)
		}
	}
}
