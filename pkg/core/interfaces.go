package core

// Scene is the geometry, material and model-loading collaborator of the
// renderer.
type Scene interface {
	// LoadModel reads the scene description once before rendering starts.
	LoadModel(path string) error

	// TraceStep advances the ray by one step and returns the updated ray.
	// Repeated calls must reach RayTerminated in a bounded number of steps.
	TraceStep(ray Ray, sampler Sampler) (Ray, error)
}

// Image is an 8-bit RGB output sink
type Image interface {
	SetPixel(x, y, r, g, b int)
	Save(path string) error
}

// ImageFactory creates a blank image of the given size
type ImageFactory func(width, height int) Image
