package renderer

import "errors"

var (
	ErrInvalidConfig = errors.New("renderer: invalid configuration")
	ErrSceneLoad     = errors.New("renderer: scene could not be loaded")
	ErrTrace         = errors.New("renderer: scene trace failed")
	ErrPoolClosed    = errors.New("renderer: worker pool closed unexpectedly")
	ErrAlreadyRun    = errors.New("renderer: scheduler can only run once")
)
