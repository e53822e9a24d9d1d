package universe

import "github.com/pkg/errors"

//error kinds reported by the grid and the evolver
//the returned errors are wrapped with the call site context, compare them with errors.Is
var (
	ErrInvalidDimension  = errors.New("invalid dimension")
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrRunning           = errors.New("simulation is running")
	ErrUnknownEngine     = errors.New("unknown engine")
	ErrInvalidInterval   = errors.New("invalid interval")
	ErrUnknownTemplate   = errors.New("unknown template")
)
