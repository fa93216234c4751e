package maze

import "errors"

// Maze-related errors.
var (
	ErrInvalidDimensions   = errors.New("maze dimensions must be at least 2x2")
	ErrNegativeAxis        = errors.New("coordinate axis must not be negative")
	ErrOutOfRange          = errors.New("coordinate out of range")
	ErrNotCompass          = errors.New("not a compass direction")
	ErrDirectionNotAllowed = errors.New("direction not allowed for cell")
	ErrNoAllowedDirection  = errors.New("cell has no allowed direction left")
	ErrNotGenerated        = errors.New("maze has not been generated")
	ErrInvariant           = errors.New("maze invariant violated")
)
