package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

var (
	ErrMazeNotFound = errors.New("maze not found")
)

// MazeRecord is a generated maze kept for later lookup. The seed and
// dimensions are enough to rebuild it; the layout is stored so lookups do
// not depend on the generator staying byte-compatible.
type MazeRecord struct {
	ID        uuid.UUID
	Rows      int
	Columns   int
	Seed      int64
	Layout    maze.Layout
	CreatedAt time.Time
}
