package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeService generates mazes and keeps saved ones.
type MazeService interface {
	// Generate returns the layout for the given dimensions and seed.
	// The same arguments always produce the same layout.
	Generate(ctx context.Context, rows, cols int, seed int64) (maze.Layout, error)

	// Save generates a maze and stores it under a new ID.
	Save(ctx context.Context, rows, cols int, seed int64) (*dmn.MazeRecord, error)

	// ByID returns a saved maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}

// MazeCache stores encoded layouts by key.
type MazeCache interface {
	// GetOrBuild returns the cached payload for key, calling build and
	// caching its result on a miss. Concurrent callers for the same key
	// build at most once.
	GetOrBuild(ctx context.Context, key string, build func() ([]byte, error)) ([]byte, error)
}

// MazeRepo defines the persistence operations for saved mazes.
type MazeRepo interface {
	// Save inserts or replaces a record.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a record, or dmn.ErrMazeNotFound.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}

// LayoutEncoder converts layouts to and from bytes.
type LayoutEncoder interface {
	Marshal(maze.Layout) ([]byte, error)
	Unmarshal([]byte) (maze.Layout, error)
}

// Logger is the component logger used by services and adapters.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
