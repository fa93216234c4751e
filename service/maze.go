package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 50
	layoutCacheKeyFmt   = "%s:layout:%dx%d:%d"
	defaultCachePrefix  = "maze"
)

var (
	ErrDimensionTooLarge = errors.New("maze dimension too large")
	ErrMissingEncoder    = errors.New("layout encoder is required")
	ErrMissingLogger     = errors.New("logger is required")
)

// MazeOptions configures a MazeService. Cache and Repo are optional:
// without a cache every request generates, without a repo Save and ByID
// fail.
type MazeOptions struct {
	Cache        i.MazeCache
	Repo         i.MazeRepo
	Encoder      i.LayoutEncoder
	Logger       i.Logger
	MaxDimension int
	CachePrefix  string
	Now          func() time.Time
}

type MazeService struct {
	opts *MazeOptions
}

// NewMazeService validates the options and fills in defaults.
func NewMazeService(opts *MazeOptions) (i.MazeService, error) {
	if opts == nil || opts.Encoder == nil {
		return nil, ErrMissingEncoder
	}
	if opts.Logger == nil {
		return nil, ErrMissingLogger
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}
	if opts.CachePrefix == "" {
		opts.CachePrefix = defaultCachePrefix
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &MazeService{opts: opts}, nil
}

// Generate implements i.MazeService.
func (ms *MazeService) Generate(ctx context.Context, rows, cols int, seed int64) (maze.Layout, error) {
	if rows > ms.opts.MaxDimension || cols > ms.opts.MaxDimension {
		return maze.Layout{}, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, rows, cols, ms.opts.MaxDimension)
	}

	if ms.opts.Cache == nil {
		return ms.build(rows, cols, seed)
	}

	key := ms.cacheKey(rows, cols, seed)
	payload, err := ms.opts.Cache.GetOrBuild(ctx, key, func() ([]byte, error) {
		l, err := ms.build(rows, cols, seed)
		if err != nil {
			return nil, err
		}
		return ms.opts.Encoder.Marshal(l)
	})
	if err != nil {
		ms.opts.Logger.Error(fmt.Sprintf("Failed to obtain layout %s: %s", key, err))
		return maze.Layout{}, err
	}

	l, err := ms.opts.Encoder.Unmarshal(payload)
	if err != nil {
		ms.opts.Logger.Error(fmt.Sprintf("Cached layout %s is unreadable: %s", key, err))
		return maze.Layout{}, err
	}
	return l, nil
}

// Save implements i.MazeService.
func (ms *MazeService) Save(ctx context.Context, rows, cols int, seed int64) (*dmn.MazeRecord, error) {
	if ms.opts.Repo == nil {
		return nil, errors.New("maze storage is not configured")
	}

	l, err := ms.Generate(ctx, rows, cols, seed)
	if err != nil {
		return nil, err
	}

	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		Rows:      rows,
		Columns:   cols,
		Seed:      seed,
		Layout:    l,
		CreatedAt: ms.opts.Now().UTC(),
	}
	if err := ms.opts.Repo.Save(ctx, record); err != nil {
		ms.opts.Logger.Error(fmt.Sprintf("Failed to save maze %s: %s", record.ID, err))
		return nil, err
	}

	ms.opts.Logger.Info(fmt.Sprintf("Maze saved: ID=%s Size=%dx%d Seed=%d", record.ID, rows, cols, seed))
	return record, nil
}

// ByID implements i.MazeService.
func (ms *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	if ms.opts.Repo == nil {
		return nil, errors.New("maze storage is not configured")
	}
	return ms.opts.Repo.ByID(ctx, id)
}

// build generates a maze from a dedicated source seeded with seed.
func (ms *MazeService) build(rows, cols int, seed int64) (maze.Layout, error) {
	m, err := maze.New(maze.Config{
		Rows:    rows,
		Columns: cols,
		Rand:    rand.New(rand.NewSource(seed)),
		Logger:  ms.opts.Logger,
	})
	if err != nil {
		return maze.Layout{}, err
	}
	if anomalies := m.Anomalies(); len(anomalies) > 0 {
		ms.opts.Logger.Warning(fmt.Sprintf("Maze %dx%d seed %d built with %d anomalies", rows, cols, seed, len(anomalies)))
	}
	return m.Layout(), nil
}

func (ms *MazeService) cacheKey(rows, cols int, seed int64) string {
	return fmt.Sprintf(layoutCacheKeyFmt, ms.opts.CachePrefix, rows, cols, seed)
}
