/*
Package maze provides tools for creating and reading rectangular perfect mazes.

A WilsonMaze owns a grid of Cell values keyed by Coordinate. Construction
populates the grid, masks the directions that would leave it, grows a uniform
spanning tree with Wilson's algorithm (loop-erased random walks) and finally
derives which of the four walls of every cell are open.

The finished maze is read-only for callers: cells expose accessors only, and
neighbors are always reached through Coordinate.Offset plus a grid lookup.
*/
package maze

import (
	"fmt"
	"iter"
	"math/rand"
	"time"
)

const (
	minMazeDimension = 2
	groundFloor      = 0
)

// RandSource is the randomness the generator draws from.
// *rand.Rand satisfies it; seed one to get reproducible mazes.
type RandSource interface {
	Intn(n int) int
}

// Logger receives the generator's diagnostics.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

// Anomaly records a redundant operation that did not stop generation,
// such as disallowing a direction twice.
type Anomaly struct {
	Coordinate Coordinate
	Direction  Direction
	Reason     string
}

// Config holds the settings for building a WilsonMaze.
type Config struct {
	Rows    int        // Number of rows, at least 2
	Columns int        // Number of columns, at least 2
	Rand    RandSource // Optional; a time-seeded source is used when nil
	Logger  Logger     // Optional; diagnostics are dropped when nil
}

// WilsonMaze is a rectangular perfect maze generated with Wilson's algorithm.
type WilsonMaze struct {
	rows      int
	columns   int
	grid      map[Coordinate]*Cell
	order     []Coordinate // row-major
	rng       RandSource
	logger    Logger
	root      Coordinate
	notInMaze *workingSet
	generated bool
	anomalies []Anomaly
}

// New builds a maze of the given dimensions: it populates the grid,
// generates the spanning tree and derives the walls. No partially built
// maze is ever returned.
func New(cfg Config) (*WilsonMaze, error) {
	m, err := newMaze(cfg)
	if err != nil {
		return nil, err
	}
	if err := m.generate(); err != nil {
		m.logger.Error(fmt.Sprintf("generating %dx%d maze: %v", m.rows, m.columns, err))
		return nil, err
	}
	if err := m.deriveWalls(); err != nil {
		m.logger.Error(fmt.Sprintf("deriving walls: %v", err))
		return nil, err
	}
	return m, nil
}

// newMaze validates the configuration and populates the grid.
func newMaze(cfg Config) (*WilsonMaze, error) {
	if cfg.Rows < minMazeDimension || cfg.Columns < minMazeDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, cfg.Rows, cfg.Columns)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var logger Logger = nopLogger{}
	if cfg.Logger != nil {
		logger = cfg.Logger
	}

	m := &WilsonMaze{
		rows:    cfg.Rows,
		columns: cfg.Columns,
		grid:    make(map[Coordinate]*Cell, cfg.Rows*cfg.Columns),
		order:   make([]Coordinate, 0, cfg.Rows*cfg.Columns),
		rng:     rng,
		logger:  logger,
	}
	if err := m.populate(); err != nil {
		return nil, err
	}
	return m, nil
}

// populate creates one cell per position in row-major order and masks the
// directions that would point outside the grid.
func (m *WilsonMaze) populate() error {
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.columns; col++ {
			cell := newCell(Coordinate{column: col, row: row, floor: groundFloor})

			var masked []Direction
			if row == 0 {
				masked = append(masked, North)
			}
			if row == m.rows-1 {
				masked = append(masked, South)
			}
			if col == 0 {
				masked = append(masked, West)
			}
			if col == m.columns-1 {
				masked = append(masked, East)
			}
			for _, d := range masked {
				if err := m.disallow(cell, d); err != nil {
					return err
				}
			}

			m.grid[cell.coord] = cell
			m.order = append(m.order, cell.coord)
		}
	}
	return nil
}

// disallow removes d from the cell's allowed set, recording an anomaly when
// it was already gone.
func (m *WilsonMaze) disallow(cell *Cell, d Direction) error {
	removed, err := cell.disallow(d)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	if !removed {
		a := Anomaly{Coordinate: cell.coord, Direction: d, Reason: "direction already disallowed"}
		m.anomalies = append(m.anomalies, a)
		m.logger.Warning(fmt.Sprintf("%s: %s for %s", a.Reason, d, cell))
	}
	return nil
}

// generate grows the spanning tree with Wilson's algorithm.
func (m *WilsonMaze) generate() error {
	if m.generated {
		return nil
	}

	cells := make([]*Cell, 0, len(m.order))
	for _, coord := range m.order {
		cells = append(cells, m.grid[coord])
	}
	m.notInMaze = newWorkingSet(cells)

	root := m.notInMaze.random(m.rng)
	m.root = root.coord
	if err := m.addToMaze(root); err != nil {
		return err
	}

	walks := 0
	for m.notInMaze.len() > 0 {
		start := m.notInMaze.random(m.rng)
		if err := m.walk(start); err != nil {
			return err
		}
		if err := m.commit(start); err != nil {
			return err
		}
		walks++
	}

	m.generated = true
	m.logger.Info(fmt.Sprintf("generated %dx%d maze rooted at %s in %d walks", m.rows, m.columns, m.root, walks))
	return nil
}

// walk performs a random walk from start until it reaches a cell already in
// the maze. Revisited cells get their direction overwritten, which erases
// any loop the walk traced.
func (m *WilsonMaze) walk(start *Cell) error {
	current := start
	for !current.inMaze {
		allowed := current.AllowedDirections()
		if len(allowed) == 0 {
			return fmt.Errorf("%w: %w: %s", ErrInvariant, ErrNoAllowedDirection, current)
		}
		if err := current.setCurrentDirection(allowed[m.rng.Intn(len(allowed))]); err != nil {
			return fmt.Errorf("%w: %w", ErrInvariant, err)
		}

		next, err := m.neighbor(current)
		if err != nil {
			return err
		}
		current = next
	}
	return nil
}

// commit follows the finalized directions from start, adding every cell on
// the path to the maze, and stops before re-entering the tree.
func (m *WilsonMaze) commit(start *Cell) error {
	current := start
	for {
		next, err := m.neighbor(current)
		if err != nil {
			return err
		}
		if err := m.addToMaze(current); err != nil {
			return err
		}
		if next.inMaze {
			return nil
		}
		current = next
	}
}

// addToMaze marks the cell and drops it from the working set.
func (m *WilsonMaze) addToMaze(cell *Cell) error {
	if !cell.markInMaze() {
		return fmt.Errorf("%w: %s added to maze twice", ErrInvariant, cell)
	}
	if !m.notInMaze.remove(cell) {
		return fmt.Errorf("%w: %s missing from working set", ErrInvariant, cell)
	}
	return nil
}

// neighbor returns the cell the current direction of c points to.
func (m *WilsonMaze) neighbor(c *Cell) (*Cell, error) {
	next, err := m.CellAt(c.coord.Offset(c.current.To3D()))
	if err != nil {
		return nil, fmt.Errorf("%w: %s points %s out of the grid: %w", ErrInvariant, c, c.current, err)
	}
	return next, nil
}

// deriveWalls turns the direction pointers into wall flags. A side is open
// when the cell points through it, or when the neighbor on that side points
// back. The root's pointer is not a tree edge and is ignored both ways.
// Running it again on the same maze yields the same walls.
func (m *WilsonMaze) deriveWalls() error {
	if !m.generated {
		return ErrNotGenerated
	}

	for _, coord := range m.order {
		cell := m.grid[coord]
		cell.setAllWalls(true)

		if coord != m.root {
			cell.setWall(cell.current, false)
		}

		for _, d := range Directions {
			nbr, err := m.CellAt(coord.Offset(d.To3D()))
			if err != nil {
				continue // grid edge
			}
			if nbr.coord != m.root && nbr.current == d.Opposite() {
				cell.setWall(d, false)
			}
		}
	}
	return nil
}

// Rows returns the number of rows.
func (m *WilsonMaze) Rows() int {
	return m.rows
}

// Columns returns the number of columns.
func (m *WilsonMaze) Columns() int {
	return m.columns
}

// Root returns the coordinate of the first cell added to the tree. Its
// direction pointer carries no meaning.
func (m *WilsonMaze) Root() Coordinate {
	return m.root
}

// CellAt returns the cell at c, or ErrOutOfRange.
func (m *WilsonMaze) CellAt(c Coordinate) (*Cell, error) {
	if c.column < 0 || c.column >= m.columns || c.row < 0 || c.row >= m.rows || c.floor != groundFloor {
		return nil, fmt.Errorf("%w: %s not in %dx%d grid", ErrOutOfRange, c, m.columns, m.rows)
	}
	return m.grid[c], nil
}

// All iterates over the cells in row-major order.
func (m *WilsonMaze) All() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, coord := range m.order {
			if !yield(m.grid[coord]) {
				return
			}
		}
	}
}

// Anomalies returns the redundant operations recorded while building.
func (m *WilsonMaze) Anomalies() []Anomaly {
	out := make([]Anomaly, len(m.anomalies))
	copy(out, m.anomalies)
	return out
}

// IsOpen reports whether one can step from c in direction d, i.e. both
// faces of the shared wall are open.
func (m *WilsonMaze) IsOpen(c Coordinate, d Direction) bool {
	if !d.Valid() {
		return false
	}
	from, err := m.CellAt(c)
	if err != nil {
		return false
	}
	to, err := m.CellAt(c.Offset(d.To3D()))
	if err != nil {
		return false
	}
	return !from.HasWall(d) && !to.HasWall(d.Opposite())
}

// String provides a textual representation of the maze.
func (m *WilsonMaze) String() string {
	return m.Layout().String()
}
