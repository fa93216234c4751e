package maze

import "fmt"

// Cell represents a single node of the maze grid.
// It tracks whether the cell joined the spanning tree, which directions
// it may still point toward, the direction of its tree edge and the
// presence of a wall on each side.
//
// A Cell is owned by its WilsonMaze; callers outside the package only
// read it.
type Cell struct {
	coord   Coordinate
	inMaze  bool
	allowed [numDirections]bool
	current Direction
	walls   [numDirections]bool
}

// newCell returns a cell with every direction allowed and the current
// direction set to the first one in canonical order.
func newCell(coord Coordinate) *Cell {
	c := &Cell{coord: coord}
	c.allowAll()
	c.current = Directions[0]
	return c
}

// Coordinate returns the cell's identity.
func (c *Cell) Coordinate() Coordinate {
	return c.coord
}

// InMaze reports whether the cell has been added to the spanning tree.
func (c *Cell) InMaze() bool {
	return c.inMaze
}

// CurrentDirection returns the direction of the cell's tree edge.
func (c *Cell) CurrentDirection() Direction {
	return c.current
}

// IsAllowed reports whether d is still an allowed direction.
func (c *Cell) IsAllowed(d Direction) bool {
	return d.Valid() && c.allowed[d]
}

// AllowedDirections returns the allowed directions in canonical order.
func (c *Cell) AllowedDirections() []Direction {
	dirs := make([]Direction, 0, numDirections)
	for _, d := range Directions {
		if c.allowed[d] {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (c *Cell) HasNorthWall() bool { return c.walls[North] }

// HasSouthWall returns true if there is a wall on the south side of the cell.
func (c *Cell) HasSouthWall() bool { return c.walls[South] }

// HasEastWall returns true if there is a wall on the east side of the cell.
func (c *Cell) HasEastWall() bool { return c.walls[East] }

// HasWestWall returns true if there is a wall on the west side of the cell.
func (c *Cell) HasWestWall() bool { return c.walls[West] }

// HasWall returns true if there is a wall on side d.
func (c *Cell) HasWall(d Direction) bool {
	return d.Valid() && c.walls[d]
}

func (c *Cell) String() string {
	return fmt.Sprintf("cell %s", c.coord)
}

// disallow removes d from the allowed set. It returns false when d was
// already disallowed, leaving the cell untouched. When d was the current
// direction the first remaining allowed direction replaces it.
func (c *Cell) disallow(d Direction) (bool, error) {
	if !d.Valid() {
		return false, fmt.Errorf("%w: %d", ErrNotCompass, int(d))
	}
	if !c.allowed[d] {
		return false, nil
	}
	c.allowed[d] = false

	if c.current != d {
		return true, nil
	}
	for _, next := range Directions {
		if c.allowed[next] {
			c.current = next
			return true, nil
		}
	}
	return true, fmt.Errorf("%w: %s after removing %s", ErrNoAllowedDirection, c, d)
}

func (c *Cell) allowAll() {
	for _, d := range Directions {
		c.allowed[d] = true
	}
}

func (c *Cell) setCurrentDirection(d Direction) error {
	if !c.IsAllowed(d) {
		return fmt.Errorf("%w: %s for %s", ErrDirectionNotAllowed, d, c)
	}
	c.current = d
	return nil
}

// markInMaze flags the cell as part of the tree and reports whether the
// flag changed.
func (c *Cell) markInMaze() bool {
	if c.inMaze {
		return false
	}
	c.inMaze = true
	return true
}

func (c *Cell) setAllWalls(present bool) {
	for _, d := range Directions {
		c.walls[d] = present
	}
}

func (c *Cell) setWall(d Direction, present bool) {
	c.walls[d] = present
}
