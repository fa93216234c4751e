package maze

import "fmt"

// Direction3D is one of the six unit steps a Coordinate can be offset by.
type Direction3D int

const (
	North3D Direction3D = iota
	East3D
	South3D
	West3D
	Up3D
	Down3D
)

// String returns the name of the direction.
func (d Direction3D) String() string {
	switch d {
	case North3D:
		return "North"
	case East3D:
		return "East"
	case South3D:
		return "South"
	case West3D:
		return "West"
	case Up3D:
		return "Up"
	case Down3D:
		return "Down"
	default:
		return fmt.Sprintf("Direction3D(%d)", int(d))
	}
}

// Coordinate identifies a cell by column, row and floor.
// It is a comparable value type and can be used directly as a map key.
type Coordinate struct {
	column int
	row    int
	floor  int
}

// NewCoordinate validates the axes and returns a Coordinate.
func NewCoordinate(column, row, floor int) (Coordinate, error) {
	if column < 0 || row < 0 || floor < 0 {
		return Coordinate{}, fmt.Errorf("%w: (%d,%d,%d)", ErrNegativeAxis, column, row, floor)
	}
	return Coordinate{column: column, row: row, floor: floor}, nil
}

// Column returns the column index.
func (c Coordinate) Column() int { return c.column }

// Row returns the row index.
func (c Coordinate) Row() int { return c.row }

// Floor returns the floor index.
func (c Coordinate) Floor() int { return c.floor }

// Offset returns the coordinate one step away in direction d.
// The result is not clamped: an axis may go negative, and bounds are the
// caller's problem.
func (c Coordinate) Offset(d Direction3D) Coordinate {
	switch d {
	case North3D:
		c.row--
	case South3D:
		c.row++
	case East3D:
		c.column++
	case West3D:
		c.column--
	case Up3D:
		c.floor++
	case Down3D:
		c.floor--
	}
	return c
}

// String implements fmt.Stringer.
func (c Coordinate) String() string {
	return fmt.Sprintf("(col=%d,row=%d,floor=%d)", c.column, c.row, c.floor)
}
