package maze

import "fmt"

// Direction is a compass direction a cell can point its tree edge toward.
// The declaration order is the canonical order used whenever a
// deterministic pick among allowed directions is needed.
type Direction int

const (
	West Direction = iota
	East
	North
	South

	numDirections = 4
)

// Directions lists the compass directions in canonical order.
var Directions = [numDirections]Direction{West, East, North, South}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= West && d <= South
}

// Opposite returns the direction facing back toward the origin.
func (d Direction) Opposite() Direction {
	switch d {
	case West:
		return East
	case East:
		return West
	case North:
		return South
	default:
		return North
	}
}

// To3D maps the compass direction onto the coordinate step.
func (d Direction) To3D() Direction3D {
	switch d {
	case West:
		return West3D
	case East:
		return East3D
	case North:
		return North3D
	default:
		return South3D
	}
}

func (d Direction) String() string {
	switch d {
	case West:
		return "West"
	case East:
		return "East"
	case North:
		return "North"
	case South:
		return "South"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
