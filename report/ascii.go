// Package report formats a finished maze for humans: a glyph grid with three
// text lines per maze row, followed by a per-cell wall table.
package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const (
	wallNorthOrSouth = "#####"
	openNorthOrSouth = "# · #"
	wallWest         = "# "
	openWest         = "· "
	wallEast         = " #"
	openEast         = " ·"
	rootGlyph        = "*"
	tableRule        = "-----------------"
)

// Glyph returns the arrow used for a direction.
func Glyph(d maze.Direction) string {
	switch d {
	case maze.North:
		return "^"
	case maze.South:
		return "v"
	case maze.West:
		return "<"
	case maze.East:
		return ">"
	default:
		return "?"
	}
}

// Grid renders the glyph grid: three lines per maze row, five characters
// per column. The root cell shows "*" since its pointer is not an edge.
func Grid(l maze.Layout) []string {
	lines := make([]string, 0, 3*l.Rows)
	for row := 0; row < l.Rows; row++ {
		var top, mid, bottom string
		for col := 0; col < l.Columns; col++ {
			cell, _ := l.Cell(col, row)

			top += pick(cell.NorthWall, wallNorthOrSouth, openNorthOrSouth)

			glyph := Glyph(cell.Direction)
			if l.IsRoot(col, row) {
				glyph = rootGlyph
			}
			mid += pick(cell.WestWall, wallWest, openWest) + glyph + pick(cell.EastWall, wallEast, openEast)

			bottom += pick(cell.SouthWall, wallNorthOrSouth, openNorthOrSouth)
		}
		lines = append(lines, top, mid, bottom)
	}
	return lines
}

// WriteASCII writes the header, the glyph grid and the data cell table.
func WriteASCII(w io.Writer, l maze.Layout, printedAt time.Time) error {
	if err := l.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "=== Maze printed at %s ===\n\n", printedAt.Format(time.DateTime))
	for _, line := range Grid(l) {
		fmt.Fprintln(bw, line)
	}

	fmt.Fprint(bw, "\n\n=== DATA CELLS ===\nC: column\nR: row\nD: direction\n"+
		"N: hasNorthWall\nE: hasEastWall\nW: hasWestWall\nS: hasSouthWall\n")
	fmt.Fprintln(bw, tableRule)
	fmt.Fprintln(bw, "|C|R| D |N|E|W|S|")
	for _, cell := range l.Cells {
		glyph := Glyph(cell.Direction)
		if l.IsRoot(cell.Column, cell.Row) {
			glyph = rootGlyph
		}
		fmt.Fprintln(bw, tableRule)
		fmt.Fprintf(bw, "|%d|%d| %s |%s|%s|%s|%s|\n",
			cell.Column, cell.Row, glyph,
			mark(cell.NorthWall), mark(cell.EastWall), mark(cell.WestWall), mark(cell.SouthWall))
	}
	fmt.Fprintln(bw, tableRule)

	return bw.Flush()
}

func pick(wall bool, closed, open string) string {
	if wall {
		return closed
	}
	return open
}

func mark(wall bool) string {
	if wall {
		return "X"
	}
	return " "
}
