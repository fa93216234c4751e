package report

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededLayout(t *testing.T, rows, cols int, seed int64) maze.Layout {
	t.Helper()
	m, err := maze.New(maze.Config{Rows: rows, Columns: cols, Rand: rand.New(rand.NewSource(seed))})
	require.NoError(t, err)
	return m.Layout()
}

func TestGrid(t *testing.T) {
	l := seededLayout(t, 3, 4, 9)
	lines := Grid(l)
	require.Len(t, lines, 9)

	for _, line := range lines {
		assert.Equal(t, 5*4, utf8.RuneCountInString(line))
	}
	// outer boundary is always closed
	assert.Equal(t, strings.Repeat(wallNorthOrSouth, 4), lines[0])
	assert.Equal(t, strings.Repeat(wallNorthOrSouth, 4), lines[len(lines)-1])
	assert.Equal(t, 1, strings.Count(strings.Join(lines, ""), rootGlyph))
}

func TestGridGlyphs(t *testing.T) {
	l := maze.Layout{
		Rows: 2, Columns: 2, RootColumn: 0, RootRow: 0,
		Cells: []maze.CellLayout{
			{Column: 0, Row: 0, Direction: maze.West, NorthWall: true, WestWall: true, SouthWall: true},
			{Column: 1, Row: 0, Direction: maze.West, NorthWall: true, EastWall: true},
			{Column: 0, Row: 1, Direction: maze.East, SouthWall: true, WestWall: true, NorthWall: true},
			{Column: 1, Row: 1, Direction: maze.North, SouthWall: true, EastWall: true},
		},
	}
	assert.Equal(t, []string{
		"##########",
		"# * ·· < #",
		"###### · #",
		"###### · #",
		"# > ·· ^ #",
		"##########",
	}, Grid(l))
}

func TestWriteASCII(t *testing.T) {
	l := seededLayout(t, 2, 3, 4)
	printedAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, l, printedAt))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "=== Maze printed at 2024-03-01 12:30:00 ===\n\n"))
	assert.Contains(t, out, "=== DATA CELLS ===")
	assert.Contains(t, out, "|C|R| D |N|E|W|S|")
	assert.Contains(t, out, "|0|0| ")
	assert.Contains(t, out, "|2|1| ")
	// header rule, one rule per cell, closing rule
	assert.Equal(t, 1+6+1, strings.Count(out, tableRule+"\n"))
}

func TestWriteASCIIRejectsBrokenLayout(t *testing.T) {
	var buf bytes.Buffer
	err := WriteASCII(&buf, maze.Layout{Rows: 1, Columns: 4}, time.Now())
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	assert.Empty(t, buf.String())
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "^", Glyph(maze.North))
	assert.Equal(t, "v", Glyph(maze.South))
	assert.Equal(t, "<", Glyph(maze.West))
	assert.Equal(t, ">", Glyph(maze.East))
	assert.Equal(t, "?", Glyph(maze.Direction(12)))
}
