package maze

import (
	"fmt"
	"strings"
)

// CellLayout is a plain-data copy of a finished cell.
type CellLayout struct {
	Column    int
	Row       int
	Floor     int
	Direction Direction
	NorthWall bool
	SouthWall bool
	EastWall  bool
	WestWall  bool
}

// Layout is a plain-data snapshot of a finished maze. Cells are stored in
// row-major order.
type Layout struct {
	Rows       int
	Columns    int
	RootColumn int
	RootRow    int
	Cells      []CellLayout
}

// Layout copies the finished maze into a Layout.
func (m *WilsonMaze) Layout() Layout {
	l := Layout{
		Rows:       m.rows,
		Columns:    m.columns,
		RootColumn: m.root.column,
		RootRow:    m.root.row,
		Cells:      make([]CellLayout, 0, len(m.order)),
	}
	for cell := range m.All() {
		l.Cells = append(l.Cells, CellLayout{
			Column:    cell.coord.column,
			Row:       cell.coord.row,
			Floor:     cell.coord.floor,
			Direction: cell.current,
			NorthWall: cell.HasNorthWall(),
			SouthWall: cell.HasSouthWall(),
			EastWall:  cell.HasEastWall(),
			WestWall:  cell.HasWestWall(),
		})
	}
	return l
}

// Cell returns the cell at (col, row).
func (l Layout) Cell(col, row int) (CellLayout, bool) {
	if col < 0 || col >= l.Columns || row < 0 || row >= l.Rows {
		return CellLayout{}, false
	}
	i := row*l.Columns + col
	if i >= len(l.Cells) {
		return CellLayout{}, false
	}
	return l.Cells[i], true
}

// IsRoot reports whether (col, row) is the root of the tree.
func (l Layout) IsRoot(col, row int) bool {
	return col == l.RootColumn && row == l.RootRow
}

// Validate checks that the snapshot is complete and internally consistent.
func (l Layout) Validate() error {
	if l.Rows < minMazeDimension || l.Columns < minMazeDimension {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, l.Rows, l.Columns)
	}
	// Rows*Columns may overflow for decoded input; compare by division.
	if len(l.Cells)%l.Columns != 0 || len(l.Cells)/l.Columns != l.Rows {
		return fmt.Errorf("%w: layout has %d cells for %dx%d", ErrInvariant, len(l.Cells), l.Rows, l.Columns)
	}
	for i, c := range l.Cells {
		if c.Column < 0 || c.Column >= l.Columns || c.Row < 0 || c.Row >= l.Rows {
			return fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, c.Column, c.Row)
		}
		if c.Row*l.Columns+c.Column != i {
			return fmt.Errorf("%w: cell (%d,%d) stored at index %d", ErrInvariant, c.Column, c.Row, i)
		}
		if !c.Direction.Valid() {
			return fmt.Errorf("%w: cell (%d,%d)", ErrNotCompass, c.Column, c.Row)
		}
	}
	if _, ok := l.Cell(l.RootColumn, l.RootRow); !ok {
		return fmt.Errorf("%w: root (%d,%d)", ErrOutOfRange, l.RootColumn, l.RootRow)
	}
	return nil
}

// String renders the maze with "+---+" boxes, marking the root with "*".
func (l Layout) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", l.Columns) + "\n")

	for row := 0; row < l.Rows; row++ {
		// Cell rows
		output.WriteString("|")
		for col := 0; col < l.Columns; col++ {
			cell, _ := l.Cell(col, row)
			if l.IsRoot(col, row) {
				output.WriteString(" * ")
			} else {
				output.WriteString("   ")
			}
			if cell.EastWall {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < l.Columns; col++ {
			cell, _ := l.Cell(col, row)
			if cell.SouthWall {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
