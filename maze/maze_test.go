package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeded(t *testing.T, rows, cols int, seed int64) *WilsonMaze {
	t.Helper()
	m, err := New(Config{Rows: rows, Columns: cols, Rand: rand.New(rand.NewSource(seed))})
	require.NoError(t, err)
	return m
}

func at(col, row int) Coordinate {
	return Coordinate{column: col, row: row, floor: groundFloor}
}

// treeEdges returns the (cell, pointed neighbor) pairs of every non-root cell.
func treeEdges(t *testing.T, m *WilsonMaze) map[[2]Coordinate]bool {
	t.Helper()
	edges := make(map[[2]Coordinate]bool)
	for cell := range m.All() {
		if cell.Coordinate() == m.Root() {
			continue
		}
		next := cell.Coordinate().Offset(cell.CurrentDirection().To3D())
		_, err := m.CellAt(next)
		require.NoError(t, err, "pointer of %s leaves the grid", cell)
		edges[[2]Coordinate{cell.Coordinate(), next}] = true
	}
	return edges
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"single row", 1, 5},
		{"single column", 5, 1},
		{"empty", 0, 0},
		{"negative", -3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(Config{Rows: tt.rows, Columns: tt.cols})
			assert.ErrorIs(t, err, ErrInvalidDimensions)
			assert.Nil(t, m)
		})
	}
}

func TestPopulateMasksBoundaries(t *testing.T) {
	m, err := newMaze(Config{Rows: 3, Columns: 4, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)

	for cell := range m.All() {
		c := cell.Coordinate()
		assert.Equal(t, c.Row() != 0, cell.IsAllowed(North), "north of %s", c)
		assert.Equal(t, c.Row() != m.Rows()-1, cell.IsAllowed(South), "south of %s", c)
		assert.Equal(t, c.Column() != 0, cell.IsAllowed(West), "west of %s", c)
		assert.Equal(t, c.Column() != m.Columns()-1, cell.IsAllowed(East), "east of %s", c)
		assert.GreaterOrEqual(t, len(cell.AllowedDirections()), 2)
		assert.True(t, cell.IsAllowed(cell.CurrentDirection()))
	}
	assert.Empty(t, m.Anomalies())
}

func TestAllIsRowMajor(t *testing.T) {
	m := newSeeded(t, 3, 2, 7)

	var got []Coordinate
	for cell := range m.All() {
		got = append(got, cell.Coordinate())
	}
	want := []Coordinate{at(0, 0), at(1, 0), at(0, 1), at(1, 1), at(0, 2), at(1, 2)}
	assert.Equal(t, want, got)

	// restartable
	n := 0
	for range m.All() {
		n++
	}
	assert.Equal(t, 6, n)
}

func TestCellAtRange(t *testing.T) {
	m := newSeeded(t, 3, 4, 1)

	cell, err := m.CellAt(at(3, 2))
	require.NoError(t, err)
	assert.Equal(t, at(3, 2), cell.Coordinate())

	for _, c := range []Coordinate{at(4, 0), at(0, 3), at(-1, 0), at(0, -1), {floor: 1}} {
		_, err := m.CellAt(c)
		assert.ErrorIs(t, err, ErrOutOfRange, c.String())
	}
}

func TestGenerateBuildsSpanningTree(t *testing.T) {
	sizes := [][2]int{{2, 2}, {2, 7}, {5, 5}, {8, 3}, {12, 15}}
	for _, size := range sizes {
		for seed := int64(0); seed < 10; seed++ {
			rows, cols := size[0], size[1]
			m := newSeeded(t, rows, cols, seed)

			for cell := range m.All() {
				assert.True(t, cell.InMaze())
				assert.False(t, m.notInMaze.contains(cell))
			}
			assert.Equal(t, 0, m.notInMaze.len())

			edges := treeEdges(t, m)
			assert.Len(t, edges, rows*cols-1)

			// Following pointers from any cell reaches the root without
			// repeating a cell: no cycles and a single component.
			for cell := range m.All() {
				seen := map[Coordinate]bool{}
				cur := cell
				for cur.Coordinate() != m.Root() {
					require.False(t, seen[cur.Coordinate()], "cycle through %s", cur)
					seen[cur.Coordinate()] = true
					next, err := m.neighbor(cur)
					require.NoError(t, err)
					cur = next
				}
			}
		}
	}
}

func TestDeriveWalls(t *testing.T) {
	t.Run("Rejected before generation", func(t *testing.T) {
		m, err := newMaze(Config{Rows: 3, Columns: 3})
		require.NoError(t, err)
		assert.ErrorIs(t, m.deriveWalls(), ErrNotGenerated)
	})

	t.Run("Idempotent", func(t *testing.T) {
		m := newSeeded(t, 6, 9, 42)
		before := m.Layout()
		require.NoError(t, m.deriveWalls())
		assert.Equal(t, before, m.Layout())
	})

	t.Run("Shared faces agree and are open only on tree edges", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			m := newSeeded(t, 5, 6, seed)
			edges := treeEdges(t, m)

			open := 0
			for cell := range m.All() {
				for _, d := range []Direction{East, South} {
					nbrCoord := cell.Coordinate().Offset(d.To3D())
					nbr, err := m.CellAt(nbrCoord)
					if err != nil {
						continue
					}
					linked := edges[[2]Coordinate{cell.Coordinate(), nbrCoord}] ||
						edges[[2]Coordinate{nbrCoord, cell.Coordinate()}]

					assert.Equal(t, cell.HasWall(d), nbr.HasWall(d.Opposite()))
					assert.Equal(t, linked, !cell.HasWall(d))
					assert.Equal(t, linked, m.IsOpen(cell.Coordinate(), d))
					if linked {
						open++
					}
				}
			}
			assert.Equal(t, 5*6-1, open)
		}
	})

	t.Run("Outer boundary stays closed", func(t *testing.T) {
		for seed := int64(0); seed < 50; seed++ {
			m := newSeeded(t, 5, 5, seed)
			corner, err := m.CellAt(at(0, 0))
			require.NoError(t, err)
			assert.True(t, corner.HasWestWall())
			assert.True(t, corner.HasNorthWall())

			for cell := range m.All() {
				c := cell.Coordinate()
				if c.Row() == 0 {
					assert.True(t, cell.HasNorthWall())
				}
				if c.Row() == m.Rows()-1 {
					assert.True(t, cell.HasSouthWall())
				}
				if c.Column() == 0 {
					assert.True(t, cell.HasWestWall())
				}
				if c.Column() == m.Columns()-1 {
					assert.True(t, cell.HasEastWall())
				}
			}
		}
	})
}

func TestTwoByTwo(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		m := newSeeded(t, 2, 2, seed)

		open := 0
		for cell := range m.All() {
			solid := 0
			for _, d := range Directions {
				if cell.HasWall(d) {
					solid++
				} else {
					open++
				}
			}
			assert.GreaterOrEqual(t, solid, 2)
			assert.LessOrEqual(t, solid, 3)
		}
		// every connection opens two faces
		assert.Equal(t, 2*3, open)
	}
}

func TestDeterminism(t *testing.T) {
	a := newSeeded(t, 10, 14, 2024)
	b := newSeeded(t, 10, 14, 2024)
	assert.Equal(t, a.Root(), b.Root())
	assert.Equal(t, a.Layout(), b.Layout())
	assert.Equal(t, a.String(), b.String())

	c := newSeeded(t, 10, 14, 2025)
	assert.NotEqual(t, a.Layout(), c.Layout())
}

func TestIsOpenOutOfGrid(t *testing.T) {
	m := newSeeded(t, 3, 3, 5)
	assert.False(t, m.IsOpen(at(0, 0), West))
	assert.False(t, m.IsOpen(at(0, 0), North))
	assert.False(t, m.IsOpen(at(9, 9), South))
	assert.False(t, m.IsOpen(at(1, 1), Direction(7)))
}

func TestRedundantDisallowIsRecorded(t *testing.T) {
	logger := &recordingLogger{}
	m, err := newMaze(Config{Rows: 2, Columns: 2, Logger: logger})
	require.NoError(t, err)

	cell, err := m.CellAt(at(0, 0))
	require.NoError(t, err)
	require.NoError(t, m.disallow(cell, North))

	anomalies := m.Anomalies()
	require.Len(t, anomalies, 1)
	assert.Equal(t, at(0, 0), anomalies[0].Coordinate)
	assert.Equal(t, North, anomalies[0].Direction)
	assert.Len(t, logger.warnings, 1)
}

func TestLayout(t *testing.T) {
	m := newSeeded(t, 4, 3, 11)
	l := m.Layout()
	require.NoError(t, l.Validate())
	assert.Equal(t, m.Root().Column(), l.RootColumn)
	assert.Equal(t, m.Root().Row(), l.RootRow)

	cell, ok := l.Cell(2, 3)
	require.True(t, ok)
	src, _ := m.CellAt(at(2, 3))
	assert.Equal(t, src.CurrentDirection(), cell.Direction)
	assert.Equal(t, src.HasSouthWall(), cell.SouthWall)

	_, ok = l.Cell(3, 0)
	assert.False(t, ok)

	broken := l
	broken.Cells = broken.Cells[:5]
	assert.ErrorIs(t, broken.Validate(), ErrInvariant)
}

func TestLayoutValidateHugeDimensions(t *testing.T) {
	cells := make([]CellLayout, 4)
	for col := range cells {
		cells[col] = CellLayout{Column: col, Direction: West}
	}
	// Rows*Columns wraps to 4 in 64-bit arithmetic.
	l := Layout{Rows: 1<<62 + 1, Columns: 4, Cells: cells}
	assert.ErrorIs(t, l.Validate(), ErrInvariant)

	moved := Layout{Rows: 2, Columns: 2, Cells: []CellLayout{
		{Column: 0, Row: 0}, {Column: 1, Row: 0}, {Column: 2, Row: 0}, {Column: 1, Row: 1},
	}}
	assert.ErrorIs(t, moved.Validate(), ErrOutOfRange)
}

func TestString(t *testing.T) {
	m := newSeeded(t, 2, 3, 3)
	out := m.String()
	assert.Contains(t, out, "+---+---+---+\n")
	assert.Contains(t, out, " * ")
	assert.Len(t, out, (len("+---+---+---+")+1)*(2*2+1))
}

type recordingLogger struct {
	infos, warnings, errors []string
}

func (l *recordingLogger) Info(msg string)    { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warning(msg string) { l.warnings = append(l.warnings, msg) }
func (l *recordingLogger) Error(msg string)   { l.errors = append(l.errors, msg) }
