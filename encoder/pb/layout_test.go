package pb

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func generated(t *testing.T, rows, cols int, seed int64) maze.Layout {
	t.Helper()
	m, err := maze.New(maze.Config{Rows: rows, Columns: cols, Rand: rand.New(rand.NewSource(seed))})
	require.NoError(t, err)
	return m.Layout()
}

func TestLayoutCodec(t *testing.T) {
	t.Run("Decode returns the encoded layout", func(t *testing.T) {
		l := generated(t, 7, 5, 31)
		b, err := Marshal(l)
		require.NoError(t, err)

		got, err := Unmarshal(b)
		require.NoError(t, err)
		assert.Equal(t, l, got)
	})

	t.Run("Unknown fields are skipped", func(t *testing.T) {
		l := generated(t, 2, 2, 1)
		b, err := Protobuf{}.Marshal(l)
		require.NoError(t, err)

		b = protowire.AppendTag(b, 99, protowire.BytesType)
		b = protowire.AppendBytes(b, []byte("future"))
		b = appendVarintField(b, 100, 7)

		got, err := Protobuf{}.Unmarshal(b)
		require.NoError(t, err)
		assert.Equal(t, l, got)
	})

	t.Run("Truncated payload fails", func(t *testing.T) {
		b, err := Marshal(generated(t, 3, 3, 2))
		require.NoError(t, err)

		_, err = Unmarshal(b[:len(b)-3])
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Incomplete layout fails validation", func(t *testing.T) {
		var b []byte
		b = appendVarintField(b, layoutRowsField, 3)
		b = appendVarintField(b, layoutColumnsField, 3)
		_, err := Unmarshal(b)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Oversized dimensions are rejected", func(t *testing.T) {
		var b []byte
		b = appendVarintField(b, layoutRowsField, 1<<62+1)
		b = appendVarintField(b, layoutColumnsField, 4)
		for col := uint64(0); col < 4; col++ {
			var cell []byte
			cell = appendVarintField(cell, coordColumnField, col)
			cell = appendVarintField(cell, coordRowField, 0)
			cell = appendVarintField(cell, cellWallsField, 15)
			b = protowire.AppendTag(b, layoutCellField, protowire.BytesType)
			b = protowire.AppendBytes(b, cell)
		}

		_, err := Unmarshal(b)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Oversized cell coordinate is rejected", func(t *testing.T) {
		l := generated(t, 2, 2, 1)
		b, err := Marshal(l)
		require.NoError(t, err)

		var cell []byte
		cell = appendVarintField(cell, coordColumnField, 1<<40)
		b = protowire.AppendTag(b, layoutCellField, protowire.BytesType)
		b = protowire.AppendBytes(b, cell)

		_, err = Unmarshal(b)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Invalid layout is not encoded", func(t *testing.T) {
		_, err := Marshal(maze.Layout{Rows: 2, Columns: 2})
		assert.ErrorIs(t, err, maze.ErrInvariant)
	})
}

func TestWallMask(t *testing.T) {
	assert.Equal(t, uint64(0), wallMask(maze.CellLayout{}))
	assert.Equal(t, northBit|westBit, wallMask(maze.CellLayout{NorthWall: true, WestWall: true}))
	assert.Equal(t, uint64(15), wallMask(maze.CellLayout{NorthWall: true, SouthWall: true, EastWall: true, WestWall: true}))
}
