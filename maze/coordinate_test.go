package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate(t *testing.T) {
	t.Run("Negative axis is rejected", func(t *testing.T) {
		for _, axes := range [][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}} {
			_, err := NewCoordinate(axes[0], axes[1], axes[2])
			assert.ErrorIs(t, err, ErrNegativeAxis)
		}
	})

	t.Run("Offset moves one unit on one axis", func(t *testing.T) {
		c, err := NewCoordinate(3, 4, 1)
		require.NoError(t, err)

		tests := []struct {
			dir                Direction3D
			col, row, floorIdx int
		}{
			{North3D, 3, 3, 1},
			{South3D, 3, 5, 1},
			{East3D, 4, 4, 1},
			{West3D, 2, 4, 1},
			{Up3D, 3, 4, 2},
			{Down3D, 3, 4, 0},
		}
		for _, tt := range tests {
			t.Run(tt.dir.String(), func(t *testing.T) {
				got := c.Offset(tt.dir)
				assert.Equal(t, tt.col, got.Column())
				assert.Equal(t, tt.row, got.Row())
				assert.Equal(t, tt.floorIdx, got.Floor())
			})
		}
		// the receiver is untouched
		assert.Equal(t, 3, c.Column())
		assert.Equal(t, 4, c.Row())
	})

	t.Run("Offset does not clamp", func(t *testing.T) {
		origin, err := NewCoordinate(0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, -1, origin.Offset(West3D).Column())
		assert.Equal(t, -1, origin.Offset(North3D).Row())
		assert.Equal(t, -1, origin.Offset(Down3D).Floor())
	})

	t.Run("Equal coordinates share a map key", func(t *testing.T) {
		a, _ := NewCoordinate(1, 2, 0)
		b, _ := NewCoordinate(0, 2, 0)
		seen := map[Coordinate]bool{a: true}
		assert.True(t, seen[b.Offset(East3D)])
		assert.Equal(t, a, b.Offset(East3D))
	})

	t.Run("Compass directions map to opposite steps", func(t *testing.T) {
		c, _ := NewCoordinate(5, 5, 0)
		for _, d := range Directions {
			assert.Equal(t, c, c.Offset(d.To3D()).Offset(d.Opposite().To3D()), d.String())
		}
	})
}
