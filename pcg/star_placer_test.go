package pcg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceStars(t *testing.T) {
	t.Run("Places the requested count apart when space allows", func(t *testing.T) {
		g := openGrid(15, 15)
		stars := PlaceStars(g, NewRand(4), 4, 3)
		require.Len(t, stars, 4)
		assert.Len(t, g.CellsWithOverlay(Star), 4)
		for i := range stars {
			for j := i + 1; j < len(stars); j++ {
				assert.GreaterOrEqual(t, distance(stars[i], stars[j]), 3.0)
			}
		}
	})

	t.Run("Relaxes distance to reach the count", func(t *testing.T) {
		// A 3x3 room cannot hold five stars ten cells apart.
		g := openGrid(3, 3)
		stars := PlaceStars(g, NewRand(4), 5, 10)
		assert.Len(t, stars, 5)
		assert.Len(t, g.CellsWithOverlay(Star), 5)
	})

	t.Run("Stops when candidates run out", func(t *testing.T) {
		g := NewGrid(5, 5)
		for x := 0; x < 5; x++ {
			g.Ref(Position{X: x, Y: 2}).IsEmpty = false
		}
		MarkOverlay(g, Position{X: 0, Y: 2}, Start)
		MarkOverlay(g, Position{X: 4, Y: 2}, End)

		stars := PlaceStars(g, NewRand(1), 10, 0)
		assert.Len(t, stars, 3)
		assert.Equal(t, Start, g.At(Position{X: 0, Y: 2}).Overlay)
		assert.Equal(t, End, g.At(Position{X: 4, Y: 2}).Overlay)
	})

	t.Run("Never places on walls", func(t *testing.T) {
		g := NewGrid(9, 9)
		CarveMaze(g, NewRand(12), NewGroundRoller(GroundRatios{}))
		for _, p := range PlaceStars(g, NewRand(12), 8, 2) {
			assert.True(t, g.At(p).Passable())
		}
	})

	t.Run("Zero count places nothing", func(t *testing.T) {
		g := openGrid(5, 5)
		assert.Empty(t, PlaceStars(g, NewRand(1), 0, 2))
		assert.Empty(t, g.CellsWithOverlay(Star))
	})
}
