package pcg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReintroduceLoops(t *testing.T) {
	floorOnly := NewGroundRoller(GroundRatios{})

	t.Run("Zero chance adds nothing", func(t *testing.T) {
		g := NewGrid(9, 9)
		CarveMaze(g, NewRand(1), floorOnly)
		before := g.Clone()
		assert.Equal(t, 0, ReintroduceLoops(g, NewRand(1), 0, 0, floorOnly))
		assert.True(t, before.Equal(g))
	})

	t.Run("Full chance opens every walled junction pair", func(t *testing.T) {
		g := NewGrid(9, 9)
		CarveMaze(g, NewRand(1), floorOnly)
		// 40 lattice edges, 24 already used by the spanning tree.
		assert.Equal(t, 16, ReintroduceLoops(g, NewRand(1), 1, 0, floorOnly))
		for _, e := range junctionEdges(g) {
			assert.True(t, g.At(e.mid()).Passable())
		}
	})

	t.Run("Max loops bounds the additions", func(t *testing.T) {
		g := NewGrid(9, 9)
		CarveMaze(g, NewRand(1), floorOnly)
		assert.Equal(t, 5, ReintroduceLoops(g, NewRand(1), 1, 5, floorOnly))
	})

	t.Run("Loops keep every cell reachable", func(t *testing.T) {
		g := NewGrid(15, 15)
		CarveMaze(g, NewRand(8), floorOnly)
		ReintroduceLoops(g, NewRand(8), 0.5, 0, floorOnly)
		assert.Equal(t, len(g.NonEmptyCells()), reachable(g, Position{X: 0, Y: 0}))
	})
}

func TestErodeEmptyTiles(t *testing.T) {
	floorOnly := NewGroundRoller(GroundRatios{})

	t.Run("Zero ratio is a no-op", func(t *testing.T) {
		g := NewGrid(9, 9)
		CarveMaze(g, NewRand(2), floorOnly)
		assert.Equal(t, 0, ErodeEmptyTiles(g, NewRand(2), 0))
	})

	t.Run("Eroded cells keep walls around them and stay connected", func(t *testing.T) {
		g := NewGrid(15, 15)
		CarveMaze(g, NewRand(5), floorOnly)
		protected := Position{X: 7, Y: 14}

		eroded := ErodeEmptyTiles(g, NewRand(5), 0.5, protected)
		assert.Positive(t, eroded)

		empties := g.CellsWithGround(Empty)
		assert.Len(t, empties, eroded)
		for _, p := range empties {
			assert.False(t, IsAdjacentTo(p, protected), "eroded near protected cell: %v", p)
			assert.GreaterOrEqual(t, CountSolidNeighbors(g, p)+countEmptyNeighbors(g, p), ErosionMinSolidNeighbors)
		}
		assert.Equal(t, len(g.NonEmptyCells()), reachable(g, Position{X: 0, Y: 0}))
	})

	t.Run("A wall without solid neighbors is never eroded", func(t *testing.T) {
		g := openGrid(3, 3)
		g.Ref(Position{X: 1, Y: 1}).IsEmpty = true
		assert.Equal(t, 0, ErodeEmptyTiles(g, NewRand(1), 1))
		assert.True(t, g.At(Position{X: 1, Y: 1}).Solid())
	})
}

// countEmptyNeighbors counts neighbors eroded after p was, which were walls
// when p was checked.
func countEmptyNeighbors(g *Grid, p Position) int {
	count := 0
	for _, n := range g.Neighbors4(p) {
		if c := g.At(n); c.Passable() && c.Ground == Empty {
			count++
		}
	}
	return count
}
