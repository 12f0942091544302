package pcg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passableEdges counts unordered pairs of adjacent passable cells.
func passableEdges(g *Grid) int {
	count := 0
	for _, p := range g.NonEmptyCells() {
		for _, n := range []Position{p.Add(1, 0), p.Add(0, 1)} {
			if g.IsInside(n) && g.At(n).Passable() {
				count++
			}
		}
	}
	return count
}

func TestCarveMaze(t *testing.T) {
	floorOnly := NewGroundRoller(GroundRatios{})

	t.Run("9x9 lattice carves a perfect maze", func(t *testing.T) {
		g := NewGrid(9, 9)
		unions := CarveMaze(g, NewRand(42), floorOnly)
		assert.Equal(t, 24, unions)

		for j := range junctions(g) {
			assert.True(t, g.At(j).Passable(), "junction %v", j)
		}

		// 25 junctions plus one midpoint per union, forming a tree.
		cells := g.NonEmptyCells()
		require.Len(t, cells, 49)
		assert.Equal(t, len(cells)-1, passableEdges(g))
		assert.Equal(t, len(cells), reachable(g, Position{X: 0, Y: 0}))
	})

	t.Run("Odd cells are never carved", func(t *testing.T) {
		g := NewGrid(11, 7)
		CarveMaze(g, NewRand(3), floorOnly)
		for _, p := range g.NonEmptyCells() {
			assert.False(t, p.X%2 == 1 && p.Y%2 == 1, "carved %v", p)
		}
	})

	t.Run("Even dimensions leave the last row and column walled", func(t *testing.T) {
		g := NewGrid(10, 8)
		unions := CarveMaze(g, NewRand(7), floorOnly)
		assert.Equal(t, 5*4-1, unions)
		for y := 0; y < g.Height(); y++ {
			assert.True(t, g.At(Position{X: 9, Y: y}).Solid())
		}
	})

	t.Run("Same seed carves the same maze", func(t *testing.T) {
		a, b := NewGrid(21, 15), NewGrid(21, 15)
		roller := NewGroundRoller(GroundRatios{Ice: 0.3, Piques: 0.1})
		CarveMaze(a, NewRand(99), roller)
		CarveMaze(b, NewRand(99), roller)
		assert.True(t, a.Equal(b))
	})
}

func TestGroundRoller(t *testing.T) {
	t.Run("Zero ratios are all floor", func(t *testing.T) {
		roller := NewGroundRoller(GroundRatios{})
		rng := NewRand(1)
		for range 1000 {
			assert.Equal(t, Floor, roller.Roll(rng))
		}
	})

	t.Run("Ratios above one are scaled down", func(t *testing.T) {
		probs := NewGroundRoller(GroundRatios{Ice: 1, Piques: 1, DoorUp: 0.5, DoorDown: 0.5}).Probabilities()
		assert.InDelta(t, 1.0/3, probs[Ice], 1e-9)
		assert.InDelta(t, 1.0/3, probs[Piques], 1e-9)
		assert.InDelta(t, 1.0/6, probs[DoorUp], 1e-9)
		assert.InDelta(t, 1.0/6, probs[DoorDown], 1e-9)
		assert.InDelta(t, 0, probs[Floor], 1e-9)
	})

	t.Run("Remainder goes to floor", func(t *testing.T) {
		probs := NewGroundRoller(GroundRatios{Ice: 0.2, DoorDown: 0.1}).Probabilities()
		assert.InDelta(t, 0.7, probs[Floor], 1e-9)
		assert.InDelta(t, 0.2, probs[Ice], 1e-9)
		assert.InDelta(t, 0.1, probs[DoorDown], 1e-9)
	})

	t.Run("Carved ground converges to the configured ratios", func(t *testing.T) {
		ratios := GroundRatios{Ice: 0.2, Piques: 0.1, DoorUp: 0.05, DoorDown: 0.15}
		g := NewGrid(201, 201)
		CarveMaze(g, NewRand(2024), NewGroundRoller(ratios))

		counts := map[GroundType]int{}
		cells := g.NonEmptyCells()
		for _, p := range cells {
			counts[g.At(p).Ground]++
		}
		total := float64(len(cells))
		const tolerance = 0.02
		assert.InDelta(t, ratios.Ice, float64(counts[Ice])/total, tolerance)
		assert.InDelta(t, ratios.Piques, float64(counts[Piques])/total, tolerance)
		assert.InDelta(t, ratios.DoorUp, float64(counts[DoorUp])/total, tolerance)
		assert.InDelta(t, ratios.DoorDown, float64(counts[DoorDown])/total, tolerance)
		assert.InDelta(t, 0.5, float64(counts[Floor])/total, tolerance)
	})
}
