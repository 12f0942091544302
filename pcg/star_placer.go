package pcg

import (
	"math"
	"math/rand/v2"
)

// PlaceStars tags up to count passable, untagged cells with the Star overlay.
// The first pass keeps every star at least minDistance (Euclidean) from the
// others; if that leaves the count short, a second pass ignores distance.
func PlaceStars(g *Grid, rng *rand.Rand, count int, minDistance float64) []Position {
	if count <= 0 {
		return nil
	}

	candidates := g.CellsWhere(func(_ Position, c Cell) bool {
		return c.Walkable()
	})
	Shuffle(candidates, rng)

	placed := make([]Position, 0, min(count, len(candidates)))
	taken := make([]bool, len(candidates))

	for i, p := range candidates {
		if len(placed) >= count {
			break
		}
		if farFromAll(p, placed, minDistance) {
			placed = append(placed, p)
			taken[i] = true
		}
	}

	for i, p := range candidates {
		if len(placed) >= count {
			break
		}
		if !taken[i] {
			placed = append(placed, p)
			taken[i] = true
		}
	}

	for _, p := range placed {
		g.Ref(p).Overlay = Star
	}
	return placed
}

func farFromAll(p Position, others []Position, minDistance float64) bool {
	for _, o := range others {
		if distance(p, o) < minDistance {
			return false
		}
	}
	return true
}

func distance(a, b Position) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
