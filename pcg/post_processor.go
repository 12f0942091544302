package pcg

import (
	"math"
	"math/rand/v2"
)

// ErosionMinSolidNeighbors is the number of walls an eroded cell must keep
// around it. It is a tuning heuristic that stops erosion from opening rooms.
const ErosionMinSolidNeighbors = 2

// ReintroduceLoops carves walled-off midpoints between carved junctions.
// Each candidate pair is accepted independently with probability chance,
// in the same row-major order the maze edges are enumerated. A positive
// maxLoops bounds the number of connections added.
func ReintroduceLoops(g *Grid, rng *rand.Rand, chance float64, maxLoops int, roller GroundRoller) int {
	if chance <= 0 {
		return 0
	}

	added := 0
	for _, e := range junctionEdges(g) {
		if maxLoops > 0 && added >= maxLoops {
			break
		}
		m := e.mid()
		if g.At(e.a).Solid() || g.At(e.b).Solid() || g.At(m).Passable() {
			continue
		}
		if rng.Float64() >= chance {
			continue
		}
		c := g.Ref(m)
		c.IsEmpty = false
		c.Ground = roller.Roll(rng)
		added++
	}
	return added
}

// ErodeEmptyTiles turns a share of the wall cells bordering the maze into
// passable Empty cells. Cells near the protected positions are never touched,
// and a cell is only eroded while it keeps ErosionMinSolidNeighbors walls
// around it.
func ErodeEmptyTiles(g *Grid, rng *rand.Rand, ratio float64, protected ...Position) int {
	if ratio <= 0 {
		return 0
	}

	candidates := g.CellsWhere(func(p Position, c Cell) bool {
		return c.Solid() && !IsAdjacentTo(p, protected...) && CountPassableNeighbors(g, p) > 0
	})
	Shuffle(candidates, rng)

	target := int(math.Round(clampUnit(ratio) * float64(len(candidates))))
	eroded := 0
	for _, p := range candidates {
		if eroded >= target {
			break
		}
		if CountSolidNeighbors(g, p) < ErosionMinSolidNeighbors {
			continue
		}
		c := g.Ref(p)
		c.IsEmpty = false
		c.Ground = Empty
		eroded++
	}
	return eroded
}
