package pcg

import (
	"iter"
	"math/rand/v2"
)

// GroundRatios holds the per-cell probability of each hazard ground.
type GroundRatios struct {
	Ice      float64
	Piques   float64
	DoorUp   float64
	DoorDown float64
}

// GroundRoller assigns ground types to carved cells by weighted roll.
type GroundRoller struct {
	thresholds [4]float64
}

// rollOrder is the fixed order in which cumulative thresholds are tested.
var rollOrder = [4]GroundType{Ice, Piques, DoorDown, DoorUp}

// NewGroundRoller normalizes r so the hazard share never exceeds 1;
// the remainder is Floor.
func NewGroundRoller(r GroundRatios) GroundRoller {
	weights := [4]float64{
		clampUnit(r.Ice),
		clampUnit(r.Piques),
		clampUnit(r.DoorDown),
		clampUnit(r.DoorUp),
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum > 1 {
		for i := range weights {
			weights[i] /= sum
		}
	}

	var roller GroundRoller
	acc := 0.0
	for i, w := range weights {
		acc += w
		roller.thresholds[i] = acc
	}
	return roller
}

// Roll draws one uniform value and maps it to a ground type.
func (gr GroundRoller) Roll(rng *rand.Rand) GroundType {
	v := rng.Float64()
	for i, t := range gr.thresholds {
		if v < t {
			return rollOrder[i]
		}
	}
	return Floor
}

// Probabilities returns the effective share of each ground type.
func (gr GroundRoller) Probabilities() map[GroundType]float64 {
	probs := make(map[GroundType]float64, 5)
	prev := 0.0
	for i, t := range gr.thresholds {
		probs[rollOrder[i]] = t - prev
		prev = t
	}
	probs[Floor] = 1 - prev
	return probs
}

// edge joins two junctions two cells apart.
type edge struct {
	a, b Position
}

func (e edge) mid() Position {
	return Position{X: (e.a.X + e.b.X) / 2, Y: (e.a.Y + e.b.Y) / 2}
}

// junctions yields every position with both coordinates even, row-major.
func junctions(g *Grid) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for y := 0; y < g.Height(); y += 2 {
			for x := 0; x < g.Width(); x += 2 {
				if !yield(Position{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// junctionEdges lists, row-major, the right and lower neighbor pair of every junction.
func junctionEdges(g *Grid) []edge {
	var edges []edge
	for j := range junctions(g) {
		if r := j.Add(2, 0); g.IsInside(r) {
			edges = append(edges, edge{a: j, b: r})
		}
		if d := j.Add(0, 2); g.IsInside(d) {
			edges = append(edges, edge{a: j, b: d})
		}
	}
	return edges
}

func carve(g *Grid, p Position) {
	c := g.Ref(p)
	c.IsEmpty = false
	c.Ground = Floor
}

// CarveMaze carves a perfect maze over the junction lattice with randomized
// Kruskal, then rolls a ground type for every carved cell.
// It returns the number of successful unions.
func CarveMaze(g *Grid, rng *rand.Rand, roller GroundRoller) int {
	edges := junctionEdges(g)
	Shuffle(edges, rng)

	uf := NewUnionFind(junctions(g))
	unions := 0
	for _, e := range edges {
		if !uf.Union(e.a, e.b) {
			continue
		}
		carve(g, e.a)
		carve(g, e.mid())
		carve(g, e.b)
		unions++
	}

	for i := range g.cells {
		if c := &g.cells[i]; c.Passable() {
			c.Ground = roller.Roll(rng)
		}
	}
	return unions
}
