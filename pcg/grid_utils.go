package pcg

import (
	"math"
	"math/rand/v2"
)

const endPlacementAttempts = 16

// NewRand returns the deterministic generator used for one generation call.
func NewRand(seed int) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// ResolveSeed returns seed unchanged, or a freshly drawn non-negative seed
// when seed is RandomSeed.
func ResolveSeed(seed int) int {
	if seed != RandomSeed {
		return seed
	}
	return rand.IntN(math.MaxInt32)
}

// Shuffle permutes s in place: for each i, swap with a uniform index in [i, n).
func Shuffle[T any](s []T, rng *rand.Rand) {
	n := len(s)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(n-i)
		s[i], s[j] = s[j], s[i]
	}
}

// CountSolidNeighbors counts the cardinal neighbors of p that are walls.
// Out-of-bounds neighbors count as walls.
func CountSolidNeighbors(g *Grid, p Position) int {
	count := 0
	for _, d := range cardinals {
		n := p.Add(d.X, d.Y)
		if !g.IsInside(n) || g.At(n).Solid() {
			count++
		}
	}
	return count
}

// CountPassableNeighbors counts the in-bounds cardinal neighbors of p that are carved.
func CountPassableNeighbors(g *Grid, p Position) int {
	count := 0
	for _, n := range g.Neighbors4(p) {
		if g.At(n).Passable() {
			count++
		}
	}
	return count
}

// IsAdjacentTo reports whether p equals or touches (8-way) any of targets.
func IsAdjacentTo(p Position, targets ...Position) bool {
	for _, t := range targets {
		if abs(p.X-t.X) <= 1 && abs(p.Y-t.Y) <= 1 {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ForcePassable carves p as Floor regardless of its previous content.
// Positions outside the grid are ignored.
func ForcePassable(g *Grid, p Position) {
	if !g.IsInside(p) {
		return
	}
	c := g.Ref(p)
	c.IsEmpty = false
	c.Ground = Floor
}

// MarkOverlay tags p with o and forces it to passable Floor.
func MarkOverlay(g *Grid, p Position, o OverlayType) {
	ForcePassable(g, p)
	c := g.Ref(p)
	c.Overlay = o
	c.IsEnd = o == End
}

// StartPosition returns the spawn cell (horizontal center of the bottom row)
// and the cell directly above it.
func StartPosition(g *Grid) (start, above Position) {
	start = Position{X: g.Width() / 2, Y: g.Height() - 1}
	return start, start.Add(Up.X, Up.Y)
}

// EndMaxRow returns the exclusive row bound for the exit.
func EndMaxRow(height int, percent float64) int {
	return max(1, int(math.Floor(float64(height)*percent/100)))
}

// EndPosition resolves the exit. A random exit is drawn in the top rows
// bounded by percent; a fixed exit is clamped into the same rows.
// The exit never lands on the start or the cell above it.
func EndPosition(g *Grid, rng *rand.Rand, randomEnd bool, fixed Position, percent float64) Position {
	maxY := min(EndMaxRow(g.Height(), percent), g.Height())
	start, above := StartPosition(g)
	reserved := func(p Position) bool {
		return p == start || p == above
	}

	if !randomEnd {
		p := Position{
			X: min(max(fixed.X, 0), g.Width()-1),
			Y: min(max(fixed.Y, 0), maxY-1),
		}
		if !reserved(p) {
			return p
		}
	} else {
		for range endPlacementAttempts {
			p := Position{X: rng.IntN(g.Width()), Y: rng.IntN(maxY)}
			if !reserved(p) {
				return p
			}
		}
	}

	for y := 0; y < maxY; y++ {
		for x := 0; x < g.Width(); x++ {
			if p := (Position{X: x, Y: y}); !reserved(p) {
				return p
			}
		}
	}
	return Position{}
}

// AnchorToMaze carves a Floor path from p to its nearest junction (both
// coordinates even), horizontally first. Forced cells on odd rows or columns
// would otherwise be cut off from the carved lattice.
func AnchorToMaze(g *Grid, p Position) {
	if !g.IsInside(p) {
		return
	}
	target := Position{X: p.X &^ 1, Y: p.Y &^ 1}
	cur := p
	for {
		if c := g.Ref(cur); c.Solid() {
			c.IsEmpty = false
			c.Ground = Floor
		}
		switch {
		case cur.X > target.X:
			cur.X--
		case cur.Y > target.Y:
			cur.Y--
		default:
			return
		}
	}
}
