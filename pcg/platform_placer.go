package pcg

import (
	"math"
	"math/rand/v2"
)

// Orientation is the travel axis of a moving platform.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Platform is a 3-cell moving platform centered on Center.
type Platform struct {
	Center      Position    `json:"center"`
	Orientation Orientation `json:"orientation"`
}

// Cells returns the platform footprint: the two flanks around the center.
func (p Platform) Cells() [3]Position {
	d := Right
	if p.Orientation == Vertical {
		d = Down
	}
	return [3]Position{
		p.Center.Add(-d.X, -d.Y),
		p.Center,
		p.Center.Add(d.X, d.Y),
	}
}

// PlatformCap returns how many platforms fit a grid with walkable free cells.
func PlatformCap(walkable int, ratio float64) int {
	return max(1, int(math.RoundToEven(float64(walkable)*ratio/3)))
}

// PlaceMovingPlatforms greedily places non-overlapping 3-cell platforms on
// walkable cells with walkable neighbors on both sides of an axis.
// Protected positions are pre-reserved so no footprint covers them.
// A non-positive ratio disables the stage and places no platform at all,
// even though PlatformCap would return 1 for it. Any positive ratio places
// up to PlatformCap platforms.
func PlaceMovingPlatforms(g *Grid, rng *rand.Rand, ratio float64, protected ...Position) []Platform {
	if ratio <= 0 {
		return nil
	}

	walkable := func(p Position) bool {
		return g.IsInside(p) && g.At(p).Walkable()
	}

	free := g.CellsWhere(func(_ Position, c Cell) bool {
		return c.Walkable()
	})
	limit := PlatformCap(len(free), ratio)

	var candidates []Platform
	for _, p := range free {
		if walkable(p.Add(Left.X, Left.Y)) && walkable(p.Add(Right.X, Right.Y)) {
			candidates = append(candidates, Platform{Center: p, Orientation: Horizontal})
		}
		if walkable(p.Add(Up.X, Up.Y)) && walkable(p.Add(Down.X, Down.Y)) {
			candidates = append(candidates, Platform{Center: p, Orientation: Vertical})
		}
	}
	Shuffle(candidates, rng)

	reserved := make([]bool, g.Len())
	for _, p := range protected {
		if g.IsInside(p) {
			reserved[g.Index(p)] = true
		}
	}
	var placed []Platform
	for _, cand := range candidates {
		if len(placed) >= limit {
			break
		}
		cells := cand.Cells()
		if reserved[g.Index(cells[0])] || reserved[g.Index(cells[1])] || reserved[g.Index(cells[2])] {
			continue
		}
		for _, p := range cells {
			reserved[g.Index(p)] = true
		}

		center := g.Ref(cand.Center)
		if cand.Orientation == Horizontal {
			center.Ground = MovingPlatformH
		} else {
			center.Ground = MovingPlatformV
		}
		for _, side := range []Position{cells[0], cells[2]} {
			if c := g.Ref(side); !c.Ground.IsMovingPlatform() {
				c.Ground = PlatformSide
			}
		}
		placed = append(placed, cand)
	}
	return placed
}
