/*
Package pcg provides deterministic procedural generation of maze levels.

A level is a dense grid of cells. Generation carves a perfect maze over the
even-coordinate junction lattice with randomized Kruskal, reintroduces a
bounded number of loops, places the start and exit, scatters stars, erodes
optional empty tiles and finally lays out 3-cell moving platforms.

Every stage mutates the same Grid in order and draws from one seeded
generator, so an identical seed and parameter set always yields an identical
grid. Nothing is shared between calls, which makes Generate safe to call from
concurrent goroutines.
*/
package pcg

// Result is a finished level and the seed that produced it.
type Result struct {
	Grid       *Grid
	Seed       int
	Start      Position
	StartAbove Position
	End        Position
	Stars      []Position
	Platforms  []Platform
	Unions     int
	Loops      int
	Eroded     int
}

// Generate runs the full pipeline for p. Out-of-range parameters are
// normalized rather than rejected. A RandomSeed is replaced with a fresh seed,
// reported in Result.Seed for replay.
func Generate(p Parameters) Result {
	p = p.Normalize()
	seed := ResolveSeed(p.Seed)
	rng := NewRand(seed)

	grid := NewGrid(p.Width, p.Height)
	roller := NewGroundRoller(p.GroundRatios())

	unions := CarveMaze(grid, rng, roller)
	loops := ReintroduceLoops(grid, rng, p.LoopChance, p.MaxLoops, roller)

	start, above := StartPosition(grid)
	end := EndPosition(grid, rng, p.RandomEnd, p.EndPosition, p.EndMaxHeightPercent)
	below := end.Add(Down.X, Down.Y)
	for _, pos := range []Position{start, above, end, below} {
		ForcePassable(grid, pos)
		AnchorToMaze(grid, pos)
	}
	MarkOverlay(grid, start, Start)
	MarkOverlay(grid, end, End)

	stars := PlaceStars(grid, rng, p.StarCount, p.MinStarDistance)

	eroded := 0
	if p.Erosion != nil {
		eroded = ErodeEmptyTiles(grid, rng, p.Erosion.Ratio, start, above, end, below)
	}

	platforms := PlaceMovingPlatforms(grid, rng, p.MovingPlatformRatio, above, below)

	return Result{
		Grid:       grid,
		Seed:       seed,
		Start:      start,
		StartAbove: above,
		End:        end,
		Stars:      stars,
		Platforms:  platforms,
		Unions:     unions,
		Loops:      loops,
		Eroded:     eroded,
	}
}
