// Package analysis computes reachability metrics over generated levels.
package analysis

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/beka-birhanu/vinom-pcg/pcg"
)

// Report summarizes a generated level.
type Report struct {
	Passable     int            `json:"passable"`
	Unreachable  int            `json:"unreachable"`
	StartToEnd   int            `json:"start_to_end"` // -1 when the exit cannot be reached
	Stars        int            `json:"stars"`
	Platforms    int            `json:"platforms"`
	Loops        int            `json:"loops"`
	Eroded       int            `json:"eroded"`
	GroundCounts map[string]int `json:"ground_counts"`
}

// gridPath implements paths.Pather over the passable cells of a grid.
type gridPath struct {
	grid *pcg.Grid
	nbs  paths.Neighbors
}

func (gp *gridPath) passable(p gruid.Point) bool {
	pos := pcg.Position{X: p.X, Y: p.Y}
	return gp.grid.IsInside(pos) && gp.grid.At(pos).Passable()
}

func (gp *gridPath) Neighbors(p gruid.Point) []gruid.Point {
	return gp.nbs.Cardinal(p, gp.passable)
}

func newPathRange(g *pcg.Grid) *paths.PathRange {
	return paths.NewPathRange(gruid.NewRange(0, 0, g.Width(), g.Height()))
}

func point(p pcg.Position) gruid.Point {
	return gruid.Point{X: p.X, Y: p.Y}
}

// Unreachable returns the passable cells not connected to from.
func Unreachable(g *pcg.Grid, from pcg.Position) []pcg.Position {
	pr := newPathRange(g)
	pr.CCMap(&gridPath{grid: g}, point(from))
	return g.CellsWhere(func(p pcg.Position, c pcg.Cell) bool {
		return c.Passable() && pr.CCMapAt(point(p)) == -1
	})
}

// Connected reports whether every passable cell is reachable from from.
func Connected(g *pcg.Grid, from pcg.Position) bool {
	return len(Unreachable(g, from)) == 0
}

// Distance returns the number of cardinal steps between from and to through
// passable cells.
func Distance(g *pcg.Grid, from, to pcg.Position) (int, bool) {
	if !g.IsInside(from) || !g.IsInside(to) || !g.At(from).Passable() {
		return 0, false
	}
	maxCost := g.Len()
	pr := newPathRange(g)
	pr.BreadthFirstMap(&gridPath{grid: g}, []gruid.Point{point(from)}, maxCost)
	d := pr.BreadthFirstMapAt(point(to))
	if d > maxCost {
		return 0, false
	}
	return d, true
}

// AnalyzeGrid builds a Report from the grid alone. Start, exit and stars are
// read from the overlays and platforms from their center cells. Loops and
// Eroded are left zero because they are not recoverable from the cells.
func AnalyzeGrid(g *pcg.Grid) Report {
	passable := g.NonEmptyCells()

	counts := make(map[string]int)
	platforms := 0
	for _, p := range passable {
		ground := g.At(p).Ground
		counts[ground.String()]++
		if ground.IsMovingPlatform() {
			platforms++
		}
	}

	report := Report{
		Passable:     len(passable),
		Unreachable:  len(passable),
		StartToEnd:   -1,
		Stars:        len(g.CellsWithOverlay(pcg.Star)),
		Platforms:    platforms,
		GroundCounts: counts,
	}

	starts := g.CellsWithOverlay(pcg.Start)
	if len(starts) == 0 {
		return report
	}
	report.Unreachable = len(Unreachable(g, starts[0]))
	if ends := g.CellsWithOverlay(pcg.End); len(ends) > 0 {
		if d, ok := Distance(g, starts[0], ends[0]); ok {
			report.StartToEnd = d
		}
	}
	return report
}

// Analyze builds a Report for a generation result.
func Analyze(res pcg.Result) Report {
	report := AnalyzeGrid(res.Grid)
	report.Loops = res.Loops
	report.Eroded = res.Eroded
	return report
}
