package pcg

import (
	"fmt"
	"strings"
)

const (
	MinDimension = 3
	MaxDimension = 256
)

// Position addresses a cell by column X and row Y. Row 0 is the top row.
type Position struct {
	X int `json:"x" yaml:"x" bson:"x"`
	Y int `json:"y" yaml:"y" bson:"y"`
}

// Add returns p shifted by dx, dy.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Directions in the fixed order used by every neighbor query.
var (
	Left  = Position{X: -1, Y: 0}
	Right = Position{X: 1, Y: 0}
	Up    = Position{X: 0, Y: -1}
	Down  = Position{X: 0, Y: 1}

	cardinals = [4]Position{Left, Right, Up, Down}
)

// Grid is a dense, row-major array of cells shared by every generation stage.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates an all-wall grid. Dimensions are clamped into
// [MinDimension, MaxDimension].
func NewGrid(width, height int) *Grid {
	width = clampDimension(width)
	height = clampDimension(height)

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{IsEmpty: true, Ground: Floor, Overlay: None}
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

func clampDimension(n int) int {
	return min(max(n, MinDimension), MaxDimension)
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// IsInside reports whether p lies within the grid bounds.
func (g *Grid) IsInside(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index returns the row-major index of p. It panics if p is outside the grid.
func (g *Grid) Index(p Position) int {
	if !g.IsInside(p) {
		panic(fmt.Sprintf("pcg: position %v out of range [%dx%d]", p, g.width, g.height))
	}
	return p.Y*g.width + p.X
}

// PositionOf returns the position at row-major index i.
func (g *Grid) PositionOf(i int) Position {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Sprintf("pcg: index %d out of range [0,%d)", i, len(g.cells)))
	}
	return Position{X: i % g.width, Y: i / g.width}
}

// At returns a copy of the cell at p.
func (g *Grid) At(p Position) Cell {
	return g.cells[g.Index(p)]
}

// Ref returns a mutable reference to the cell at p.
func (g *Grid) Ref(p Position) *Cell {
	return &g.cells[g.Index(p)]
}

// Set overwrites the cell at p.
func (g *Grid) Set(p Position, c Cell) {
	g.cells[g.Index(p)] = c
}

// Neighbors4 returns the in-bounds cardinal neighbors of p in the order
// left, right, up, down.
func (g *Grid) Neighbors4(p Position) []Position {
	result := make([]Position, 0, 4)
	for _, d := range cardinals {
		n := p.Add(d.X, d.Y)
		if g.IsInside(n) {
			result = append(result, n)
		}
	}
	return result
}

// CellsWhere returns, in row-major order, every position whose cell satisfies pred.
// It scans the whole grid.
func (g *Grid) CellsWhere(pred func(Position, Cell) bool) []Position {
	var result []Position
	for i, c := range g.cells {
		p := g.PositionOf(i)
		if pred(p, c) {
			result = append(result, p)
		}
	}
	return result
}

// CellsWithGround returns every passable position with the given ground.
func (g *Grid) CellsWithGround(ground GroundType) []Position {
	return g.CellsWhere(func(_ Position, c Cell) bool {
		return c.Passable() && c.Ground == ground
	})
}

// CellsWithOverlay returns every position carrying the given overlay.
func (g *Grid) CellsWithOverlay(overlay OverlayType) []Position {
	return g.CellsWhere(func(_ Position, c Cell) bool {
		return c.Overlay == overlay
	})
}

// NonEmptyCells returns every carved position.
func (g *Grid) NonEmptyCells() []Position {
	return g.CellsWhere(func(_ Position, c Cell) bool {
		return c.Passable()
	})
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the ASCII rendering, one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		sb.Reset()
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y*g.width+x].glyph())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n") + "\n"
}
