package analysis

import (
	"testing"

	"github.com/beka-birhanu/vinom-pcg/pcg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corridor() *pcg.Grid {
	g := pcg.NewGrid(5, 3)
	for x := 0; x < 5; x++ {
		g.Ref(pcg.Position{X: x, Y: 1}).IsEmpty = false
	}
	return g
}

func TestDistance(t *testing.T) {
	t.Run("Corridor distance", func(t *testing.T) {
		d, ok := Distance(corridor(), pcg.Position{X: 0, Y: 1}, pcg.Position{X: 4, Y: 1})
		require.True(t, ok)
		assert.Equal(t, 4, d)
	})

	t.Run("Walls block", func(t *testing.T) {
		g := corridor()
		g.Ref(pcg.Position{X: 2, Y: 1}).IsEmpty = true
		_, ok := Distance(g, pcg.Position{X: 0, Y: 1}, pcg.Position{X: 4, Y: 1})
		assert.False(t, ok)
	})

	t.Run("Outside or solid source is unreachable", func(t *testing.T) {
		g := corridor()
		_, ok := Distance(g, pcg.Position{X: -1, Y: 1}, pcg.Position{X: 4, Y: 1})
		assert.False(t, ok)
		_, ok = Distance(g, pcg.Position{X: 0, Y: 0}, pcg.Position{X: 4, Y: 1})
		assert.False(t, ok)
	})
}

func TestConnected(t *testing.T) {
	t.Run("Isolated pocket is reported", func(t *testing.T) {
		g := corridor()
		g.Ref(pcg.Position{X: 3, Y: 1}).IsEmpty = true
		assert.False(t, Connected(g, pcg.Position{X: 0, Y: 1}))
		assert.Equal(t, []pcg.Position{{X: 4, Y: 1}}, Unreachable(g, pcg.Position{X: 0, Y: 1}))
	})

	t.Run("Generated levels are connected", func(t *testing.T) {
		for seed := range 30 {
			p := pcg.DefaultParameters()
			p.Width, p.Height = 12+seed%7, 9+seed%5
			p.Seed = seed
			p.LoopChance = 0.3
			p.MovingPlatformRatio = 0.25
			p.Erosion = &pcg.ErosionParams{Ratio: 0.4}
			res := pcg.Generate(p)
			assert.True(t, Connected(res.Grid, res.Start), "seed %d\n%s", seed, res.Grid)
		}
	})
}

func TestAnalyze(t *testing.T) {
	p := pcg.DefaultParameters()
	p.Seed = 42
	p.IceRatio = 0.3
	res := pcg.Generate(p)
	report := Analyze(res)

	assert.Equal(t, len(res.Grid.NonEmptyCells()), report.Passable)
	assert.Zero(t, report.Unreachable)
	assert.Positive(t, report.StartToEnd)
	assert.Equal(t, len(res.Stars), report.Stars)

	total := 0
	for _, n := range report.GroundCounts {
		total += n
	}
	assert.Equal(t, report.Passable, total)
}

func TestAnalyzeGrid(t *testing.T) {
	t.Run("Matches the result report except generation counters", func(t *testing.T) {
		p := pcg.DefaultParameters()
		p.Width, p.Height = 15, 13
		p.Seed = 9
		p.LoopChance = 0.4
		p.MovingPlatformRatio = 0.2
		res := pcg.Generate(p)

		full := Analyze(res)
		fromGrid := AnalyzeGrid(res.Grid.Clone())
		assert.Equal(t, len(res.Platforms), fromGrid.Platforms)
		assert.Zero(t, fromGrid.Loops)

		fromGrid.Loops, fromGrid.Eroded = full.Loops, full.Eroded
		assert.Equal(t, full, fromGrid)
	})

	t.Run("Grid without a start", func(t *testing.T) {
		report := AnalyzeGrid(corridor())
		assert.Equal(t, 5, report.Passable)
		assert.Equal(t, 5, report.Unreachable)
		assert.Equal(t, -1, report.StartToEnd)
	})
}
