package main

import (
	"testing"

	"github.com/beka-birhanu/vinom-pcg/pcg"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(120, 40)
	t.Cleanup(s.Fini)
	return s
}

func seededParams() pcg.Parameters {
	p := pcg.DefaultParameters()
	p.Seed = 42
	return p
}

func TestViewerDraw(t *testing.T) {
	s := simScreen(t)
	v := newViewer(s, seededParams())
	v.draw()

	for y, row := range v.res.Grid.Rows() {
		x := 0
		for _, want := range row {
			got, _, _, _ := s.GetContent(x, y)
			assert.Equal(t, want, got, "cell %d,%d", x, y)
			x++
		}
	}

	start := v.res.Start
	_, _, style, _ := s.GetContent(start.X, start.Y)
	assert.Equal(t, overlayStyles[pcg.Start], style)
}

func TestViewerKeys(t *testing.T) {
	s := simScreen(t)
	v := newViewer(s, seededParams())

	assert.True(t, v.handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)))
	assert.Equal(t, 43, v.res.Seed)
	assert.Equal(t, 43, v.params.Seed)

	assert.True(t, v.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.GreaterOrEqual(t, v.res.Seed, 0)

	assert.False(t, v.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, v.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, wallStyle, styleFor(pcg.Cell{IsEmpty: true}))
	assert.Equal(t, groundStyles[pcg.Ice], styleFor(pcg.Cell{Ground: pcg.Ice}))
	assert.Equal(t, overlayStyles[pcg.Star], styleFor(pcg.Cell{Ground: pcg.Ice, Overlay: pcg.Star}))
}
