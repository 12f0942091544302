package main

import (
	"fmt"

	"github.com/beka-birhanu/vinom-pcg/analysis"
	"github.com/beka-birhanu/vinom-pcg/pcg"
	"github.com/gdamore/tcell/v2"
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.Color(240))
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

var groundStyles = map[pcg.GroundType]tcell.Style{
	pcg.Floor:           tcell.StyleDefault.Foreground(tcell.ColorLightGray),
	pcg.Ice:             tcell.StyleDefault.Foreground(tcell.Color(51)),
	pcg.MovingPlatformH: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	pcg.MovingPlatformV: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	pcg.PlatformSide:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
	pcg.Piques:          tcell.StyleDefault.Foreground(tcell.ColorRed),
	pcg.DoorUp:          tcell.StyleDefault.Foreground(tcell.ColorPurple),
	pcg.DoorDown:        tcell.StyleDefault.Foreground(tcell.ColorPurple),
	pcg.Empty:           tcell.StyleDefault,
}

var overlayStyles = map[pcg.OverlayType]tcell.Style{
	pcg.Start: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	pcg.End:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	pcg.Star:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
}

func styleFor(c pcg.Cell) tcell.Style {
	if c.Solid() {
		return wallStyle
	}
	if s, ok := overlayStyles[c.Overlay]; ok {
		return s
	}
	return groundStyles[c.Ground]
}

type viewer struct {
	screen tcell.Screen
	params pcg.Parameters
	res    pcg.Result
	report analysis.Report
}

func newViewer(screen tcell.Screen, params pcg.Parameters) *viewer {
	v := &viewer{screen: screen, params: params}
	v.generate(params.Seed)
	return v
}

func (v *viewer) generate(seed int) {
	v.params.Seed = seed
	v.res = pcg.Generate(v.params)
	v.params.Seed = v.res.Seed
	v.report = analysis.Analyze(v.res)
}

func (v *viewer) status() string {
	return fmt.Sprintf(" seed %d  %dx%d  stars %d  platforms %d  loops %d  eroded %d  path %d  [n]ext [r]andom [q]uit ",
		v.res.Seed, v.res.Grid.Width(), v.res.Grid.Height(), v.report.Stars, v.report.Platforms,
		v.report.Loops, v.report.Eroded, v.report.StartToEnd)
}

func (v *viewer) draw() {
	v.screen.Clear()
	rows := v.res.Grid.Rows()
	for y, row := range rows {
		x := 0
		for _, r := range row {
			c := v.res.Grid.At(pcg.Position{X: x, Y: y})
			v.screen.SetContent(x, y, r, nil, styleFor(c))
			x++
		}
	}
	for x, r := range []rune(v.status()) {
		v.screen.SetContent(x, len(rows)+1, r, nil, statusStyle)
	}
	v.screen.Show()
}

// handle applies one event and reports whether the viewer should keep running.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'n':
				next := v.res.Seed + 1
				if next == pcg.RandomSeed {
					next++
				}
				v.generate(next)
			case 'r':
				v.generate(pcg.RandomSeed)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) run() {
	v.draw()
	for {
		if !v.handle(v.screen.PollEvent()) {
			return
		}
		v.draw()
	}
}
