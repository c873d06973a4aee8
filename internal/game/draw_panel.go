package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/inkstar/trigonometric-function/internal/config"
	"github.com/inkstar/trigonometric-function/internal/plot"
)

// trace is one curve in a wave panel.
type trace struct {
	f     plot.Func
	color color.RGBA
	label string
}

// drawPanel renders the wave panel: frame, grid, zero axis, the sampled
// polylines and a marker on each curve at the current angle (the right
// edge of the window).
func (g *Game) drawPanel(screen *ebiten.Image, vp plot.Viewport, traces []trace) {
	vector.StrokeRect(screen, float32(vp.X), float32(vp.Y), float32(vp.W), float32(vp.H), 1, colOutline, false)

	if g.cbGrid.Checked {
		for _, gl := range plot.Grid(vp) {
			x, _ := vp.ToScreen(gl.Theta, 0)
			vector.StrokeLine(screen, float32(x), float32(vp.Y), float32(x), float32(vp.Y+vp.H), 1, colGrid, false)
			if g.cbLabels.Checked {
				ebitenutil.DebugPrintAt(screen, gl.Label, int(x)+3, int(vp.Y)+3)
			}
		}
	}

	_, y0 := vp.ToScreen(vp.ThetaMin, 0)
	vector.StrokeLine(screen, float32(vp.X), float32(y0), float32(vp.X+vp.W), float32(y0), 1, colAxis, false)

	for _, tr := range traces {
		for _, line := range plot.Sample(vp, tr.f, config.PlotSteps) {
			for i := 1; i < len(line); i++ {
				vector.StrokeLine(screen,
					float32(line[i-1].X), float32(line[i-1].Y),
					float32(line[i].X), float32(line[i].Y),
					2, tr.color, false)
			}
		}
		if v, ok := tr.f(vp.ThetaMax); ok && v >= vp.ValMin && v <= vp.ValMax {
			x, y := vp.ToScreen(vp.ThetaMax, v)
			vector.DrawFilledCircle(screen, float32(x), float32(y), config.MarkerSize, tr.color, false)
		}
	}

	if g.cbLabels.Checked {
		y := int(vp.Y) + 6
		for _, tr := range traces {
			vector.DrawFilledRect(screen, float32(vp.X)+8, float32(y)+4, 10, 10, tr.color, false)
			ebitenutil.DebugPrintAt(screen, tr.label, int(vp.X)+22, y)
			y += 16
		}
	}
}
