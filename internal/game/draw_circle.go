package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/inkstar/trigonometric-function/internal/config"
	"github.com/inkstar/trigonometric-function/internal/trig"
)

// drawCircleScene shows the unit circle with the geometric construction
// of sin, cos and tan for the current angle, next to the wave panel.
func (g *Game) drawCircleScene(screen *ebiten.Image) {
	cx, cy := g.diagramCenter()
	r := g.diagramRadius()
	theta := g.clock.Angle()

	px := cx + r*math.Cos(theta)
	py := cy - r*math.Sin(theta)

	// Axes through the center.
	ext := r * 1.3
	vector.StrokeLine(screen, float32(cx-ext), float32(cy), float32(cx+ext), float32(cy), 1, colAxis, false)
	vector.StrokeLine(screen, float32(cx), float32(cy-ext), float32(cx), float32(cy+ext), 1, colAxis, false)

	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 1.5, colOutline, false)

	// cos: horizontal leg on the x axis; sin: vertical leg up to P.
	if g.cbCos.Checked {
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(px), float32(cy), 3, colCos, false)
	}
	if g.cbSin.Checked {
		vector.StrokeLine(screen, float32(px), float32(cy), float32(px), float32(py), 3, colSin, false)
	}

	// tan lives on the vertical tangent line at x = r: the secant
	// through P meets it at height r·tan θ.
	if g.cbTan.Checked {
		tx := cx + r
		vector.StrokeLine(screen, float32(tx), float32(cy-ext), float32(tx), float32(cy+ext), 1, colGrid, false)
		if t, ok := trig.Tan(theta); ok && math.Abs(t) <= config.TanClip {
			ty := cy - r*t
			vector.StrokeLine(screen, float32(cx), float32(cy), float32(tx), float32(ty), 1, colGrid, false)
			vector.StrokeLine(screen, float32(tx), float32(cy), float32(tx), float32(ty), 3, colTan, false)
		}
	}

	// Radius and the draggable point, on top of the construction lines.
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(px), float32(py), 2, colPoint, false)
	vector.DrawFilledCircle(screen, float32(px), float32(py), 6, colPoint, false)

	if g.cbLabels.Checked {
		ebitenutil.DebugPrintAt(screen, "P", int(px)+8, int(py)-16)
		if g.cbCos.Checked {
			ebitenutil.DebugPrintAt(screen, "cos", int((cx+px)/2)-10, int(cy)+6)
		}
		if g.cbSin.Checked {
			ebitenutil.DebugPrintAt(screen, "sin", int(px)+6, int((cy+py)/2)-8)
		}
		if g.cbTan.Checked {
			ebitenutil.DebugPrintAt(screen, "tan", int(cx+r)+6, int(cy)-20)
		}
	}

	var traces []trace
	if g.cbSin.Checked {
		traces = append(traces, trace{f: sinFunc, color: colSin, label: "sin"})
	}
	if g.cbCos.Checked {
		traces = append(traces, trace{f: cosFunc, color: colCos, label: "cos"})
	}
	if g.cbTan.Checked {
		traces = append(traces, trace{f: tanFunc, color: colTan, label: "tan"})
	}
	g.drawPanel(screen, g.wavePanel(), traces)
}

func sinFunc(theta float64) (float64, bool) { return math.Sin(theta), true }

func cosFunc(theta float64) (float64, bool) { return math.Cos(theta), true }

func tanFunc(theta float64) (float64, bool) { return trig.Tan(theta) }
