package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawCircularScene shows uniform circular motion with the horizontal
// and vertical projections that generate cosine and sine.
func (g *Game) drawCircularScene(screen *ebiten.Image) {
	cx, cy := g.diagramCenter()
	r := g.diagramRadius()
	theta := g.clock.Angle()

	mx, my := g.circular.Position(theta)
	px := cx + r*mx
	py := cy - r*my

	ext := r * 1.3
	vector.StrokeLine(screen, float32(cx-ext), float32(cy), float32(cx+ext), float32(cy), 1, colAxis, false)
	vector.StrokeLine(screen, float32(cx), float32(cy-ext), float32(cx), float32(cy+ext), 1, colAxis, false)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 1.5, colOutline, false)

	// Fading trail of where the point has been.
	const trailLen = 28
	for i := trailLen; i >= 1; i-- {
		t := theta - float64(i)*0.09
		tx := cx + r*math.Cos(t)
		ty := cy - r*math.Sin(t)
		fade := clamp01(1 - float64(i)/trailLen)
		cr, cg, cb := hsvToRgb(200+40*fade, 0.55, 0.45+0.5*fade)
		a := uint8(40 + 180*fade)
		vector.DrawFilledCircle(screen, float32(tx), float32(ty), 3, color.RGBA{R: cr, G: cg, B: cb, A: a}, false)
	}

	// Projections: dashed drop lines and markers on the axes.
	dashedLine(screen, px, py, px, cy, colSinFaint())
	dashedLine(screen, px, py, cx, py, colCosFaint())
	if g.cbCos.Checked {
		vector.DrawFilledCircle(screen, float32(px), float32(cy), 5, colCos, false)
	}
	if g.cbSin.Checked {
		vector.DrawFilledCircle(screen, float32(cx), float32(py), 5, colSin, false)
	}

	vector.StrokeLine(screen, float32(cx), float32(cy), float32(px), float32(py), 2, colPoint, false)
	vector.DrawFilledCircle(screen, float32(px), float32(py), 6, colPoint, false)

	if g.cbLabels.Checked {
		if g.cbCos.Checked {
			ebitenutil.DebugPrintAt(screen, "x = R cos(t)", int(px)-40, int(cy)+10)
		}
		if g.cbSin.Checked {
			ebitenutil.DebugPrintAt(screen, "y = R sin(t)", int(cx)-95, int(py)-8)
		}
	}

	var traces []trace
	if g.cbSin.Checked {
		traces = append(traces, trace{f: sinFunc, color: colSin, label: "sin"})
	}
	if g.cbCos.Checked {
		traces = append(traces, trace{f: cosFunc, color: colCos, label: "cos"})
	}
	g.drawPanel(screen, g.wavePanel(), traces)
}

func colSinFaint() color.RGBA { return color.RGBA{R: colSin.R, G: colSin.G, B: colSin.B, A: 120} }

func colCosFaint() color.RGBA { return color.RGBA{R: colCos.R, G: colCos.G, B: colCos.B, A: 120} }

// dashedLine strokes a dashed segment between two points.
func dashedLine(screen *ebiten.Image, x0, y0, x1, y1 float64, c color.RGBA) {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 {
		return
	}
	const dash = 6.0
	steps := int(length / dash)
	for i := 0; i < steps; i += 2 {
		t0 := float64(i) * dash / length
		t1 := math.Min(float64(i+1)*dash/length, 1)
		vector.StrokeLine(screen,
			float32(x0+(x1-x0)*t0), float32(y0+(y1-y0)*t0),
			float32(x0+(x1-x0)*t1), float32(y0+(y1-y0)*t1),
			1, c, false)
	}
}
