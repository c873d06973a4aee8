package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawPendulumScene shows the small-angle pendulum; its swing angle φ
// follows the same cosine as the spring.
func (g *Game) drawPendulumScene(screen *ebiten.Image) {
	cx, cy := g.diagramCenter()
	r := g.diagramRadius()
	theta := g.clock.Angle()

	pivotX := cx
	pivotY := cy - r
	lenPx := r * 1.6

	bx, by := g.pend.BobPosition(theta)
	scale := lenPx / g.pend.Length
	bobX := pivotX + bx*scale
	bobY := pivotY - by*scale // motion y is up, screen y is down

	// Mount.
	vector.StrokeLine(screen, float32(pivotX-40), float32(pivotY), float32(pivotX+40), float32(pivotY), 2, colOutline, false)

	// Swing extremes and the rest position, as faint guides.
	for _, phi := range []float64{-g.pend.MaxAngle, 0, g.pend.MaxAngle} {
		gx := pivotX + lenPx*math.Sin(phi)
		gy := pivotY + lenPx*math.Cos(phi)
		dashedLine(screen, pivotX, pivotY, gx, gy, colGrid)
	}

	// Rod and bob.
	vector.StrokeLine(screen, float32(pivotX), float32(pivotY), float32(bobX), float32(bobY), 2, colPoint, false)
	vector.DrawFilledCircle(screen, float32(pivotX), float32(pivotY), 4, colOutline, false)
	vector.DrawFilledCircle(screen, float32(bobX), float32(bobY), 12, colSin, false)
	vector.StrokeCircle(screen, float32(bobX), float32(bobY), 12, 1, colPoint, false)

	if g.cbLabels.Checked {
		ebitenutil.DebugPrintAt(screen, "phi = phi0 cos(t)", int(pivotX)+48, int(pivotY)+8)
	}

	g.drawPanel(screen, g.wavePanel(), []trace{
		{f: func(th float64) (float64, bool) { return g.pend.Angle(th), true }, color: colSin, label: "phi (rad)"},
	})
}
