package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawSpringScene shows a mass hanging on a spring, its displacement
// from equilibrium tracing the cosine in the wave panel.
func (g *Game) drawSpringScene(screen *ebiten.Image) {
	cx, cy := g.diagramCenter()
	r := g.diagramRadius()
	theta := g.clock.Angle()

	anchorY := cy - r*1.2
	ampPx := r * 0.45
	massY := cy + ampPx*g.spring.Displacement(theta)

	// Ceiling with hatches.
	vector.StrokeLine(screen, float32(cx-60), float32(anchorY), float32(cx+60), float32(anchorY), 2, colOutline, false)
	for x := cx - 60; x <= cx+60; x += 12 {
		vector.StrokeLine(screen, float32(x), float32(anchorY), float32(x-8), float32(anchorY-10), 1, colGrid, false)
	}

	// Spring coils: a zigzag from anchor to the mass.
	const coils = 12
	coilW := 18.0
	prevX, prevY := cx, anchorY
	for i := 1; i <= coils; i++ {
		t := float64(i) / float64(coils+1)
		x := cx + coilW
		if i%2 == 0 {
			x = cx - coilW
		}
		y := anchorY + t*(massY-anchorY)
		vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y), 2, colOutline, false)
		prevX, prevY = x, y
	}
	vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(cx), float32(massY), 2, colOutline, false)

	// Equilibrium line, dashed.
	for x := cx - r*0.8; x < cx+r*0.8; x += 14 {
		vector.StrokeLine(screen, float32(x), float32(cy), float32(x+7), float32(cy), 1, colAxis, false)
	}

	// The mass.
	vector.DrawFilledRect(screen, float32(cx-22), float32(massY), 44, 32, colCos, false)
	vector.StrokeRect(screen, float32(cx-22), float32(massY), 44, 32, 1, colPoint, false)

	if g.cbLabels.Checked {
		ebitenutil.DebugPrintAt(screen, "equilibrium", int(cx+r*0.8)+6, int(cy)-8)
		ebitenutil.DebugPrintAt(screen, "y = A cos(t)", int(cx)+34, int(massY)+8)
	}

	g.drawPanel(screen, g.wavePanel(), []trace{
		{f: func(th float64) (float64, bool) { return g.spring.Displacement(th), true }, color: colCos, label: "y/A"},
	})
}
