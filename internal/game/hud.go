package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/inkstar/trigonometric-function/internal/config"
)

// drawHUD renders the control strip and the status line.
func (g *Game) drawHUD(screen *ebiten.Image) {
	hudTop := g.height - config.HUDHeight
	vector.StrokeLine(screen, 0, float32(hudTop), float32(g.width), float32(hudTop), 1, colOutline, false)

	for i, b := range g.sceneButtons {
		if Scene(i) == g.scene {
			vector.StrokeRect(screen, float32(b.X)-2, float32(b.Y)-2, float32(b.W)+4, float32(b.H)+4, 2, colPoint, false)
		}
		b.Draw(screen)
	}
	g.resetButton.Draw(screen)

	g.cbSin.Draw(screen)
	g.cbCos.Draw(screen)
	g.cbTan.Draw(screen)
	g.cbGrid.Draw(screen)
	g.cbLabels.Draw(screen)

	g.speed.Draw(screen)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("speed = %.2f rad/s", g.speed.Value), g.speed.X, g.speed.Y+config.SliderH+2)

	g.angleField.Draw(screen)
	ebitenutil.DebugPrintAt(screen, "deg:", g.angleField.X-34, g.angleField.Y+3)

	// Status line, top left.
	status := fmt.Sprintf("%s  |  %s", g.scene, formatAngle(g.clock.Theta()))
	if g.clock.Paused() {
		status += "  |  paused (Space to run)"
	}
	if g.player != nil && g.player.Muted() {
		status += "  |  muted"
	}
	if g.lastErr != nil {
		status += "  |  error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 8)

	help := "drag point/wave: set angle  Space: pause  Tab/1-4: scene  S C T: traces  G: grid  L: labels  M: mute  R: reset  P: save PNG  Q: quit"
	ebitenutil.DebugPrintAt(screen, help, 12, g.height-20)
}
