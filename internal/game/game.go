// Package game runs the interactive loop: one shared angle clock, four
// scenes rendering from it, and the control surface along the bottom.
package game

import (
	"image"
	"math"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/inkstar/trigonometric-function/internal/audio"
	"github.com/inkstar/trigonometric-function/internal/config"
	"github.com/inkstar/trigonometric-function/internal/motion"
	"github.com/inkstar/trigonometric-function/internal/plot"
	"github.com/inkstar/trigonometric-function/internal/trig"
	"github.com/inkstar/trigonometric-function/internal/ui"
)

const sampleRate = beep.SampleRate(44100)

type Game struct {
	width, height int

	clock Clock
	scene Scene

	spring   motion.SpringMass
	circular motion.Circular
	pend     motion.Pendulum

	cbSin    *ui.Checkbox
	cbCos    *ui.Checkbox
	cbTan    *ui.Checkbox
	cbGrid   *ui.Checkbox
	cbLabels *ui.Checkbox

	speed        *ui.Slider
	sceneButtons [sceneCount]*ui.Button
	resetButton  *ui.Button
	angleField   *ui.NumField

	player *audio.Player

	// drag state
	dragPoint bool
	dragPanel bool
	dragLastX int

	runes []rune

	shotPending bool
	shot        *image.RGBA

	lastErr error
}

func New(s config.Settings) (*Game, error) {
	scene, err := ParseScene(s.Scene)
	if err != nil {
		return nil, err
	}

	g := &Game{
		width:  s.Width,
		height: s.Height,
		scene:  scene,

		spring:   motion.SpringMass{Amplitude: 1},
		circular: motion.Circular{Radius: 1},
		pend:     motion.Pendulum{Length: 1, MaxAngle: 0.6},
	}
	g.clock.SetOmega(s.Speed)
	g.clock.SetPaused(s.Paused)
	g.layoutControls()
	g.speed.Value = s.Speed

	// The visualization is fully usable without sound, so a missing audio
	// device only shows up on the status line.
	if player, err := audio.NewPlayer(sampleRate, s.Speed, s.Mute); err != nil {
		g.lastErr = err
	} else {
		g.player = player
	}

	return g, nil
}

// layoutControls positions the widget rows inside the HUD strip.
func (g *Game) layoutControls() {
	hudTop := g.height - config.HUDHeight
	row1 := hudTop + 10
	row2 := row1 + config.ButtonH + 10

	x := config.Margin
	for i := range g.sceneButtons {
		g.sceneButtons[i] = &ui.Button{
			X: x, Y: row1, W: config.ButtonW, H: config.ButtonH,
			Label: Scene(i).String(),
		}
		x += config.ButtonW + 8
	}
	g.resetButton = &ui.Button{X: x + 12, Y: row1, W: 70, H: config.ButtonH, Label: "reset"}

	x = config.Margin
	for _, cb := range []struct {
		label   string
		checked bool
		dst     **ui.Checkbox
	}{
		{"sin", true, &g.cbSin},
		{"cos", true, &g.cbCos},
		{"tan", false, &g.cbTan},
		{"grid", true, &g.cbGrid},
		{"labels", true, &g.cbLabels},
	} {
		*cb.dst = &ui.Checkbox{X: x, Y: row2 + 3, Size: config.CheckSize, Label: cb.label, Checked: cb.checked}
		x += config.CheckSize + 8*len(cb.label) + 26
	}

	g.speed = &ui.Slider{
		X: x + 30, Y: row2, W: config.SliderW, H: config.SliderH,
		Min: config.SpeedMin, Max: config.SpeedMax,
	}
	g.angleField = &ui.NumField{
		X: g.width - config.Margin - config.FieldW, Y: row2,
		W: config.FieldW, H: config.FieldH,
	}
}

func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	p := ui.Pointer{
		X: mx, Y: my,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	g.angleField.Click(p)
	if g.angleField.Active {
		g.runes = ebiten.AppendInputChars(g.runes[:0])
		g.angleField.HandleRunes(g.runes)
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			g.angleField.Backspace()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
			if deg, ok := g.angleField.Commit(); ok {
				g.clock.SetTheta(trig.DegToRad(deg))
			}
			// Non-numeric entries are dropped; the angle stays put.
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.angleField.Cancel()
		}
	} else if err := g.handleKeys(); err != nil {
		return err
	}

	g.updateWidgets(p)
	g.updateDrag(p)

	// A drag owns the angle; animation resumes on release.
	if !g.dragPoint && !g.dragPanel {
		g.clock.Advance(1.0 / config.TPS)
	}

	if g.shot != nil {
		if err := g.saveShot(); err != nil {
			g.lastErr = err
		}
	}

	return nil
}

func (g *Game) handleKeys() error {
	just := inpututil.IsKeyJustPressed

	if just(ebiten.KeyEscape) || just(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if just(ebiten.KeySpace) {
		g.clock.TogglePaused()
	}
	if just(ebiten.KeyTab) {
		g.scene = g.scene.Next()
	}
	for i, k := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4} {
		if just(k) {
			g.scene = Scene(i)
		}
	}
	if just(ebiten.KeyS) {
		g.cbSin.Checked = !g.cbSin.Checked
	}
	if just(ebiten.KeyC) {
		g.cbCos.Checked = !g.cbCos.Checked
	}
	if just(ebiten.KeyT) {
		g.cbTan.Checked = !g.cbTan.Checked
	}
	if just(ebiten.KeyG) {
		g.cbGrid.Checked = !g.cbGrid.Checked
	}
	if just(ebiten.KeyL) {
		g.cbLabels.Checked = !g.cbLabels.Checked
	}
	if just(ebiten.KeyM) && g.player != nil {
		g.player.SetMuted(!g.player.Muted())
	}
	if just(ebiten.KeyR) {
		g.clock.Reset()
	}
	if just(ebiten.KeyP) {
		g.shotPending = true
	}
	return nil
}

func (g *Game) updateWidgets(p ui.Pointer) {
	for i, b := range g.sceneButtons {
		if b.Update(p) {
			g.scene = Scene(i)
		}
	}
	if g.resetButton.Update(p) {
		g.clock.Reset()
	}
	if g.speed.Update(p) {
		g.clock.SetOmega(g.speed.Value)
		if g.player != nil {
			g.player.SetSpeed(g.speed.Value)
		}
	}
	g.cbSin.Update(p)
	g.cbCos.Update(p)
	g.cbTan.Update(p)
	g.cbGrid.Update(p)
	g.cbLabels.Update(p)
}

// updateDrag implements the two drag interactions: grabbing the rotating
// point sets θ from its direction, dragging inside the wave panel
// converts horizontal motion into an angle offset.
func (g *Game) updateDrag(p ui.Pointer) {
	if p.JustReleased {
		g.dragPoint = false
		g.dragPanel = false
	}

	vp := g.wavePanel()
	if p.JustPressed && p.Y < g.height-config.HUDHeight {
		if g.sceneHasPoint() {
			px, py := g.pointPos()
			if math.Hypot(float64(p.X)-px, float64(p.Y)-py) <= config.GrabRadius {
				g.dragPoint = true
			}
		}
		if !g.dragPoint && vp.Contains(float64(p.X), float64(p.Y)) {
			g.dragPanel = true
			g.dragLastX = p.X
		}
	}

	if g.dragPoint && p.Pressed {
		cx, cy := g.diagramCenter()
		g.clock.SetTheta(math.Atan2(cy-float64(p.Y), float64(p.X)-cx))
	}
	if g.dragPanel && p.Pressed {
		if dx := p.X - g.dragLastX; dx != 0 {
			// Dragging the trace to the right rewinds time.
			g.clock.Nudge(-float64(dx) / vp.PixelsPerRadian())
			g.dragLastX = p.X
		}
	}
}

// sceneHasPoint reports whether the current scene shows a directly
// draggable point on a circle.
func (g *Game) sceneHasPoint() bool {
	return g.scene == SceneCircle || g.scene == SceneCircular
}

// pointPos is the screen position of the rotating point.
func (g *Game) pointPos() (float64, float64) {
	cx, cy := g.diagramCenter()
	r := g.diagramRadius()
	theta := g.clock.Angle()
	return cx + r*math.Cos(theta), cy - r*math.Sin(theta)
}

func (g *Game) diagramCenter() (float64, float64) {
	return float64(g.width) / 4, float64(g.height-config.HUDHeight) / 2
}

func (g *Game) diagramRadius() float64 {
	w := float64(g.width)/2 - 2*config.Margin
	h := float64(g.height-config.HUDHeight) - 2*config.Margin
	return math.Min(w, h) * 0.38
}

// wavePanel is the plot viewport for the current scene, always showing
// the trailing full turn ending at the current θ.
func (g *Game) wavePanel() plot.Viewport {
	theta := g.clock.Theta()

	valMax := 1.25
	switch {
	case g.scene == SceneCircle && g.cbTan.Checked:
		valMax = config.TanClip
	case g.scene == ScenePendulum:
		valMax = g.pend.MaxAngle * 1.25
	}

	return plot.Viewport{
		X: float64(g.width) / 2,
		Y: config.Margin,
		W: float64(g.width)/2 - 2*config.Margin,
		H: float64(g.height-config.HUDHeight) - 2*config.Margin,

		ThetaMin: theta - trig.TwoPi,
		ThetaMax: theta,
		ValMin:   -valMax,
		ValMax:   valMax,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBg)

	switch g.scene {
	case SceneCircle:
		g.drawCircleScene(screen)
	case SceneSpring:
		g.drawSpringScene(screen)
	case SceneCircular:
		g.drawCircularScene(screen)
	case ScenePendulum:
		g.drawPendulumScene(screen)
	}

	g.drawHUD(screen)

	if g.shotPending {
		g.shotPending = false
		g.captureFrame(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
