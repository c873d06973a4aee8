package game

import "github.com/inkstar/trigonometric-function/internal/trig"

// Clock holds the one scalar everything else is computed from: the
// angle parameter θ. It advances under animation and is nudged or set
// directly by pointer drags; every scene rerenders statelessly from it.
type Clock struct {
	theta  float64 // continuous, radians
	omega  float64 // rad/s
	paused bool
}

// Advance moves θ forward by ω·dt unless paused.
func (c *Clock) Advance(dt float64) {
	if !c.paused {
		c.theta += c.omega * dt
	}
}

// Nudge shifts θ by a drag-derived offset, paused or not.
func (c *Clock) Nudge(delta float64) {
	c.theta += delta
}

// Theta is the continuous angle, used by the wave plots.
func (c *Clock) Theta() float64 { return c.theta }

// Angle is θ wrapped to [0, 2π), used for display and the diagrams.
func (c *Clock) Angle() float64 { return trig.Wrap(c.theta) }

func (c *Clock) SetTheta(t float64) { c.theta = t }

func (c *Clock) Omega() float64 { return c.omega }

func (c *Clock) SetOmega(w float64) { c.omega = w }

func (c *Clock) Paused() bool { return c.paused }

func (c *Clock) SetPaused(p bool) { c.paused = p }

func (c *Clock) TogglePaused() { c.paused = !c.paused }

// Reset rewinds θ to zero, keeping speed and pause state.
func (c *Clock) Reset() { c.theta = 0 }
