// Package motion evaluates the closed-form mechanical analogues of the
// trig functions. Everything here is a pure function of the shared angle
// parameter; nothing is integrated.
package motion

import "math"

// SpringMass is a block on a spring released from amplitude A at θ = 0.
type SpringMass struct {
	Amplitude float64
}

// Displacement is the offset from equilibrium at angle θ: A·cos θ.
func (s SpringMass) Displacement(theta float64) float64 {
	return s.Amplitude * math.Cos(theta)
}

// Circular is a point moving on a circle at constant angular rate.
type Circular struct {
	Radius float64
}

// Position returns the point in mathematical coordinates (y up).
func (c Circular) Position(theta float64) (x, y float64) {
	return c.Radius * math.Cos(theta), c.Radius * math.Sin(theta)
}

// Pendulum is the small-angle pendulum: its swing angle follows
// φ(θ) = φmax·cos θ, the same cosine the spring traces.
type Pendulum struct {
	Length   float64
	MaxAngle float64 // radians, from the vertical
}

// Angle returns the swing angle φ at parameter θ.
func (p Pendulum) Angle(theta float64) float64 {
	return p.MaxAngle * math.Cos(theta)
}

// BobPosition returns the bob offset from the pivot, y up, φ measured
// from straight down.
func (p Pendulum) BobPosition(theta float64) (x, y float64) {
	phi := p.Angle(theta)
	return p.Length * math.Sin(phi), -p.Length * math.Cos(phi)
}
