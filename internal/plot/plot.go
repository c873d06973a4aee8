// Package plot converts functions of the angle parameter into
// screen-space polylines for the wave panels.
package plot

import "math"

// Point is a screen-space coordinate.
type Point struct {
	X, Y float64
}

// Func evaluates a curve at angle theta. ok reports whether the value is
// defined there; the sampler breaks the polyline where it is not.
type Func func(theta float64) (v float64, ok bool)

// Viewport maps (angle, value) pairs into a pixel rectangle. Angles run
// left to right from ThetaMin to ThetaMax, values bottom to top from
// ValMin to ValMax.
type Viewport struct {
	X, Y, W, H         float64
	ThetaMin, ThetaMax float64
	ValMin, ValMax     float64
}

// ToScreen maps an (angle, value) pair to pixels.
func (vp Viewport) ToScreen(theta, val float64) (x, y float64) {
	tx := (theta - vp.ThetaMin) / (vp.ThetaMax - vp.ThetaMin)
	ty := (val - vp.ValMin) / (vp.ValMax - vp.ValMin)
	return vp.X + tx*vp.W, vp.Y + vp.H - ty*vp.H
}

// ThetaAt inverts the horizontal mapping: the angle shown at pixel x.
func (vp Viewport) ThetaAt(x float64) float64 {
	return vp.ThetaMin + (x-vp.X)/vp.W*(vp.ThetaMax-vp.ThetaMin)
}

// PixelsPerRadian is the horizontal scale, used to turn drag deltas into
// angle offsets.
func (vp Viewport) PixelsPerRadian() float64 {
	return vp.W / (vp.ThetaMax - vp.ThetaMin)
}

// Contains reports whether the pixel lies inside the panel rectangle.
func (vp Viewport) Contains(x, y float64) bool {
	return x >= vp.X && x <= vp.X+vp.W && y >= vp.Y && y <= vp.Y+vp.H
}

// Sample evaluates f at steps+1 evenly spaced angles across the viewport
// window and returns the polylines to draw. The line breaks wherever f is
// undefined or the value leaves the vertical range: a curve must never
// appear to cross its own asymptote.
func Sample(vp Viewport, f Func, steps int) [][]Point {
	if steps < 1 {
		return nil
	}
	var out [][]Point
	var cur []Point
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for i := 0; i <= steps; i++ {
		theta := vp.ThetaMin + (vp.ThetaMax-vp.ThetaMin)*float64(i)/float64(steps)
		v, ok := f(theta)
		if !ok || math.IsNaN(v) || v < vp.ValMin || v > vp.ValMax {
			flush()
			continue
		}
		x, y := vp.ToScreen(theta, v)
		cur = append(cur, Point{X: x, Y: y})
	}
	flush()
	return out
}

// GridLine is a vertical rule at a multiple of π/2 within the window.
type GridLine struct {
	Theta float64
	Label string
}

// Labels stick to the debug font's ASCII glyphs.
var quarterLabels = [4]string{"0", "pi/2", "pi", "3pi/2"}

// Grid returns the π/2-multiple rules visible in the viewport window,
// labeled by their position within the turn.
func Grid(vp Viewport) []GridLine {
	const step = math.Pi / 2
	var out []GridLine
	k := int(math.Ceil(vp.ThetaMin / step))
	for ; float64(k)*step <= vp.ThetaMax; k++ {
		q := ((k % 4) + 4) % 4
		out = append(out, GridLine{Theta: float64(k) * step, Label: quarterLabels[q]})
	}
	return out
}
