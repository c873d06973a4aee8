// Package trig holds the small amount of angle arithmetic shared by the
// scenes and the plot sampler.
package trig

import "math"

const TwoPi = 2 * math.Pi

// asymptoteEps is how close |cos| may get to zero before tan is treated
// as undefined for display purposes.
const asymptoteEps = 1e-3

// Wrap normalizes an angle to [0, 2π).
func Wrap(x float64) float64 {
	x = math.Mod(x, TwoPi)
	if x < 0 {
		x += TwoPi
	}
	return x
}

func DegToRad(d float64) float64 { return d * math.Pi / 180 }

func RadToDeg(r float64) float64 { return r * 180 / math.Pi }

// Tan evaluates tan(x). ok is false near the asymptotes at π/2 + kπ,
// where the value is unusable for drawing.
func Tan(x float64) (v float64, ok bool) {
	if math.Abs(math.Cos(x)) < asymptoteEps {
		return 0, false
	}
	return math.Tan(x), true
}

// Lerp interpolates between a and b; t=0 gives a, t=1 gives b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
