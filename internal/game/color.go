package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/inkstar/trigonometric-function/internal/trig"
)

var (
	colBg      = color.RGBA{R: 12, G: 14, B: 20, A: 255}
	colGrid    = color.RGBA{R: 34, G: 38, B: 48, A: 255}
	colAxis    = color.RGBA{R: 78, G: 86, B: 104, A: 255}
	colOutline = color.RGBA{R: 110, G: 122, B: 150, A: 255}
	colPoint   = color.RGBA{R: 235, G: 238, B: 245, A: 255}

	colSin = color.RGBA{R: 92, G: 200, B: 140, A: 255}
	colCos = color.RGBA{R: 120, G: 170, B: 255, A: 255}
	colTan = color.RGBA{R: 240, G: 120, B: 120, A: 255}
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatAngle renders θ for the HUD, in degrees and radians. ASCII only;
// the debug font has no greek or degree glyphs.
func formatAngle(theta float64) string {
	w := trig.Wrap(theta)
	return fmt.Sprintf("theta = %6.1f deg  (%.3f rad)", trig.RadToDeg(w), w)
}
