package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colFill       = color.RGBA{R: 40, G: 46, B: 60, A: 255}
	colFillHover  = color.RGBA{R: 56, G: 64, B: 84, A: 255}
	colFillHeld   = color.RGBA{R: 30, G: 36, B: 50, A: 255}
	colBorder     = color.RGBA{R: 110, G: 122, B: 150, A: 255}
	colAccent     = color.RGBA{R: 120, G: 170, B: 255, A: 255}
	colFieldFocus = color.RGBA{R: 170, G: 200, B: 255, A: 255}
)

// Draw renders the button background, border and centered label.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := colFill
	if b.Held {
		bg = colFillHeld
	} else if b.Hovered {
		bg = colFillHover
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, colBorder, false)

	// Debug font glyphs are ~6px wide.
	tx := b.X + (b.W-6*len(b.Label))/2
	ty := b.Y + (b.H-16)/2
	ebitenutil.DebugPrintAt(screen, b.Label, tx, ty)
}

// Draw renders the slider track, fill and handle.
func (s *Slider) Draw(screen *ebiten.Image) {
	trackY := s.Y + s.H/2
	vector.StrokeLine(screen, float32(s.X), float32(trackY), float32(s.X+s.W), float32(trackY), 2, colBorder, false)

	fillW := s.Ratio() * float64(s.W)
	vector.StrokeLine(screen, float32(s.X), float32(trackY), float32(s.X)+float32(fillW), float32(trackY), 2, colAccent, false)

	hx := float32(s.X) + float32(fillW)
	r := float32(6)
	if s.Dragging || s.Hovered {
		r = 8
	}
	vector.DrawFilledCircle(screen, hx, float32(trackY), r, colAccent, false)
}

// Draw renders the checkbox and its label.
func (c *Checkbox) Draw(screen *ebiten.Image) {
	bg := colFill
	if c.Hovered {
		bg = colFillHover
	}
	vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), float32(c.Size), float32(c.Size), bg, false)
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.Size), float32(c.Size), 1, colBorder, false)
	if c.Checked {
		pad := float32(3)
		vector.DrawFilledRect(screen, float32(c.X)+pad, float32(c.Y)+pad,
			float32(c.Size)-2*pad, float32(c.Size)-2*pad, colAccent, false)
	}
	ebitenutil.DebugPrintAt(screen, c.Label, c.X+c.Size+6, c.Y+(c.Size-16)/2)
}

// Draw renders the field box, buffer text and a caret while focused.
func (f *NumField) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(f.X), float32(f.Y), float32(f.W), float32(f.H), colFillHeld, false)
	border := colBorder
	if f.Active {
		border = colFieldFocus
	}
	vector.StrokeRect(screen, float32(f.X), float32(f.Y), float32(f.W), float32(f.H), 1, border, false)

	text := f.Text()
	if f.Active {
		text += "_"
	}
	ebitenutil.DebugPrintAt(screen, text, f.X+4, f.Y+(f.H-16)/2)
}
