package game

import (
	"errors"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// captureFrame copies the rendered frame out of the screen image; the
// save dialog runs on the next Update so Draw stays cheap.
func (g *Game) captureFrame(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, 4*w*h)
	screen.ReadPixels(pix)
	g.shot = &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
}

// saveShot asks for a destination and writes the captured frame as PNG.
// A canceled dialog is not an error.
func (g *Game) saveShot() error {
	shot := g.shot
	g.shot = nil

	name, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename("trigview.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, shot); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
