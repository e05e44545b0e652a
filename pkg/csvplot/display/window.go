// Package display shows rendered plots in a desktop window.
package display

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window titled title that displays img.
// It blocks until the window closes.
func Show(title string, img image.Image) error {
	b := img.Bounds()
	v := &viewer{img: img, width: b.Dx(), height: b.Dy()}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(10)
	return ebiten.RunGame(v)
}

type viewer struct {
	img     image.Image
	plotImg *ebiten.Image
	width   int
	height  int
}

func (v *viewer) Update() error {
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.plotImg == nil {
		v.plotImg = ebiten.NewImageFromImage(v.img)
	}
	screen.DrawImage(v.plotImg, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}
