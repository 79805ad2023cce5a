package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ErrorPanel shows the last error in the bottom-right corner until cleared.
type ErrorPanel struct {
	Error string
}

func (d *ErrorPanel) SetError(msg string) {
	d.Error = msg
}

func (d *ErrorPanel) Clear() {
	d.Error = ""
}

func (d *ErrorPanel) Draw(screen *ebiten.Image, getScreenSize func() (int, int), getFace func() font.Face, drawText DrawTextFunc) {
	if d == nil || d.Error == "" {
		return
	}
	w, h := getScreenSize()
	pw, ph := w-20, 60
	x := w - pw - 10
	y := h - ph - 10
	bg := color.RGBA{40, 40, 40, 220}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), bg, false)
	if getFace != nil && drawText != nil {
		face := getFace()
		if face != nil {
			drawText(screen, face, d.Error, x+8, y+8, color.RGBA{255, 200, 50, 255})
		}
	}
}
