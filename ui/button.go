package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DrawTextFunc draws s with its top-left corner at (x, y).
type DrawTextFunc func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

var (
	colorButton      = color.RGBA{60, 60, 70, 200}
	colorButtonHover = color.RGBA{80, 80, 100, 230}
)

type Button struct {
	Label   string
	X, Y    float32
	W, H    float32
	Hidden  bool
	OnClick func()

	hovered bool
}

func (b *Button) IsMouseOver(mx, my int) bool {
	if b.Hidden {
		return false
	}
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

// Draw renders the button. It uses the provided font.Face via getter.
func (b *Button) Draw(screen *ebiten.Image, getFace func() font.Face, drawText DrawTextFunc) {
	if b.Hidden {
		return
	}
	clr := colorButton
	if b.hovered {
		clr = colorButtonHover
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, clr, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	drawText(screen, face, b.Label, int(b.X)+10, int(b.Y)+8, color.White)
}
