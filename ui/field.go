package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	fieldPadding    = 8
	fieldLineHeight = 18
)

// Field is an object slot: a boxed value with an optional thumbnail and
// detail lines under the value.
type Field struct {
	Label       string
	Value       string
	Placeholder string
	Detail      []string
	Thumb       *ebiten.Image

	X, Y float32
	W, H float32
}

func (f *Field) Empty() bool {
	return f.Value == ""
}

func (f *Field) IsMouseOver(mx, my int) bool {
	return float32(mx) >= f.X && float32(mx) <= f.X+f.W &&
		float32(my) >= f.Y && float32(my) <= f.Y+f.H
}

func (f *Field) Draw(screen *ebiten.Image, getFace func() font.Face, drawText DrawTextFunc) {
	vector.DrawFilledRect(screen, f.X, f.Y, f.W, f.H, color.RGBA{35, 35, 40, 255}, false)
	vector.StrokeRect(screen, f.X, f.Y, f.W, f.H, 1, color.RGBA{90, 90, 100, 255}, false)

	textX := int(f.X) + fieldPadding
	if f.Thumb != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(f.X)+fieldPadding, float64(f.Y)+fieldPadding)
		screen.DrawImage(f.Thumb, op)
		textX += f.Thumb.Bounds().Dx() + fieldPadding
	}

	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	if f.Label != "" {
		drawText(screen, face, f.Label, int(f.X), int(f.Y)-fieldLineHeight-4, color.White)
	}

	y := int(f.Y) + fieldPadding
	if f.Empty() {
		drawText(screen, face, f.Placeholder, textX, y, color.RGBA{150, 150, 150, 200})
		return
	}
	drawText(screen, face, f.Value, textX, y, color.White)
	for _, line := range f.Detail {
		y += fieldLineHeight
		drawText(screen, face, line, textX, y, color.RGBA{190, 190, 190, 255})
	}
}
