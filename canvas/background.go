package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"texture-viewer/viewport"
)

// DrawCheckerboard fills r with alternating squares so transparent texels
// stay visible. Squares are anchored to the view origin, not the content,
// so they don't swim while panning.
func DrawCheckerboard(screen *ebiten.Image, r viewport.Rect, cell float64, light, dark color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), light, false)

	cols := int(math.Ceil(r.Width / cell))
	rows := int(math.Ceil(r.Height / cell))
	for row := 0; row < rows; row++ {
		for col := row % 2; col < cols; col += 2 {
			x := r.X + float64(col)*cell
			y := r.Y + float64(row)*cell
			w := math.Min(cell, r.X+r.Width-x)
			h := math.Min(cell, r.Y+r.Height-y)
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), dark, false)
		}
	}
}

// DrawFrame outlines the view rectangle and blanks the border around it.
func DrawFrame(screen *ebiten.Image, window, view viewport.Rect, border, outline color.Color) {
	wx, wy := float32(window.X), float32(window.Y)
	ww, wh := float32(window.Width), float32(window.Height)
	vx, vy := float32(view.X), float32(view.Y)
	vw, vh := float32(view.Width), float32(view.Height)

	vector.DrawFilledRect(screen, wx, wy, ww, vy-wy, border, false)
	vector.DrawFilledRect(screen, wx, vy+vh, ww, wy+wh-(vy+vh), border, false)
	vector.DrawFilledRect(screen, wx, vy, vx-wx, vh, border, false)
	vector.DrawFilledRect(screen, vx+vw, vy, wx+ww-(vx+vw), vh, border, false)

	vector.StrokeRect(screen, vx-1, vy-1, vw+2, vh+2, 1, outline, false)
}
