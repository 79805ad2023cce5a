// Package viewport holds the pan/zoom math for showing a texture inside a
// fixed view rectangle. Everything here is pure: callers own the state.
package viewport

import (
	"fmt"
	"image"
	"math"
)

const (
	WindowSize = 500
	BorderSize = 20
	ZoomSpeed  = 0.1
	MaxZoom    = 10.0
)

// Vec2 is a point or displacement in screen or texture space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Size is the pixel size of a texture.
type Size struct {
	Width, Height int
}

func (s Size) valid() bool { return s.Width > 0 && s.Height > 0 }

// Scaled returns the on-screen size of the texture at the given zoom.
func (s Size) Scaled(zoom float64) Vec2 {
	return Vec2{float64(s.Width) * zoom, float64(s.Height) * zoom}
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.Width, r.Y + r.Height} }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside r. Points on the edge are inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersect returns the overlap of r and o, or a zero Rect if they don't overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.Width, o.X+o.Width)
	y1 := math.Min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Image rounds r to integer pixel bounds, for SubImage clipping.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
}

// ViewRect insets the window rectangle by BorderSize on every side.
// The window must be larger than 2*BorderSize on both axes.
func ViewRect(window Rect) Rect {
	if window.Width <= 2*BorderSize || window.Height <= 2*BorderSize {
		panic(fmt.Sprintf("viewport: window %vx%v too small for border %d", window.Width, window.Height, BorderSize))
	}
	return Rect{
		X:      window.X + BorderSize,
		Y:      window.Y + BorderSize,
		Width:  window.Width - 2*BorderSize,
		Height: window.Height - 2*BorderSize,
	}
}

// ContentRect places a contentW x contentH rectangle at the view origin
// shifted by pan. It does not clamp.
func ContentRect(view Rect, contentW, contentH float64, pan Vec2) Rect {
	return Rect{
		X:      view.X + pan.X,
		Y:      view.Y + pan.Y,
		Width:  contentW,
		Height: contentH,
	}
}

func mustValid(img Size, zoom float64) {
	if !img.valid() {
		panic(fmt.Sprintf("viewport: invalid image size %dx%d", img.Width, img.Height))
	}
	if zoom <= 0 || math.IsNaN(zoom) {
		panic(fmt.Sprintf("viewport: invalid zoom %v", zoom))
	}
}

func mustView(view Rect) {
	if view.Empty() {
		panic(fmt.Sprintf("viewport: degenerate view rect %+v", view))
	}
}
