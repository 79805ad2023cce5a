package viewport

import "math"

// Align decides where an axis goes when the content is smaller than the
// view on that axis and there is no valid pan range.
type Align int

const (
	// AlignStart pins the content to the left/top edge of the view.
	AlignStart Align = iota
	// AlignCenter centers the content in the view.
	AlignCenter
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	default:
		return "start"
	}
}

// ParseAlign maps "start" or "center" (or "" for the default) to an Align.
func ParseAlign(s string) (Align, bool) {
	switch s {
	case "start", "":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	}
	return AlignStart, false
}

// MouseToTexture maps a screen position to texture pixels. The result is
// not clamped, so positions outside the content give out-of-range values.
func MouseToTexture(mouse Vec2, view Rect, img Size, zoom float64, pan Vec2) Vec2 {
	mustValid(img, zoom)
	content := img.Scaled(zoom)
	cr := ContentRect(view, content.X, content.Y, pan)

	inContent := mouse.Sub(cr.Min())
	return Vec2{
		X: inContent.X / zoom,
		Y: inContent.Y / zoom,
	}
}

// TextureToScreen is the inverse of MouseToTexture.
func TextureToScreen(p Vec2, view Rect, zoom float64, pan Vec2) Vec2 {
	return Vec2{
		X: view.X + pan.X + p.X*zoom,
		Y: view.Y + pan.Y + p.Y*zoom,
	}
}

// MinZoom is the largest zoom at which the whole image fits in the view.
func MinZoom(img Size, view Rect) float64 {
	mustValid(img, 1)
	mustView(view)
	return math.Min(
		view.Width/float64(img.Width),
		view.Height/float64(img.Height),
	)
}

// UpdateZoom applies a scroll step. Positive delta zooms out. The result
// stays within [MinZoom, maxZoom].
func UpdateZoom(current, scrollDelta float64, img Size, view Rect) float64 {
	return UpdateZoomWith(current, scrollDelta, img, view, ZoomSpeed, MaxZoom)
}

// UpdateZoomWith is UpdateZoom with explicit speed and upper limit.
func UpdateZoomWith(current, scrollDelta float64, img Size, view Rect, speed, maxZoom float64) float64 {
	mustValid(img, current)
	newZoom := current - scrollDelta*speed
	minZoom := MinZoom(img, view)
	return clamp(newZoom, minZoom, math.Max(minZoom, maxZoom))
}

// RecenterPan returns the pan offset that keeps mouseInTexture under the
// cursor after zooming to newZoom, clamped so the view shows no gap.
func RecenterPan(mouseInTexture, mouse Vec2, view Rect, img Size, newZoom float64, align Align) Vec2 {
	mustValid(img, newZoom)
	mouseInView := mouse.Sub(view.Min())

	relative := Vec2{
		X: mouseInTexture.X / float64(img.Width),
		Y: mouseInTexture.Y / float64(img.Height),
	}
	content := img.Scaled(newZoom)
	target := Vec2{
		X: relative.X * content.X,
		Y: relative.Y * content.Y,
	}

	pan := mouseInView.Sub(target)
	return ClampPan(pan, content, view, align)
}

// ApplyDrag moves the pan offset by delta and clamps it.
func ApplyDrag(pan, delta, content Vec2, view Rect, align Align) Vec2 {
	return ClampPan(pan.Add(delta), content, view, align)
}

// ClampPan clamps both axes of pan for content of the given screen size.
func ClampPan(pan, content Vec2, view Rect, align Align) Vec2 {
	return Vec2{
		X: ClampAxis(pan.X, view.Width, content.X, align),
		Y: ClampAxis(pan.Y, view.Height, content.Y, align),
	}
}

// ClampAxis keeps offset within [viewSize-contentSize, 0]. When the
// content is smaller than the view that range is inverted, so the axis is
// pinned according to align instead.
func ClampAxis(offset, viewSize, contentSize float64, align Align) float64 {
	lo := viewSize - contentSize
	if lo > 0 {
		if align == AlignCenter {
			return lo / 2
		}
		return 0
	}
	return clamp(offset, lo, 0)
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
