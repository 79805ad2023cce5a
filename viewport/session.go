package viewport

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyImage     = errors.New("viewport: image has no pixels")
	ErrWindowTooSmall = errors.New("viewport: window too small for border")
)

// Session is the mutable view state of one viewer window. It lives from
// the moment the viewer opens until it closes.
type Session struct {
	Image Size
	View  Rect

	Zoom      float64
	Pan       Vec2
	LastMouse Vec2

	Align     Align
	ZoomSpeed float64
	MaxZoom   float64
}

// Option configures a Session.
type Option func(*Session)

func WithAlign(a Align) Option { return func(s *Session) { s.Align = a } }

func WithZoomSpeed(speed float64) Option {
	return func(s *Session) {
		if speed > 0 {
			s.ZoomSpeed = speed
		}
	}
}

func WithMaxZoom(zoom float64) Option {
	return func(s *Session) {
		if zoom > 0 {
			s.MaxZoom = zoom
		}
	}
}

// NewSession starts viewing img inside window. Zoom starts at the
// fit-to-view zoom with the image at the view origin.
func NewSession(img Size, window Rect, opts ...Option) (*Session, error) {
	if !img.valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, img.Width, img.Height)
	}
	if window.Width <= 2*BorderSize || window.Height <= 2*BorderSize {
		return nil, fmt.Errorf("%w: %vx%v", ErrWindowTooSmall, window.Width, window.Height)
	}

	s := &Session{
		Image:     img,
		View:      ViewRect(window),
		ZoomSpeed: ZoomSpeed,
		MaxZoom:   MaxZoom,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Fit()
	return s, nil
}

// MinZoom is the fit-to-view zoom for this session.
func (s *Session) MinZoom() float64 { return MinZoom(s.Image, s.View) }

// Fit resets to the fit-to-view zoom and the initial pan.
func (s *Session) Fit() {
	s.Zoom = s.MinZoom()
	s.Pan = ClampPan(Vec2{}, s.Image.Scaled(s.Zoom), s.View, s.Align)
}

// Set jumps to the given zoom and pan, clamping both.
func (s *Session) Set(zoom float64, pan Vec2) {
	s.Zoom = clamp(zoom, s.MinZoom(), s.maxZoom())
	s.Pan = ClampPan(pan, s.Image.Scaled(s.Zoom), s.View, s.Align)
}

func (s *Session) maxZoom() float64 {
	if s.MaxZoom < s.MinZoom() {
		return s.MinZoom()
	}
	return s.MaxZoom
}

// Scroll zooms by one wheel step around the cursor. It reports whether
// the zoom or pan changed.
func (s *Session) Scroll(delta float64, mouse Vec2) bool {
	oldZoom, oldPan := s.Zoom, s.Pan

	inTexture := MouseToTexture(mouse, s.View, s.Image, s.Zoom, s.Pan)
	s.Zoom = UpdateZoomWith(s.Zoom, delta, s.Image, s.View, s.ZoomSpeed, s.MaxZoom)
	s.Pan = RecenterPan(inTexture, mouse, s.View, s.Image, s.Zoom, s.Align)

	return s.Zoom != oldZoom || s.Pan != oldPan
}

// PointerDown records the start of a drag.
func (s *Session) PointerDown(mouse Vec2) {
	s.LastMouse = mouse
}

// PointerDrag pans by the distance moved since the last pointer event.
func (s *Session) PointerDrag(mouse Vec2) bool {
	oldPan := s.Pan
	delta := mouse.Sub(s.LastMouse)
	s.Pan = ApplyDrag(s.Pan, delta, s.Image.Scaled(s.Zoom), s.View, s.Align)
	s.LastMouse = mouse
	return s.Pan != oldPan
}

// Content is the texture's on-screen rectangle.
func (s *Session) Content() Rect {
	c := s.Image.Scaled(s.Zoom)
	return ContentRect(s.View, c.X, c.Y, s.Pan)
}

// Visible is the part of the content inside the view.
func (s *Session) Visible() Rect {
	return s.Content().Intersect(s.View)
}

// SourceRect is the visible part of the texture in texture pixels.
func (s *Session) SourceRect() Rect {
	vis := s.Visible()
	if vis.Empty() {
		return Rect{}
	}
	c := s.Content()
	return Rect{
		X:      (vis.X - c.X) / s.Zoom,
		Y:      (vis.Y - c.Y) / s.Zoom,
		Width:  vis.Width / s.Zoom,
		Height: vis.Height / s.Zoom,
	}
}

// TextureAt maps a screen position to texture pixels and reports whether
// it falls on the texture.
func (s *Session) TextureAt(mouse Vec2) (Vec2, bool) {
	p := MouseToTexture(mouse, s.View, s.Image, s.Zoom, s.Pan)
	inside := p.X >= 0 && p.Y >= 0 &&
		p.X < float64(s.Image.Width) && p.Y < float64(s.Image.Height) &&
		s.View.Contains(mouse)
	return p, inside
}
