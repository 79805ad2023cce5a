package main

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"texture-viewer/asset"
	"texture-viewer/canvas"
	"texture-viewer/input"
	"texture-viewer/viewport"
)

// fitAnim eases zoom and pan back to the fit-to-view state.
type fitAnim struct {
	zoom, panX, panY *gween.Tween
}

// Viewer is the viewer window: it owns one viewport.Session for as long as
// it is open and feeds it the input events.
type Viewer struct {
	ID      string
	Name    string
	session *viewport.Session
	window  viewport.Rect
	tex     *ebiten.Image
	input   *input.System

	fit         *fitAnim
	fitDuration float32

	dirty  bool
	layer  *ebiten.Image
	closed bool

	screenshotRequested bool
}

// NewViewer starts a session for tex. img is the GPU copy of tex.Image
// and may be nil when nothing is drawn.
func NewViewer(tex *asset.Texture, img *ebiten.Image, settings *Settings) (*Viewer, error) {
	opts, err := settings.SessionOptions()
	if err != nil {
		return nil, err
	}
	window := viewport.Rect{Width: WindowSize, Height: WindowSize}
	s, err := viewport.NewSession(tex.Size, window, opts...)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", tex.Name, err)
	}

	v := &Viewer{
		ID:          NewID(),
		Name:        tex.Name,
		session:     s,
		window:      window,
		tex:         img,
		fitDuration: settings.FitSeconds(),
		dirty:       true,
	}
	v.input = input.NewSystem(v)
	return v, nil
}

func (v *Viewer) Session() *viewport.Session { return v.session }

func (v *Viewer) OnScroll(delta float64, mouse viewport.Vec2) {
	v.fit = nil
	v.session.Scroll(delta, mouse)
}

func (v *Viewer) OnPointerDown(mouse viewport.Vec2) {
	v.session.PointerDown(mouse)
}

func (v *Viewer) OnPointerDrag(mouse viewport.Vec2) {
	v.fit = nil
	v.session.PointerDrag(mouse)
}

func (v *Viewer) RequestRedraw() { v.dirty = true }

func (v *Viewer) Close() { v.closed = true }

func (v *Viewer) RequestScreenshot() { v.screenshotRequested = true }

// Fit animates back to the fit-to-view zoom. With no duration it jumps.
func (v *Viewer) Fit() {
	s := v.session
	if v.fitDuration <= 0 {
		s.Fit()
		v.fit = nil
		v.dirty = true
		return
	}
	zoom := s.MinZoom()
	pan := viewport.ClampPan(viewport.Vec2{}, s.Image.Scaled(zoom), s.View, s.Align)
	v.fit = &fitAnim{
		zoom: gween.New(float32(s.Zoom), float32(zoom), v.fitDuration, ease.OutCubic),
		panX: gween.New(float32(s.Pan.X), float32(pan.X), v.fitDuration, ease.OutCubic),
		panY: gween.New(float32(s.Pan.Y), float32(pan.Y), v.fitDuration, ease.OutCubic),
	}
}

// Closed reports whether the user asked to close the viewer.
func (v *Viewer) Closed() bool { return v.closed }

// Update advances one tick of dt seconds.
func (v *Viewer) Update(dt float32) {
	v.input.Update()
	v.step(dt)
}

func (v *Viewer) step(dt float32) {
	if v.fit == nil {
		return
	}
	zoom, doneZ := v.fit.zoom.Update(dt)
	panX, doneX := v.fit.panX.Update(dt)
	panY, doneY := v.fit.panY.Update(dt)
	if doneZ && doneX && doneY {
		// Land exactly on the fit state rather than a float32 approximation.
		v.session.Fit()
		v.fit = nil
	} else {
		v.session.Set(float64(zoom), viewport.Vec2{X: float64(panX), Y: float64(panY)})
	}
	v.dirty = true
}

// Dispose releases the GPU copies of the texture.
func (v *Viewer) Dispose() {
	if v.tex != nil {
		v.tex.Deallocate()
	}
	if v.layer != nil {
		v.layer.Deallocate()
	}
}

func (v *Viewer) Draw(screen *ebiten.Image, face font.Face) {
	if v.dirty || v.layer == nil {
		v.render()
		v.dirty = false
	}
	screen.DrawImage(v.layer, nil)

	canvas.DrawFrame(screen, v.window, v.session.View, ColorBorder, ColorViewOutline)
	DrawTextLines(screen, face, v.status(), StatusTextInset,
		WindowSize-viewport.BorderSize+StatusTextInset, ColorStatusText)
	DrawTextLines(screen, face, v.Name+"  (Esc close, F fit, F12 screenshot)", StatusTextInset, StatusTextInset, ColorStatusText)

	if v.screenshotRequested {
		v.screenshotRequested = false
		if err := SaveScreenshot(screen, ScreenshotFile); err != nil {
			log.Println("screenshot error:", err)
		} else {
			log.Println("Screenshot saved as", ScreenshotFile)
		}
	}
}

// render redraws the clipped texture layer. It only runs after the view
// changed.
func (v *Viewer) render() {
	if v.layer == nil {
		v.layer = ebiten.NewImage(WindowSize, WindowSize)
	}
	v.layer.Clear()

	s := v.session
	clip := v.layer.SubImage(s.View.Image()).(*ebiten.Image)
	canvas.DrawCheckerboard(clip, s.View, CheckerCellSize, ColorCheckerLight, ColorCheckerDark)
	if v.tex == nil {
		return
	}

	src := s.SourceRect().Image().Intersect(v.tex.Bounds())
	if src.Empty() {
		return
	}
	part := v.tex.SubImage(src).(*ebiten.Image)

	content := s.Content()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.Zoom, s.Zoom)
	op.GeoM.Translate(content.X+float64(src.Min.X)*s.Zoom, content.Y+float64(src.Min.Y)*s.Zoom)
	if s.Zoom >= 1 {
		// Show texels as crisp squares when inspecting up close.
		op.Filter = ebiten.FilterNearest
	} else {
		op.Filter = ebiten.FilterLinear
	}
	clip.DrawImage(part, op)
}

func (v *Viewer) status() string {
	s := v.session
	mx, my := ebiten.CursorPosition()
	return v.statusAt(viewport.Vec2{X: float64(mx), Y: float64(my)}) +
		fmt.Sprintf("  %dx%d", s.Image.Width, s.Image.Height)
}

func (v *Viewer) statusAt(mouse viewport.Vec2) string {
	s := v.session
	line := fmt.Sprintf("Zoom %.0f%%  Pan (%.0f, %.0f)", s.Zoom*100, s.Pan.X, s.Pan.Y)
	if p, ok := s.TextureAt(mouse); ok {
		line += fmt.Sprintf("  Texel (%d, %d)", int(p.X), int(p.Y))
	}
	return line
}

// textureImage uploads a decoded texture to the GPU.
func textureImage(img image.Image) *ebiten.Image {
	return ebiten.NewImageFromImage(img)
}
