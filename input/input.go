package input

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"texture-viewer/viewport"
)

// Host receives the pointer events the viewer cares about.
type Host interface {
	OnScroll(delta float64, mouse viewport.Vec2)
	OnPointerDown(mouse viewport.Vec2)
	OnPointerDrag(mouse viewport.Vec2)
	RequestRedraw()
}

// Commander is implemented by hosts that also handle key commands.
type Commander interface {
	Close()
	Fit()
	RequestScreenshot()
}

// Frame is the input polled for a single tick.
type Frame struct {
	// Scroll is positive when the wheel moves towards the user (zoom out).
	Scroll float64
	Mouse  viewport.Vec2

	PressStarted bool
	Pressed      bool

	Close      bool
	Fit        bool
	Screenshot bool
}

// Poll reads the current Ebitengine input state.
func Poll() Frame {
	_, wheelY := ebiten.Wheel()
	mx, my := ebiten.CursorPosition()
	return Frame{
		// Ebitengine reports wheel-up as positive.
		Scroll:       -wheelY,
		Mouse:        viewport.Vec2{X: float64(mx), Y: float64(my)},
		PressStarted: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Close:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Fit:          inpututil.IsKeyJustPressed(ebiten.KeyF),
		Screenshot:   inpututil.IsKeyJustPressed(ebiten.KeyF12),
	}
}

type System struct {
	host Host
	now  func() time.Time

	dragging  bool
	lastMouse viewport.Vec2

	lastClickTime time.Time
	lastClickPos  viewport.Vec2
}

func NewSystem(h Host) *System {
	return &System{host: h, now: time.Now}
}

// Update polls and dispatches one tick of input.
func (is *System) Update() {
	is.Dispatch(Poll())
}

// Dispatch turns a polled frame into host calls. Scroll, pointer-down and
// pointer-drag are delivered in that order, at most once each.
func (is *System) Dispatch(f Frame) {
	is.handleControlKeys(f)

	redraw := false
	if f.Scroll != 0 {
		is.host.OnScroll(f.Scroll, f.Mouse)
		redraw = true
	}

	switch {
	case f.PressStarted:
		if is.isDoubleClick(f.Mouse) {
			if c, ok := is.host.(Commander); ok {
				c.Fit()
			}
		}
		is.dragging = true
		is.lastMouse = f.Mouse
		is.host.OnPointerDown(f.Mouse)
	case is.dragging && f.Pressed:
		if f.Mouse != is.lastMouse {
			is.lastMouse = f.Mouse
			is.host.OnPointerDrag(f.Mouse)
			redraw = true
		}
	case is.dragging:
		is.dragging = false
	}

	if redraw {
		is.host.RequestRedraw()
	}
}

func (is *System) handleControlKeys(f Frame) {
	c, ok := is.host.(Commander)
	if !ok {
		return
	}
	if f.Screenshot {
		c.RequestScreenshot()
	}
	if f.Fit {
		c.Fit()
	}
	if f.Close {
		c.Close()
	}
}

const (
	doubleClickThreshold = 350 * time.Millisecond
	doubleClickDistance  = 25 // px squared
)

func (is *System) isDoubleClick(mouse viewport.Vec2) bool {
	now := is.now()
	d := mouse.Sub(is.lastClickPos)
	double := now.Sub(is.lastClickTime) < doubleClickThreshold &&
		d.X*d.X+d.Y*d.Y < doubleClickDistance

	if double {
		// A third click starts a new pair.
		is.lastClickTime = time.Time{}
	} else {
		is.lastClickTime = now
	}
	is.lastClickPos = mouse
	return double
}

// Dragging reports whether a drag is in progress.
func (is *System) Dragging() bool {
	return is.dragging
}
