package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

var defaultView = ViewRect(Rect{X: 0, Y: 0, Width: WindowSize, Height: WindowSize})

func TestViewRect(t *testing.T) {
	v := ViewRect(Rect{X: 0, Y: 0, Width: 500, Height: 500})
	assert.Equal(t, Rect{X: 20, Y: 20, Width: 460, Height: 460}, v)

	v = ViewRect(Rect{X: 10, Y: 30, Width: 100, Height: 200})
	assert.Equal(t, Rect{X: 30, Y: 50, Width: 60, Height: 160}, v)
}

func TestViewRectTooSmallPanics(t *testing.T) {
	assert.Panics(t, func() { ViewRect(Rect{Width: 40, Height: 500}) })
	assert.Panics(t, func() { ViewRect(Rect{Width: 500, Height: 10}) })
}

func TestContentRectIsPureTranslation(t *testing.T) {
	r := ContentRect(defaultView, 1000, 800, Vec2{-30, 15})
	assert.Equal(t, Rect{X: -10, Y: 35, Width: 1000, Height: 800}, r)
}

func TestMouseToTexture(t *testing.T) {
	img := Size{Width: 200, Height: 100}

	tests := []struct {
		name  string
		mouse Vec2
		zoom  float64
		pan   Vec2
		want  Vec2
	}{
		{"origin", Vec2{20, 20}, 1, Vec2{}, Vec2{0, 0}},
		{"zoomed", Vec2{120, 70}, 2, Vec2{}, Vec2{50, 25}},
		{"panned", Vec2{20, 20}, 2, Vec2{-100, -40}, Vec2{50, 20}},
		{"outside is not clamped", Vec2{0, 0}, 1, Vec2{}, Vec2{-20, -20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MouseToTexture(tt.mouse, defaultView, img, tt.zoom, tt.pan)
			assert.InDelta(t, tt.want.X, got.X, epsilon)
			assert.InDelta(t, tt.want.Y, got.Y, epsilon)

			back := TextureToScreen(got, defaultView, tt.zoom, tt.pan)
			assert.InDelta(t, tt.mouse.X, back.X, epsilon)
			assert.InDelta(t, tt.mouse.Y, back.Y, epsilon)
		})
	}
}

func TestMouseToTextureRejectsBadZoom(t *testing.T) {
	assert.Panics(t, func() { MouseToTexture(Vec2{}, defaultView, Size{10, 10}, 0, Vec2{}) })
	assert.Panics(t, func() { MouseToTexture(Vec2{}, defaultView, Size{0, 10}, 1, Vec2{}) })
}

func TestMinZoom(t *testing.T) {
	assert.InDelta(t, 0.46, MinZoom(Size{1000, 500}, defaultView), epsilon)
	assert.InDelta(t, 0.92, MinZoom(Size{250, 500}, defaultView), epsilon)
	assert.InDelta(t, 4.6, MinZoom(Size{100, 50}, defaultView), epsilon)
}

func TestUpdateZoomClamps(t *testing.T) {
	img := Size{1000, 500}
	minZoom := MinZoom(img, defaultView)

	for _, delta := range []float64{-1e9, -1000, -10, -1, -0.01, 0.01, 1, 10, 1000, 1e9} {
		for _, start := range []float64{minZoom, 1, 5, MaxZoom} {
			got := UpdateZoom(start, delta, img, defaultView)
			assert.GreaterOrEqual(t, got, minZoom, "start=%v delta=%v", start, delta)
			assert.LessOrEqual(t, got, MaxZoom, "start=%v delta=%v", start, delta)
		}
	}
}

func TestUpdateZoomSign(t *testing.T) {
	img := Size{100, 100}
	assert.InDelta(t, 5.1, UpdateZoom(5, -1, img, defaultView), epsilon)
	assert.InDelta(t, 4.9, UpdateZoom(5, 1, img, defaultView), epsilon)
}

func TestUpdateZoomZeroDeltaIsIdentity(t *testing.T) {
	img := Size{1000, 500}
	for _, z := range []float64{0.46, 0.5, 1, 3.3, 10} {
		assert.Equal(t, z, UpdateZoom(z, 0, img, defaultView))
	}
}

func TestUpdateZoomScenario(t *testing.T) {
	img := Size{1000, 500}
	got := UpdateZoom(0.46, -10, img, defaultView)
	assert.InDelta(t, 1.46, got, epsilon)
}

func TestUpdateZoomTinyImageCapsAtMax(t *testing.T) {
	// 2x2 fits at 230x, above MaxZoom; the fit zoom wins.
	img := Size{2, 2}
	got := UpdateZoom(230, -5, img, defaultView)
	assert.InDelta(t, 230, got, epsilon)
}

func TestClampAxis(t *testing.T) {
	tests := []struct {
		name          string
		offset        float64
		view, content float64
		align         Align
		want          float64
	}{
		{"inside range", -50, 460, 1000, AlignStart, -50},
		{"past left edge", 30, 460, 1000, AlignStart, 0},
		{"past right edge", -900, 460, 1000, AlignStart, -540},
		{"exact fit", -10, 460, 460, AlignStart, 0},
		{"smaller pins to start", 50, 460, 230, AlignStart, 0},
		{"smaller pins to start from negative", -50, 460, 230, AlignStart, 0},
		{"smaller centers", 50, 460, 230, AlignCenter, 115},
		{"center ignored when larger", -50, 460, 1000, AlignCenter, -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampAxis(tt.offset, tt.view, tt.content, tt.align))
		})
	}
}

func TestApplyDragNarrowContentStaysPinned(t *testing.T) {
	// 230 wide content inside a 460 wide view cannot move right.
	got := ApplyDrag(Vec2{}, Vec2{50, 0}, Vec2{230, 1000}, defaultView, AlignStart)
	assert.LessOrEqual(t, got.X, 0.0)
	assert.Equal(t, 0.0, got.X)
	assert.Equal(t, 0.0, got.Y)
}

func TestApplyDragKeepsNoGap(t *testing.T) {
	content := Vec2{1460, 730}
	deltas := []Vec2{{50, 0}, {-5000, 0}, {0, 5000}, {0, -5000}, {-300, -100}, {12.5, -7.25}}
	pan := Vec2{}
	for _, d := range deltas {
		pan = ApplyDrag(pan, d, content, defaultView, AlignStart)
		cr := ContentRect(defaultView, content.X, content.Y, pan)
		assertNoGap(t, cr, defaultView)
	}
}

func TestRecenterPanAnchorsCursor(t *testing.T) {
	img := Size{1000, 500}
	mouse := Vec2{250, 60}
	before := MouseToTexture(mouse, defaultView, img, 0.46, Vec2{})

	pan := RecenterPan(before, mouse, defaultView, img, 1.46, AlignStart)

	after := TextureToScreen(before, defaultView, 1.46, pan)
	assert.InDelta(t, mouse.X, after.X, 1)
	assert.InDelta(t, mouse.Y, after.Y, 1)
}

func TestRecenterPanClampsAtBoundary(t *testing.T) {
	img := Size{1000, 500}
	// Cursor on the bottom edge of the content: anchoring would leave a
	// gap below the image, so Y lands exactly on the boundary.
	mouse := Vec2{250, 250}
	before := MouseToTexture(mouse, defaultView, img, 0.46, Vec2{})

	pan := RecenterPan(before, mouse, defaultView, img, 1.46, AlignStart)
	assert.InDelta(t, -500, pan.X, epsilon)
	assert.InDelta(t, 460-730, pan.Y, epsilon)
}

func TestRecenterPanProperty(t *testing.T) {
	imgs := []Size{{1000, 500}, {300, 900}, {64, 64}, {4096, 4096}, {1, 1000}}
	mice := []Vec2{{20, 20}, {480, 480}, {250, 250}, {100, 400}, {333, 77}}
	for _, img := range imgs {
		minZoom := MinZoom(img, defaultView)
		for _, start := range []float64{minZoom, (minZoom + MaxZoom) / 2} {
			for _, delta := range []float64{-30, -3, -1, 1, 3, 30} {
				for _, mouse := range mice {
					pan0 := ClampPan(Vec2{-40, -40}, img.Scaled(start), defaultView, AlignStart)
					tex := MouseToTexture(mouse, defaultView, img, start, pan0)
					zoom := UpdateZoom(start, delta, img, defaultView)
					pan := RecenterPan(tex, mouse, defaultView, img, zoom, AlignStart)
					content := img.Scaled(zoom)

					after := TextureToScreen(tex, defaultView, zoom, pan)
					checkAnchoredOrBoundary(t, after.X, mouse.X, pan.X, defaultView.Width, content.X)
					checkAnchoredOrBoundary(t, after.Y, mouse.Y, pan.Y, defaultView.Height, content.Y)

					assertNoGap(t, ContentRect(defaultView, content.X, content.Y, pan), defaultView)
				}
			}
		}
	}
}

func checkAnchoredOrBoundary(t *testing.T, got, want, pan, view, content float64) {
	t.Helper()
	if math.Abs(got-want) <= 1 {
		return
	}
	lo := view - content
	if lo > 0 {
		require.Equal(t, 0.0, pan)
		return
	}
	require.True(t, pan == lo || pan == 0, "pan %v not on boundary [%v, 0]", pan, lo)
}

func assertNoGap(t *testing.T, content, view Rect) {
	t.Helper()
	if content.Width >= view.Width {
		assert.LessOrEqual(t, content.X, view.X+epsilon)
		assert.GreaterOrEqual(t, content.X+content.Width, view.X+view.Width-epsilon)
	}
	if content.Height >= view.Height {
		assert.LessOrEqual(t, content.Y, view.Y+epsilon)
		assert.GreaterOrEqual(t, content.Y+content.Height, view.Y+view.Height-epsilon)
	}
}

func TestParseAlign(t *testing.T) {
	a, ok := ParseAlign("center")
	assert.True(t, ok)
	assert.Equal(t, AlignCenter, a)

	a, ok = ParseAlign("")
	assert.True(t, ok)
	assert.Equal(t, AlignStart, a)

	_, ok = ParseAlign("middle")
	assert.False(t, ok)
}
