package main

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"texture-viewer/asset"
	"texture-viewer/input"
	"texture-viewer/viewport"
)

func newTestGame(settings *Settings) (*Game, *[]string) {
	var titles []string
	g := NewGame(settings, basicfont.Face7x13)
	g.upload = func(image.Image) *ebiten.Image { return nil }
	g.setTitle = func(s string) { titles = append(titles, s) }
	return g, &titles
}

func TestGameOpenAndCloseViewer(t *testing.T) {
	g, titles := newTestGame(&Settings{})
	assert.ErrorIs(t, g.OpenViewer(nil), ErrNoTexture)
	assert.Nil(t, g.Viewer())

	tex := &asset.Texture{Name: "wide.png", Size: viewport.Size{Width: 1000, Height: 500}}
	require.NoError(t, g.OpenViewer(tex))
	require.NotNil(t, g.Viewer())
	assert.InDelta(t, 0.46, g.Viewer().Session().Zoom, 1e-12)
	assert.Equal(t, []string{"wide.png - " + WindowTitle}, *titles)

	g.CloseViewer()
	assert.Nil(t, g.Viewer())
	assert.Equal(t, WindowTitle, (*titles)[1])

	g.CloseViewer()
	assert.Len(t, *titles, 2)
}

func TestGameReopenStartsFreshSession(t *testing.T) {
	g, _ := newTestGame(&Settings{})
	tex := &asset.Texture{Name: "wide.png", Size: viewport.Size{Width: 1000, Height: 500}}

	require.NoError(t, g.OpenViewer(tex))
	first := g.Viewer()
	first.input.Dispatch(input.Frame{Scroll: -10, Mouse: viewport.Vec2{X: 250, Y: 60}})
	first.input.Dispatch(input.Frame{Close: true})
	require.True(t, first.Closed())
	g.CloseViewer()

	require.NoError(t, g.OpenViewer(tex))
	assert.NotSame(t, first, g.Viewer())
	assert.InDelta(t, 0.46, g.Viewer().Session().Zoom, 1e-12)
}

func TestGameOpenViewerRejectsEmptyTexture(t *testing.T) {
	g, _ := newTestGame(&Settings{})
	err := g.OpenViewer(&asset.Texture{Name: "empty.png"})
	assert.ErrorIs(t, err, viewport.ErrEmptyImage)
	assert.Nil(t, g.Viewer())
}

func TestGameLayoutIsFixed(t *testing.T) {
	g, _ := newTestGame(&Settings{})
	w, h := g.Layout(1024, 768)
	assert.Equal(t, WindowSize, w)
	assert.Equal(t, WindowSize, h)
}
