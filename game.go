package main

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"

	"texture-viewer/asset"
)

// Game switches between the inspector and an open viewer.
type Game struct {
	settings  *Settings
	face      font.Face
	inspector *Inspector
	viewer    *Viewer

	// upload copies decoded pixels to the GPU.
	upload   func(image.Image) *ebiten.Image
	setTitle func(string)
}

func NewGame(settings *Settings, face font.Face) *Game {
	g := &Game{
		settings: settings,
		face:     face,
		upload:   textureImage,
		setTitle: ebiten.SetWindowTitle,
	}
	g.inspector = NewInspector(g.getFace, g.OpenViewer)
	return g
}

func (g *Game) getFace() font.Face { return g.face }

// Viewer returns the open viewer, or nil.
func (g *Game) Viewer() *Viewer { return g.viewer }

// OpenViewer opens a viewer for tex, replacing any viewer already open.
func (g *Game) OpenViewer(tex *asset.Texture) error {
	if tex == nil {
		return ErrNoTexture
	}
	if g.viewer != nil {
		g.CloseViewer()
	}

	v, err := NewViewer(tex, nil, g.settings)
	if err != nil {
		return err
	}
	if g.upload != nil {
		v.tex = g.upload(tex.Image)
	}
	g.viewer = v
	g.setTitle(fmt.Sprintf("%s - %s", tex.Name, WindowTitle))
	log.Printf("Viewer %s opened for %s (zoom %.3f)", v.ID, tex.Name, v.session.Zoom)
	return nil
}

// CloseViewer ends the session and returns to the inspector.
func (g *Game) CloseViewer() {
	if g.viewer == nil {
		return
	}
	log.Printf("Viewer %s closed", g.viewer.ID)
	g.viewer.Dispose()
	g.viewer = nil
	g.setTitle(WindowTitle)
}

func (g *Game) Update() error {
	if g.viewer == nil {
		g.inspector.Update()
		return nil
	}
	g.viewer.Update(float32(1.0 / float64(ebiten.TPS())))
	if g.viewer.Closed() {
		g.CloseViewer()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)
	if g.viewer != nil {
		g.viewer.Draw(screen, g.face)
		return
	}
	g.inspector.Draw(screen, g.face)
	ebitenutil.DebugPrintAt(screen, "Drop an image on the window to select it", InspectorMargin, WindowSize-InspectorMargin-16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize, WindowSize
}
