package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"texture-viewer/asset"
	"texture-viewer/ui"
)

// ErrNoTexture is returned when the viewer is opened with an empty slot.
var ErrNoTexture = errors.New("no texture selected")

// Inspector is the property panel holding the texture slot and the button
// that opens the viewer for it.
type Inspector struct {
	ui    *ui.System
	field *ui.Field
	open  *ui.Button
	clear *ui.Button

	texture    *asset.Texture
	thumb      *ebiten.Image
	thumbStale bool

	onOpen func(*asset.Texture) error
}

func NewInspector(getFace func() font.Face, onOpen func(*asset.Texture) error) *Inspector {
	in := &Inspector{onOpen: onOpen}
	in.ui = ui.NewSystem(getFace, func() (int, int) { return WindowSize, WindowSize }, DrawTextLines)

	fieldW := float32(WindowSize - 2*InspectorMargin - ClearButtonWidth - InspectorSpacing)
	in.field = in.ui.AddField(&ui.Field{
		Label:       "Texture",
		Placeholder: FieldPlaceholder,
		X:           InspectorMargin,
		Y:           FieldTop,
		W:           fieldW,
		H:           FieldHeight,
	})
	in.clear = in.ui.AddButton(&ui.Button{
		Label:   "x",
		X:       InspectorMargin + fieldW + InspectorSpacing,
		Y:       FieldTop,
		W:       ClearButtonWidth,
		H:       ButtonHeight,
		OnClick: in.Clear,
	})
	in.open = in.ui.AddButton(&ui.Button{
		Label:   OpenButtonLabel,
		X:       InspectorMargin,
		Y:       FieldTop + FieldHeight + InspectorSpacing,
		W:       ButtonWidth,
		H:       ButtonHeight,
		OnClick: in.requestOpen,
	})
	in.SetTexture(nil)
	return in
}

// Texture returns the selected texture, or nil.
func (in *Inspector) Texture() *asset.Texture { return in.texture }

// Select loads the image at path into the slot.
func (in *Inspector) Select(path string) error {
	tex, err := asset.Load(path)
	if err != nil {
		return err
	}
	in.SetTexture(tex)
	return nil
}

// SetTexture fills the slot. The open button only shows while the slot
// holds a texture.
func (in *Inspector) SetTexture(tex *asset.Texture) {
	in.texture = tex
	if in.thumb != nil {
		in.thumb.Deallocate()
		in.thumb = nil
	}
	in.thumbStale = tex != nil

	in.open.Hidden = tex == nil
	in.clear.Hidden = tex == nil
	in.ui.Errors.Clear()
	if tex == nil {
		in.field.Value = ""
		in.field.Detail = nil
		return
	}
	in.field.Value = tex.Name
	in.field.Detail = append([]string{
		fmt.Sprintf("%d x %d %s", tex.Size.Width, tex.Size.Height, strings.ToUpper(tex.Format)),
		formatBytes(tex.Bytes),
	}, tex.EXIFLines()...)
}

func (in *Inspector) Clear() { in.SetTexture(nil) }

func (in *Inspector) requestOpen() {
	if err := in.openTexture(); err != nil {
		log.Println("open viewer:", err)
		in.ui.Errors.SetError(err.Error())
	}
}

func (in *Inspector) openTexture() error {
	if in.texture == nil {
		return ErrNoTexture
	}
	if in.onOpen == nil {
		return nil
	}
	return in.onOpen(in.texture)
}

// Drop loads the first regular file found in fsys, which is what
// ebiten.DroppedFiles hands over when files land on the window.
func (in *Inspector) Drop(fsys fs.FS) error {
	var name string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name = path
		return fs.SkipAll
	})
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("drop: no files")
	}

	tex, err := asset.LoadFS(fsys, name)
	if err != nil {
		return err
	}
	in.SetTexture(tex)
	log.Printf("Selected %s (%dx%d)", tex.Name, tex.Size.Width, tex.Size.Height)
	return nil
}

func (in *Inspector) Update() {
	if dropped := ebiten.DroppedFiles(); dropped != nil {
		if err := in.Drop(dropped); err != nil {
			log.Println("drop:", err)
			in.ui.Errors.SetError(err.Error())
		}
	}
	in.ui.Update()
}

func (in *Inspector) Draw(screen *ebiten.Image, face font.Face) {
	if in.thumbStale {
		in.thumbStale = false
		in.thumb = ebiten.NewImageFromImage(asset.Thumbnail(in.texture.Image, ThumbnailSize))
	}
	in.field.Thumb = in.thumb

	DrawTextLines(screen, face, InspectorHeading, InspectorMargin, InspectorMargin, ColorHeading)
	in.ui.Draw(screen)
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
