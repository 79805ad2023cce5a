package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

type System struct {
	buttons       []*Button
	fields        []*Field
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      DrawTextFunc
	Errors        *ErrorPanel
}

func NewSystem(getFontFace func() font.Face, getScreenSize func() (int, int), drawText DrawTextFunc) *System {
	return &System{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Errors:        &ErrorPanel{},
	}
}

func (ui *System) AddButton(b *Button) *Button {
	ui.buttons = append(ui.buttons, b)
	return b
}

func (ui *System) AddField(f *Field) *Field {
	ui.fields = append(ui.fields, f)
	return f
}

func (ui *System) IsMouseOver(mx, my int) bool {
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	for _, f := range ui.fields {
		if f.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

func (ui *System) Update() {
	mx, my := ebiten.CursorPosition()
	ui.Hover(mx, my)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ui.Click(mx, my)
	}
}

// Hover updates the hover highlight of every button.
func (ui *System) Hover(mx, my int) {
	for _, b := range ui.buttons {
		b.hovered = b.IsMouseOver(mx, my)
	}
}

// Click fires the first visible button under the cursor and reports
// whether one was hit.
func (ui *System) Click(mx, my int) bool {
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

func (ui *System) Draw(screen *ebiten.Image) {
	for _, f := range ui.fields {
		f.Draw(screen, ui.getFontFace, ui.drawText)
	}
	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText)
	}
	if ui.Errors != nil && ui.getScreenSize != nil {
		ui.Errors.Draw(screen, ui.getScreenSize, ui.getFontFace, ui.drawText)
	}
}
