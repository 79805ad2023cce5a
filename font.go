package main

import (
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont loads the TrueType/OpenType font at path. An empty path or
// any failure falls back to basicfont.Face7x13.
func LoadUIFont(path string) font.Face {
	if path == "" {
		return basicfont.Face7x13
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Println("LoadUIFont: using basic font:", err)
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Println("LoadUIFont: parse error, using basic font:", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 14, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Println("LoadUIFont: new face error, using basic font:", err)
		return basicfont.Face7x13
	}
	return face
}

// DrawTextLines draws multiline text with the provided font.Face and color starting at (x,y).
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	ascent, lineHeight := lineMetrics(face)
	// Treat provided y as the top of the first line. text.Draw expects baseline y.
	baseY := y + ascent
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, baseY+(i*lineHeight), clr)
	}
}

func lineMetrics(face font.Face) (ascent, lineHeight int) {
	metrics := face.Metrics()
	ascent = metrics.Ascent.Ceil()
	lineHeight = ascent + metrics.Descent.Ceil()
	if lineHeight <= 0 {
		return 12, 16
	}
	return ascent, lineHeight
}
