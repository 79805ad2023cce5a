package main

import (
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// SaveScreenshot writes the current frame to path as PNG.
func SaveScreenshot(screen *ebiten.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, screen); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
