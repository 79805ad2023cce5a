package main

import (
	"image/color"

	"texture-viewer/viewport"
)

const (
	// --- Window ---
	WindowTitle = "Texture Viewer"
	WindowSize  = viewport.WindowSize

	// --- Viewer ---
	DefaultFitDuration = 0.25 // seconds
	CheckerCellSize    = 10.0
	StatusTextInset    = 3

	// --- Inspector ---
	InspectorMargin   = 20.0
	FieldTop          = 60.0
	FieldHeight       = 120.0
	ThumbnailSize     = 104
	ButtonHeight      = 30.0
	ButtonWidth       = 180.0
	ClearButtonWidth  = 30.0
	InspectorSpacing  = 12.0
	FieldPlaceholder  = "None (drop an image here)"
	OpenButtonLabel   = "Open Texture Viewer"
	InspectorHeading  = "2D Texture"
	ScreenshotFile    = "screenshot.png"
	SettingsDirectory = "texture-viewer"
)

var (
	// --- Colors ---
	ColorBackground   = color.RGBA{30, 30, 35, 255}
	ColorBorder       = color.RGBA{20, 20, 25, 255}
	ColorViewOutline  = color.RGBA{90, 90, 100, 255}
	ColorCheckerLight = color.RGBA{70, 70, 75, 255}
	ColorCheckerDark  = color.RGBA{55, 55, 60, 255}
	ColorStatusText   = color.RGBA{200, 200, 200, 255}
	ColorHeading      = color.RGBA{230, 230, 230, 255}
)
