package theme

import (
	"embed"
	"image/color"
)

// EmbeddedThemes holds the built-in theme definitions.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Theme defines the color palette for the drawing window.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background around the canvas
	Foreground color.RGBA // Heading and label text
	Muted      color.RGBA // Description paragraph and slider label

	// Tool Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA
	PenActive             color.RGBA // Border and label of the selected pen button
	EraserActive          color.RGBA // Border and label of the selected eraser button

	// Slider
	SliderTrack color.RGBA
	SliderKnob  color.RGBA

	// Dropdown
	DropdownBackground color.RGBA
	DropdownBorder     color.RGBA

	// Submit
	SubmitBackground color.RGBA
	SubmitHover      color.RGBA
	SubmitText       color.RGBA

	// Canvas
	CanvasBackground color.RGBA
	CanvasBorder     color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{243, 244, 246, 255},
		Foreground:            color.RGBA{17, 24, 39, 255},
		Muted:                 color.RGBA{75, 85, 99, 255},
		ButtonBackground:      color.RGBA{243, 244, 246, 255},
		ButtonBackgroundHover: color.RGBA{219, 234, 254, 255},
		ButtonBackgroundPress: color.RGBA{229, 231, 235, 255},
		ButtonText:            color.RGBA{107, 114, 128, 255},
		ButtonBorder:          color.RGBA{107, 114, 128, 255},
		PenActive:             color.RGBA{59, 130, 246, 255},
		EraserActive:          color.RGBA{239, 68, 68, 255},
		SliderTrack:           color.RGBA{209, 213, 219, 255},
		SliderKnob:            color.RGBA{59, 130, 246, 255},
		DropdownBackground:    color.RGBA{255, 255, 255, 255},
		DropdownBorder:        color.RGBA{209, 213, 219, 255},
		SubmitBackground:      color.RGBA{59, 130, 246, 255},
		SubmitHover:           color.RGBA{37, 99, 235, 255},
		SubmitText:            color.RGBA{255, 255, 255, 255},
		CanvasBackground:      color.RGBA{255, 255, 255, 255},
		CanvasBorder:          color.RGBA{55, 65, 81, 255},
	}
}
