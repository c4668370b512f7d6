package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines the colors around the preview surface.
type ColorTheme struct {
	Background tcell.Color
	StatusBg   tcell.Color
	StatusFg   tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: tcell.ColorBlack,
		StatusBg:   tcell.Color234, // dark grey strip under the preview
		StatusFg:   tcell.Color252,
	}
}
