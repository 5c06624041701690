package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme trims padding so the form and the log pane fit a small window.
// Fonts and icons come from the embedded default theme.
type CompactTheme struct {
	fyne.Theme
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{Theme: theme.DefaultTheme()}
}

var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:      3,
	theme.SizeNameInnerPadding: 6,
	theme.SizeNameLineSpacing:  2,
	theme.SizeNameScrollBar:    12,
	theme.SizeNameText:         13,
	theme.SizeNameHeadingText:  16,
	theme.SizeNameInputRadius:  3,
}

// Color overrides the accent colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		// red Start button
		return color.RGBA{R: 204, G: 0, B: 0, A: 255}
	}
	return t.Theme.Color(name, variant)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return t.Theme.Size(name)
}
