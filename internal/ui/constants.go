package ui

import "fyne.io/fyne/v2"

// Layout sizing
const (
	LogoSize     float32 = 32
	LogMinHeight float32 = 260

	SettingsDialogWidth  float32 = 440
	SettingsDialogHeight float32 = 260
)

// LanguageSystem selects the OS locale
const LanguageSystem = "system"

// formatKeys maps each output format, in display order, to its label key.
var formatKeys = []string{KeyFormatBest, KeyFormatMP4, KeyFormatWebM, KeyFormatMP3}

func logoSize() fyne.Size {
	return fyne.NewSize(LogoSize, LogoSize)
}
