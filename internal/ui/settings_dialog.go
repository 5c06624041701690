package ui

import (
	"maps"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-backup/internal/config"
)

// SettingsDialog edits the preferences that are not part of the job form
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	revealCheck      *widget.Check
	autoInstallCheck *widget.Check
	languageSelect   *widget.Select

	languageCodes []string
	languageNames []string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs on the UI
// goroutine after the preferences were written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	options := sd.settings.GetLanguageOptions()
	sd.languageCodes = slices.Sorted(maps.Keys(options))
	for _, code := range sd.languageCodes {
		sd.languageNames = append(sd.languageNames, options[code])
	}

	sd.revealCheck = widget.NewCheck(sd.localization.GetText(KeyRevealOnComplete), nil)
	sd.autoInstallCheck = widget.NewCheck(sd.localization.GetText(KeyAutoInstallTools), nil)
	sd.languageSelect = widget.NewSelect(sd.languageNames, nil)

	form := container.NewVBox(
		sd.revealCheck,
		sd.autoInstallCheck,
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.revealCheck.SetChecked(sd.settings.GetRevealOnComplete())
	sd.autoInstallCheck.SetChecked(sd.settings.GetAutoInstallTools())
	if i := slices.Index(sd.languageCodes, sd.settings.GetLanguage()); i >= 0 {
		sd.languageSelect.SetSelectedIndex(i)
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetRevealOnComplete(sd.revealCheck.Checked)

	restart := sd.autoInstallCheck.Checked != sd.settings.GetAutoInstallTools()
	sd.settings.SetAutoInstallTools(sd.autoInstallCheck.Checked)

	if i := sd.languageSelect.SelectedIndex(); i >= 0 {
		sd.settings.SetLanguage(sd.languageCodes[i])
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if restart {
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}
