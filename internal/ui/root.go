package ui

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-backup/internal/config"
	"github.com/ytget/yt-backup/internal/download"
	"github.com/ytget/yt-backup/internal/model"
	"github.com/ytget/yt-backup/internal/platform"
)

// RootUI represents the main window: the job form on top and the log below.
// It implements download.Reporter.
type RootUI struct {
	window       fyne.Window
	launcher     download.Launcher
	settings     *config.Settings
	localization *Localization

	urlLabel     *widget.Label
	urlEntry     *widget.Entry
	formatLabel  *widget.Label
	formatGroup  *widget.RadioGroup
	subsLabel    *widget.Label
	subsCheck    *widget.Check
	dirLabel     *widget.Label
	dirEntry     *widget.Entry
	browseBtn    *widget.Button
	startBtn     *widget.Button
	stopBtn      *widget.Button
	openBtn      *widget.Button
	logLabel     *widget.Label
	logView      *LogView
	lastDestDir  string
	formatValues []model.Format
}

// NewRootUI creates the main UI, registers it as the launcher's reporter and
// sets the window content.
func NewRootUI(window fyne.Window, launcher download.Launcher, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		launcher:     launcher,
		settings:     settings,
		localization: localization,
		formatValues: model.AllFormats(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	launcher.SetReporter(ui)
	return ui
}

func (ui *RootUI) text(key string) string {
	return ui.localization.GetText(key)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel(ui.text(KeyURL))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.text(KeyEnterURL))
	// Enter in the URL field starts the job
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onStartClick()
	}

	ui.formatLabel = widget.NewLabel(ui.text(KeyOutputFormat))
	ui.formatGroup = widget.NewRadioGroup(ui.formatLabels(), nil)
	ui.formatGroup.Horizontal = true
	ui.formatGroup.Required = true
	ui.setFormat(ui.settings.GetFormat())

	ui.subsLabel = widget.NewLabel(ui.text(KeySubtitles))
	ui.subsCheck = widget.NewCheck(ui.text(KeyEmbedSubtitles), nil)
	ui.subsCheck.SetChecked(ui.settings.GetEmbedSubtitles())

	ui.dirLabel = widget.NewLabel(ui.text(KeySaveLocation))
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetOutputDirectory())
	ui.browseBtn = widget.NewButton(ui.text(KeyBrowse), ui.onBrowseClick)

	ui.startBtn = widget.NewButton(ui.text(KeyStart), ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance
	ui.stopBtn = widget.NewButton(ui.text(KeyStop), ui.onStopClick)
	ui.stopBtn.Disable()
	ui.openBtn = widget.NewButton(ui.text(KeyOpenFolder), ui.onOpenFolderClick)

	form := container.New(layout.NewFormLayout(),
		ui.urlLabel, ui.urlEntry,
		ui.formatLabel, ui.formatGroup,
		ui.subsLabel, ui.subsCheck,
		ui.dirLabel, container.NewBorder(nil, nil, nil, ui.browseBtn, ui.dirEntry),
	)

	buttons := container.NewHBox(layout.NewSpacer(), ui.startBtn, ui.stopBtn, ui.openBtn, layout.NewSpacer())

	header := fyne.CanvasObject(layout.NewSpacer())
	if logo, err := LoadLogoResource(); err == nil {
		img := canvas.NewImageFromResource(logo)
		img.SetMinSize(logoSize())
		img.FillMode = canvas.ImageFillContain
		header = img
	}

	ui.logLabel = widget.NewLabel(ui.text(KeyDownloadLog))
	ui.logLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.logView = NewLogView()

	top := container.NewVBox(header, form, buttons, widget.NewSeparator(), ui.logLabel)
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.logView.Widget()))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.text(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.text(KeyLanguage))
	languages := ui.localization.GetAvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(languages)) {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.text(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.text(KeyAppTitle))

	ui.urlLabel.SetText(ui.text(KeyURL))
	ui.urlEntry.SetPlaceHolder(ui.text(KeyEnterURL))
	ui.formatLabel.SetText(ui.text(KeyOutputFormat))
	selected := ui.selectedFormat()
	ui.formatGroup.Options = ui.formatLabels()
	ui.setFormat(selected)
	ui.formatGroup.Refresh()
	ui.subsLabel.SetText(ui.text(KeySubtitles))
	ui.subsCheck.SetText(ui.text(KeyEmbedSubtitles))
	ui.dirLabel.SetText(ui.text(KeySaveLocation))
	ui.browseBtn.SetText(ui.text(KeyBrowse))
	ui.startBtn.SetText(ui.text(KeyStart))
	ui.stopBtn.SetText(ui.text(KeyStop))
	ui.openBtn.SetText(ui.text(KeyOpenFolder))
	ui.logLabel.SetText(ui.text(KeyDownloadLog))

	// Recreate menu to update checkmarks
	ui.createMenu()
}

func (ui *RootUI) formatLabels() []string {
	labels := make([]string, len(formatKeys))
	for i, key := range formatKeys {
		labels[i] = ui.text(key)
	}
	return labels
}

func (ui *RootUI) setFormat(format model.Format) {
	for i, f := range ui.formatValues {
		if f == format {
			ui.formatGroup.SetSelected(ui.formatGroup.Options[i])
			return
		}
	}
	ui.formatGroup.SetSelected(ui.formatGroup.Options[0])
}

func (ui *RootUI) selectedFormat() model.Format {
	for i, option := range ui.formatGroup.Options {
		if option == ui.formatGroup.Selected {
			return ui.formatValues[i]
		}
	}
	return model.FormatBest
}

// snapshotRequest copies the form into an immutable job request
func (ui *RootUI) snapshotRequest() model.JobRequest {
	return model.JobRequest{
		URL:            strings.TrimSpace(ui.urlEntry.Text),
		Format:         ui.selectedFormat(),
		EmbedSubtitles: ui.subsCheck.Checked,
		OutputDir:      strings.TrimSpace(ui.dirEntry.Text),
	}
}

// onStartClick validates the form and hands the job to the launcher
func (ui *RootUI) onStartClick() {
	req := ui.snapshotRequest()
	if err := req.Validate(); err != nil {
		dialog.ShowError(errors.New(ui.text(KeyPleaseEnterURL)), ui.window)
		return
	}

	if err := platform.CreateDirectoryIfNotExists(req.OutputDir); err != nil {
		log.Printf("Cannot prepare output directory %q: %v", req.OutputDir, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.text(KeyInvalidDirectory), err), ui.window)
		return
	}

	ui.settings.SetOutputDirectory(req.OutputDir)
	ui.settings.SetFormat(req.Format)
	ui.settings.SetEmbedSubtitles(req.EmbedSubtitles)

	job, err := ui.launcher.Start(req)
	if err != nil {
		if errors.Is(err, download.ErrJobRunning) {
			dialog.ShowInformation(ui.text(KeyWarning), ui.text(KeyAlreadyRunning), ui.window)
			return
		}
		dialog.ShowError(err, ui.window)
		return
	}
	log.Printf("Started job %s for %s", job.ID, req.URL)
}

func (ui *RootUI) onStopClick() {
	if !ui.launcher.Stop() {
		log.Printf("Stop requested with no active job")
	}
}

func (ui *RootUI) onBrowseClick() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.dirEntry.SetText(uri.Path())
	}, ui.window)
}

func (ui *RootUI) onOpenFolderClick() {
	dir := ui.lastDestDir
	if dir == "" {
		dir = strings.TrimSpace(ui.dirEntry.Text)
	}
	ui.revealFolder(dir)
}

// revealFolder opens dir in the system file manager without blocking the UI
func (ui *RootUI) revealFolder(dir string) {
	go func() {
		if err := platform.OpenFolder(dir); err != nil {
			log.Printf("Error opening folder %s: %v", dir, err)
			fyne.Do(func() {
				dialog.ShowError(fmt.Errorf("%s: %w", ui.text(KeyErrorOpeningFolder), err), ui.window)
			})
		}
	}()
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
	}).Show()
}

// OnLogLine is called from the worker goroutine
func (ui *RootUI) OnLogLine(text string) {
	line := model.NewLogLine(text)
	fyne.Do(func() {
		ui.logView.Append(line)
	})
}

// OnProgress is called from the worker goroutine
func (ui *RootUI) OnProgress(event model.ProgressEvent) {
	ui.OnLogLine(event.Message())
}

// OnJobState is called from the worker goroutine
func (ui *RootUI) OnJobState(job model.Job) {
	fyne.Do(func() {
		ui.applyJobState(job)
	})
}

// applyJobState updates the buttons for a job snapshot. UI goroutine only.
func (ui *RootUI) applyJobState(job model.Job) {
	if job.State.IsActive() {
		ui.stopBtn.Enable()
	} else {
		ui.stopBtn.Disable()
	}

	if job.Destination != "" {
		ui.lastDestDir = job.Destination
	}

	if job.State == model.JobStateCompleted && ui.settings.GetRevealOnComplete() && ui.lastDestDir != "" {
		ui.revealFolder(ui.lastDestDir)
	}
}
