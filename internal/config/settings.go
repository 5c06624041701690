package config

import (
	"log"
	"os"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-backup/internal/model"
	"github.com/ytget/yt-backup/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir        = "output_directory"
	KeyFormat           = "output_format"
	KeyEmbedSubtitles   = "embed_subtitles"
	KeyLanguage         = "app_language"
	KeyRevealOnComplete = "reveal_on_complete"
	KeyAutoInstallTools = "auto_install_tools"
)

// Default values
const (
	DefaultFormat           = model.FormatBest
	DefaultEmbedSubtitles   = true
	DefaultLanguage         = "system"
	DefaultRevealOnComplete = false
	DefaultAutoInstallTools = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured output root
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir != "" {
		return dir
	}

	defaultDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		log.Printf("Falling back to working directory: %v", err)
		if defaultDir, err = os.Getwd(); err != nil {
			defaultDir = "."
		}
	}
	s.SetOutputDirectory(defaultDir)
	return defaultDir
}

// SetOutputDirectory sets the output root
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetFormat returns the last selected output format
func (s *Settings) GetFormat() model.Format {
	format, err := model.ParseFormat(s.app.Preferences().String(KeyFormat))
	if err != nil {
		s.SetFormat(DefaultFormat)
		return DefaultFormat
	}
	return format
}

// SetFormat sets the output format, ignoring unknown values
func (s *Settings) SetFormat(format model.Format) {
	if _, err := model.ParseFormat(string(format)); err != nil {
		format = DefaultFormat
	}
	s.app.Preferences().SetString(KeyFormat, string(format))
}

// GetEmbedSubtitles returns whether subtitles are embedded
func (s *Settings) GetEmbedSubtitles() bool {
	return s.app.Preferences().BoolWithFallback(KeyEmbedSubtitles, DefaultEmbedSubtitles)
}

// SetEmbedSubtitles sets whether subtitles are embedded
func (s *Settings) SetEmbedSubtitles(embed bool) {
	s.app.Preferences().SetBool(KeyEmbedSubtitles, embed)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRevealOnComplete returns whether to open the destination when a job completes
func (s *Settings) GetRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnComplete, DefaultRevealOnComplete)
}

// SetRevealOnComplete sets whether to open the destination when a job completes
func (s *Settings) SetRevealOnComplete(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnComplete, reveal)
}

// GetAutoInstallTools returns whether yt-dlp and ffmpeg are installed on demand
func (s *Settings) GetAutoInstallTools() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoInstallTools, DefaultAutoInstallTools)
}

// SetAutoInstallTools sets whether yt-dlp and ffmpeg are installed on demand
func (s *Settings) SetAutoInstallTools(install bool) {
	s.app.Preferences().SetBool(KeyAutoInstallTools, install)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
