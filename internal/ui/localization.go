package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyURL                = "url"
	KeyEnterURL           = "enter_url"
	KeyOutputFormat       = "output_format"
	KeyFormatBest         = "format_best"
	KeyFormatMP4          = "format_mp4"
	KeyFormatWebM         = "format_webm"
	KeyFormatMP3          = "format_mp3"
	KeySubtitles          = "subtitles"
	KeyEmbedSubtitles     = "embed_subtitles"
	KeySaveLocation       = "save_location"
	KeyBrowse             = "browse"
	KeyStart              = "start"
	KeyStop               = "stop"
	KeyOpenFolder         = "open_folder"
	KeyDownloadLog        = "download_log"
	KeyError              = "error"
	KeyWarning            = "warning"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyInvalidDirectory   = "invalid_directory"
	KeyAlreadyRunning     = "already_running"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyRevealOnComplete   = "reveal_on_complete"
	KeyAutoInstallTools   = "auto_install_tools"
	KeyRestartRequired    = "restart_required"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
)

// FallbackLanguage is used when a text or language is missing
const FallbackLanguage = "en"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: FallbackLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves to the OS locale
// when a translation for it exists.
func (l *Localization) SetLanguage(code string) {
	if code == LanguageSystem {
		code = strings.SplitN(lang.SystemLocale().LanguageString(), "-", 2)[0]
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
		return
	}
	l.currentLanguage = FallbackLanguage
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[FallbackLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "YouTube Backup Tool",
		KeyURL:                "Video URL:",
		KeyEnterURL:           "https://youtube.com/watch?v=... or a playlist / channel URL",
		KeyOutputFormat:       "Output Format:",
		KeyFormatBest:         "Best Quality (Video+Audio)",
		KeyFormatMP4:          "MP4",
		KeyFormatWebM:         "WebM",
		KeyFormatMP3:          "Audio Only (MP3)",
		KeySubtitles:          "Subtitles:",
		KeyEmbedSubtitles:     "Embed Subtitles (if available)",
		KeySaveLocation:       "Save Location:",
		KeyBrowse:             "Browse",
		KeyStart:              "Start Download",
		KeyStop:               "Stop Download",
		KeyOpenFolder:         "Open Folder",
		KeyDownloadLog:        "Download Log:",
		KeyError:              "Error",
		KeyWarning:            "Warning",
		KeyPleaseEnterURL:     "Please enter a video URL",
		KeyInvalidDirectory:   "Invalid save directory",
		KeyAlreadyRunning:     "Download already in progress",
		KeyErrorOpeningFolder: "Error opening folder",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyRevealOnComplete:   "Open folder when a download completes",
		KeyAutoInstallTools:   "Install yt-dlp and ffmpeg automatically",
		KeyRestartRequired:    "Some changes take effect after restart.",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Резервное копирование YouTube",
		KeyURL:                "URL видео:",
		KeyEnterURL:           "https://youtube.com/watch?v=... или URL плейлиста / канала",
		KeyOutputFormat:       "Формат:",
		KeyFormatBest:         "Лучшее качество (видео+аудио)",
		KeyFormatMP4:          "MP4",
		KeyFormatWebM:         "WebM",
		KeyFormatMP3:          "Только аудио (MP3)",
		KeySubtitles:          "Субтитры:",
		KeyEmbedSubtitles:     "Встроить субтитры (если есть)",
		KeySaveLocation:       "Папка сохранения:",
		KeyBrowse:             "Обзор",
		KeyStart:              "Начать загрузку",
		KeyStop:               "Остановить",
		KeyOpenFolder:         "Открыть папку",
		KeyDownloadLog:        "Журнал загрузки:",
		KeyError:              "Ошибка",
		KeyWarning:            "Предупреждение",
		KeyPleaseEnterURL:     "Пожалуйста, введите URL видео",
		KeyInvalidDirectory:   "Неверная папка сохранения",
		KeyAlreadyRunning:     "Загрузка уже выполняется",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyRevealOnComplete:   "Открывать папку после загрузки",
		KeyAutoInstallTools:   "Устанавливать yt-dlp и ffmpeg автоматически",
		KeyRestartRequired:    "Некоторые изменения вступят в силу после перезапуска.",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Backup do YouTube",
		KeyURL:                "URL do vídeo:",
		KeyEnterURL:           "https://youtube.com/watch?v=... ou URL de playlist / canal",
		KeyOutputFormat:       "Formato de saída:",
		KeyFormatBest:         "Melhor qualidade (vídeo+áudio)",
		KeyFormatMP4:          "MP4",
		KeyFormatWebM:         "WebM",
		KeyFormatMP3:          "Somente áudio (MP3)",
		KeySubtitles:          "Legendas:",
		KeyEmbedSubtitles:     "Incorporar legendas (se disponíveis)",
		KeySaveLocation:       "Local de salvamento:",
		KeyBrowse:             "Navegar",
		KeyStart:              "Iniciar download",
		KeyStop:               "Parar download",
		KeyOpenFolder:         "Abrir pasta",
		KeyDownloadLog:        "Registro de download:",
		KeyError:              "Erro",
		KeyWarning:            "Aviso",
		KeyPleaseEnterURL:     "Por favor, digite uma URL de vídeo",
		KeyInvalidDirectory:   "Diretório de salvamento inválido",
		KeyAlreadyRunning:     "Download já em andamento",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyRevealOnComplete:   "Abrir pasta ao concluir o download",
		KeyAutoInstallTools:   "Instalar yt-dlp e ffmpeg automaticamente",
		KeyRestartRequired:    "Algumas alterações terão efeito após reiniciar.",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
	}
}
