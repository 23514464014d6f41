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
	KeyDownload           = "download"
	KeyOpen               = "open"
	KeyReveal             = "reveal"
	KeyCopyPath           = "copy_path"
	KeyRemove             = "remove"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyDownloadDirectory  = "download_directory"
	KeyMaxWidth           = "max_width"
	KeyMaxHeight          = "max_height"
	KeyUnbounded          = "unbounded"
	KeyQuality            = "quality"
	KeyResampler          = "resampler"
	KeyAutoReveal         = "auto_reveal"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyEnterURL           = "enter_url"
	KeySettingsSaved      = "settings_saved"
	KeyDownloadStarted    = "download_started"
	KeyDropHint           = "drop_hint"
	KeyUnsupportedFile    = "unsupported_file"
	KeyCompressionStarted = "compression_started"
	KeyCompressionDone    = "compression_done"
	KeyCompressionFailed  = "compression_failed"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyInvalidURL         = "invalid_url"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyPathCopied         = "path_copied"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the OS locale when
// a translation exists for it, English otherwise.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// systemLanguage returns the base language of the OS locale, e.g. "pt" for "pt-BR"
func systemLanguage() string {
	code, _, _ := strings.Cut(lang.SystemLocale().LanguageString(), "-")
	if code == "" {
		return "en"
	}
	return strings.ToLower(code)
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
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
		KeyAppTitle:           "ImgDrop",
		KeyDownload:           "Download",
		KeyOpen:               "Open",
		KeyReveal:             "Reveal",
		KeyCopyPath:           "Path",
		KeyRemove:             "Remove",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyDownloadDirectory:  "Save Directory",
		KeyMaxWidth:           "Max Width (px)",
		KeyMaxHeight:          "Max Height (px)",
		KeyUnbounded:          "0 = no limit",
		KeyQuality:            "Quality",
		KeyResampler:          "Resampling",
		KeyAutoReveal:         "Reveal files when done",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyEnterURL:           "Enter file URL (https://example.com/image.png)",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyDownloadStarted:    "Download started",
		KeyDropHint:           "Drop JPEG or PNG images here, or click to choose",
		KeyUnsupportedFile:    "Unsupported file",
		KeyCompressionStarted: "Compressing",
		KeyCompressionDone:    "Compression completed",
		KeyCompressionFailed:  "Compression failed",
		KeyErrorOpeningFile:   "Error opening file",
		KeyInvalidURL:         "Invalid URL",
		KeyPleaseEnterURL:     "Please enter a URL",
		KeyPathCopied:         "Path copied to clipboard",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "ImgDrop",
		KeyDownload:           "Скачать",
		KeyOpen:               "Открыть",
		KeyReveal:             "Показать",
		KeyCopyPath:           "Путь",
		KeyRemove:             "Убрать",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyDownloadDirectory:  "Папка сохранения",
		KeyMaxWidth:           "Макс. ширина (px)",
		KeyMaxHeight:          "Макс. высота (px)",
		KeyUnbounded:          "0 = без ограничения",
		KeyQuality:            "Качество",
		KeyResampler:          "Интерполяция",
		KeyAutoReveal:         "Показывать файлы по готовности",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyEnterURL:           "Введите URL файла (https://example.com/image.png)",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyDownloadStarted:    "Загрузка начата",
		KeyDropHint:           "Перетащите сюда JPEG или PNG, или нажмите для выбора",
		KeyUnsupportedFile:    "Неподдерживаемый файл",
		KeyCompressionStarted: "Сжатие",
		KeyCompressionDone:    "Сжатие завершено",
		KeyCompressionFailed:  "Ошибка сжатия",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyInvalidURL:         "Неверный URL",
		KeyPleaseEnterURL:     "Пожалуйста, введите URL",
		KeyPathCopied:         "Путь скопирован в буфер обмена",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "ImgDrop",
		KeyDownload:           "Baixar",
		KeyOpen:               "Abrir",
		KeyReveal:             "Mostrar",
		KeyCopyPath:           "Caminho",
		KeyRemove:             "Remover",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyDownloadDirectory:  "Diretório de Destino",
		KeyMaxWidth:           "Largura Máx. (px)",
		KeyMaxHeight:          "Altura Máx. (px)",
		KeyUnbounded:          "0 = sem limite",
		KeyQuality:            "Qualidade",
		KeyResampler:          "Reamostragem",
		KeyAutoReveal:         "Mostrar arquivos ao concluir",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeyEnterURL:           "Digite a URL do arquivo (https://example.com/image.png)",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyDownloadStarted:    "Download iniciado",
		KeyDropHint:           "Solte imagens JPEG ou PNG aqui, ou clique para escolher",
		KeyUnsupportedFile:    "Arquivo não suportado",
		KeyCompressionStarted: "Comprimindo",
		KeyCompressionDone:    "Compressão concluída",
		KeyCompressionFailed:  "Falha na compressão",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyInvalidURL:         "URL inválida",
		KeyPleaseEnterURL:     "Por favor, digite uma URL",
		KeyPathCopied:         "Caminho copiado",
	}
}
