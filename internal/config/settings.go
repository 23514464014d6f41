package config

import (
	"math"

	"fyne.io/fyne/v2"

	"github.com/ytget/imgdrop/internal/compress"
	"github.com/ytget/imgdrop/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyMaxWidth           = "max_width"
	KeyMaxHeight          = "max_height"
	KeyQuality            = "quality"
	KeyResampler          = "resampler"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultMaxWidth           = 0 // unbounded
	DefaultMaxHeight          = 0 // unbounded
	DefaultQuality            = compress.DefaultQuality
	DefaultResampler          = compress.DefaultResampler
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
	FallbackDownloadDir       = platform.FallbackDownloadsPath
)

// Limits
const (
	MaxDimensionLimit = 16384
	MinQuality        = 0.01
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetMaxWidth returns the width bound for landscape images, 0 for none
func (s *Settings) GetMaxWidth() int {
	return clampDimension(s.app.Preferences().IntWithFallback(KeyMaxWidth, DefaultMaxWidth))
}

// SetMaxWidth sets the width bound; values below 1 remove it
func (s *Settings) SetMaxWidth(width int) {
	s.app.Preferences().SetInt(KeyMaxWidth, clampDimension(width))
}

// GetMaxHeight returns the height bound for portrait images, 0 for none
func (s *Settings) GetMaxHeight() int {
	return clampDimension(s.app.Preferences().IntWithFallback(KeyMaxHeight, DefaultMaxHeight))
}

// SetMaxHeight sets the height bound; values below 1 remove it
func (s *Settings) SetMaxHeight(height int) {
	s.app.Preferences().SetInt(KeyMaxHeight, clampDimension(height))
}

// GetQuality returns the encoder quality in (0, 1]
func (s *Settings) GetQuality() float64 {
	value := s.app.Preferences().Float(KeyQuality)
	if value <= 0 || math.IsNaN(value) {
		s.SetQuality(DefaultQuality)
		return DefaultQuality
	}
	return clampQuality(value)
}

// SetQuality sets the encoder quality, clamped to [MinQuality, 1]
func (s *Settings) SetQuality(quality float64) {
	s.app.Preferences().SetFloat(KeyQuality, clampQuality(quality))
}

// GetResampler returns the configured resampling kernel
func (s *Settings) GetResampler() compress.Resampler {
	r, err := compress.ParseResampler(s.app.Preferences().String(KeyResampler))
	if err != nil || r == "" {
		s.SetResampler(DefaultResampler)
		return DefaultResampler
	}
	return r
}

// SetResampler sets the resampling kernel
func (s *Settings) SetResampler(r compress.Resampler) {
	s.app.Preferences().SetString(KeyResampler, string(r))
}

// GetResamplerOptions returns available resampler options
func (s *Settings) GetResamplerOptions() []compress.Resampler {
	return compress.Resamplers()
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

// GetAutoRevealOnComplete returns whether to reveal saved files when done
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal saved files when done
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
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

// CompressOptions assembles compressor options from the stored settings
func (s *Settings) CompressOptions() compress.Options {
	return compress.Options{
		MaxWidth:  s.GetMaxWidth(),
		MaxHeight: s.GetMaxHeight(),
		Quality:   s.GetQuality(),
		Resampler: s.GetResampler(),
	}
}

func clampDimension(v int) int {
	if v < 1 {
		return 0
	}
	if v > MaxDimensionLimit {
		return MaxDimensionLimit
	}
	return v
}

func clampQuality(q float64) float64 {
	if math.IsNaN(q) || q < MinQuality {
		return MinQuality
	}
	if q > 1 {
		return 1
	}
	return q
}
