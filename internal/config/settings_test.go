package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/imgdrop/internal/compress"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestMaxDimensions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Unbounded by default
	if settings.GetMaxWidth() != DefaultMaxWidth || settings.GetMaxHeight() != DefaultMaxHeight {
		t.Errorf("Expected unbounded defaults, got %dx%d", settings.GetMaxWidth(), settings.GetMaxHeight())
	}

	settings.SetMaxWidth(1920)
	settings.SetMaxHeight(1080)
	if settings.GetMaxWidth() != 1920 {
		t.Errorf("Expected max width 1920, got %d", settings.GetMaxWidth())
	}
	if settings.GetMaxHeight() != 1080 {
		t.Errorf("Expected max height 1080, got %d", settings.GetMaxHeight())
	}

	// Test boundary values
	settings.SetMaxWidth(-5) // Should remove the bound
	if settings.GetMaxWidth() != 0 {
		t.Error("Negative max width should mean unbounded")
	}

	settings.SetMaxHeight(100000) // Should be clamped
	if settings.GetMaxHeight() != MaxDimensionLimit {
		t.Errorf("Max height should be clamped to %d", MaxDimensionLimit)
	}
}

func TestQuality(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if q := settings.GetQuality(); q != DefaultQuality {
		t.Errorf("Expected default quality %v, got %v", DefaultQuality, q)
	}

	settings.SetQuality(0.75)
	if q := settings.GetQuality(); q != 0.75 {
		t.Errorf("Expected quality 0.75, got %v", q)
	}

	settings.SetQuality(3)
	if q := settings.GetQuality(); q != 1 {
		t.Errorf("Quality should be clamped to 1, got %v", q)
	}

	settings.SetQuality(0)
	if q := settings.GetQuality(); q != MinQuality {
		t.Errorf("Quality should be clamped to %v, got %v", MinQuality, q)
	}
}

func TestResampler(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if r := settings.GetResampler(); r != DefaultResampler {
		t.Errorf("Expected default resampler %s, got %s", DefaultResampler, r)
	}

	settings.SetResampler(compress.ResamplerLanczos)
	if r := settings.GetResampler(); r != compress.ResamplerLanczos {
		t.Errorf("Expected resampler %s, got %s", compress.ResamplerLanczos, r)
	}

	// Unknown stored values fall back to the default
	app.Preferences().SetString(KeyResampler, "bogus")
	if r := settings.GetResampler(); r != DefaultResampler {
		t.Errorf("Expected fallback resampler %s, got %s", DefaultResampler, r)
	}

	if len(settings.GetResamplerOptions()) != len(compress.Resamplers()) {
		t.Error("Resampler options should list every kernel")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestAutoReveal(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoRevealOnComplete() {
		t.Error("Auto reveal should default to true")
	}
	settings.SetAutoRevealOnComplete(false)
	if settings.GetAutoRevealOnComplete() {
		t.Error("Auto reveal should be disabled")
	}
}

func TestCompressOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetMaxWidth(800)
	settings.SetQuality(0.5)
	settings.SetResampler(compress.ResamplerNearest)

	opts := settings.CompressOptions()
	expected := compress.Options{MaxWidth: 800, MaxHeight: 0, Quality: 0.5, Resampler: compress.ResamplerNearest}
	if opts != expected {
		t.Errorf("CompressOptions() = %+v, expected %+v", opts, expected)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
