package ui

import (
	"testing"
)

func TestLocalizationGetText(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		name     string
		language string
		key      string
		expected string
	}{
		{"english", "en", KeyDownload, "Download"},
		{"russian", "ru", KeyDownload, "Скачать"},
		{"portuguese", "pt", KeyDownload, "Baixar"},
		{"unknown key", "en", "no_such_key", "no_such_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l.SetLanguage(tt.language)
			if got := l.GetText(tt.key); got != tt.expected {
				t.Errorf("GetText(%q) = %q, expected %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestLocalizationUnknownLanguageKeepsCurrent(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")
	l.SetLanguage("xx")

	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("GetCurrentLanguage() = %s, expected ru", l.GetCurrentLanguage())
	}
}

func TestLocalizationSystemLanguage(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("system")

	if _, ok := l.GetAvailableLanguages()[l.GetCurrentLanguage()]; !ok {
		t.Errorf("System language resolved to unavailable language %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationCompleteness(t *testing.T) {
	l := NewLocalization()

	for code := range l.GetAvailableLanguages() {
		if len(l.texts[code]) != len(l.texts["en"]) {
			t.Errorf("Language %s has %d texts, expected %d", code, len(l.texts[code]), len(l.texts["en"]))
		}
	}
}
