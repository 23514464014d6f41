package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/imgdrop/internal/compress"
	"github.com/ytget/imgdrop/internal/config"
)

// Quality slider range, shown as percent
const (
	QualitySliderMin  = 1
	QualitySliderMax  = 100
	QualitySliderStep = 1
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry *widget.Entry
	maxWidthEntry    *widget.Entry
	maxHeightEntry   *widget.Entry
	qualitySlider    *widget.Slider
	qualityLabel     *widget.Label
	resamplerSelect  *widget.Select
	languageSelect   *widget.Select
	autoRevealCheck  *widget.Check
}

// ShowSettingsDialog builds a settings dialog and shows it
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
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

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	// Save directory selection
	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Dimension bounds
	sd.maxWidthEntry = widget.NewEntry()
	sd.maxWidthEntry.SetPlaceHolder(text(KeyUnbounded))
	sd.maxWidthEntry.Validator = validateDimension
	sd.maxHeightEntry = widget.NewEntry()
	sd.maxHeightEntry.SetPlaceHolder(text(KeyUnbounded))
	sd.maxHeightEntry.Validator = validateDimension

	// Quality as percent
	sd.qualityLabel = widget.NewLabel("")
	sd.qualitySlider = widget.NewSlider(QualitySliderMin, QualitySliderMax)
	sd.qualitySlider.Step = QualitySliderStep
	sd.qualitySlider.OnChanged = func(v float64) {
		sd.qualityLabel.SetText(fmt.Sprintf("%.0f%%", v))
	}
	qualityRow := container.NewBorder(nil, nil, nil, sd.qualityLabel, sd.qualitySlider)

	// Resampler selection
	resamplerOptions := []string{}
	for _, r := range sd.settings.GetResamplerOptions() {
		resamplerOptions = append(resamplerOptions, string(r))
	}
	sd.resamplerSelect = widget.NewSelect(resamplerOptions, nil)

	// Language selection, shown by display name
	sd.languageSelect = widget.NewSelect(sd.languageNames(), nil)

	sd.autoRevealCheck = widget.NewCheck(text(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewLabel(text(KeyMaxWidth)+":"),
		sd.maxWidthEntry,

		widget.NewLabel(text(KeyMaxHeight)+":"),
		sd.maxHeightEntry,

		widget.NewLabel(text(KeyQuality)+":"),
		qualityRow,

		widget.NewLabel(text(KeyResampler)+":"),
		sd.resamplerSelect,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
		sd.autoRevealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// languageNames returns the language display names sorted by code
func (sd *SettingsDialog) languageNames() []string {
	options := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, options[code])
	}
	return names
}

func (sd *SettingsDialog) languageCode(name string) string {
	for code, display := range sd.settings.GetLanguageOptions() {
		if display == name {
			return code
		}
	}
	return ""
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.maxWidthEntry.SetText(strconv.Itoa(sd.settings.GetMaxWidth()))
	sd.maxHeightEntry.SetText(strconv.Itoa(sd.settings.GetMaxHeight()))
	sd.qualitySlider.SetValue(sd.settings.GetQuality() * QualitySliderMax)
	sd.resamplerSelect.SetSelected(string(sd.settings.GetResampler()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := strings.TrimSpace(sd.downloadDirEntry.Text); dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	// Invalid numbers keep the stored value
	if width, err := parseDimension(sd.maxWidthEntry.Text); err == nil {
		sd.settings.SetMaxWidth(width)
	}
	if height, err := parseDimension(sd.maxHeightEntry.Text); err == nil {
		sd.settings.SetMaxHeight(height)
	}

	sd.settings.SetQuality(sd.qualitySlider.Value / QualitySliderMax)

	if r, err := compress.ParseResampler(sd.resamplerSelect.Selected); err == nil {
		sd.settings.SetResampler(r)
	}

	if code := sd.languageCode(sd.languageSelect.Selected); code != "" {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// parseDimension accepts an empty string as 0 (no bound)
func parseDimension(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("dimension must not be negative: %d", v)
	}
	return v, nil
}

func validateDimension(s string) error {
	_, err := parseDimension(s)
	return err
}
