package ui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/imgdrop/internal/compress"
	"github.com/ytget/imgdrop/internal/config"
	"github.com/ytget/imgdrop/internal/download"
	"github.com/ytget/imgdrop/internal/model"
	"github.com/ytget/imgdrop/internal/platform"
	"github.com/ytget/imgdrop/internal/storage"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	urlEntry     *widget.Entry
	downloadBtn  *widget.Button
	dropZone     *DropZone
	taskList     *widget.List
	tasks        []*model.CompressionTask // newest last, touched on the UI goroutine only
	downloadSvc  download.Downloader
	compressSvc  compress.Compressor
	saver        *storage.DirSaver
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSeq       int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(
	window fyne.Window,
	settings *config.Settings,
	downloadSvc download.Downloader,
	compressSvc compress.Compressor,
	saver *storage.DirSaver,
	logger *zap.Logger,
) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		downloadSvc:  downloadSvc,
		compressSvc:  compressSvc,
		saver:        saver,
		settings:     settings,
		localization: localization,
		logger:       logger.Named("ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Service callbacks arrive on worker goroutines
	ui.compressSvc.SetUpdateCallback(func(task *model.CompressionTask) {
		fyne.Do(func() { ui.onTaskUpdate(task) })
	})

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.downloadBtn, ui.urlEntry)

	// Notification panel under the URL input (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.dropZone = NewDropZone(ui.window, ui.localization.GetText(KeyDropHint), ui.onFiles)
	ui.dropZone.OnRejected = ui.onFileRejected
	ui.window.SetOnDropped(ui.dropZone.HandleDrop)

	ui.taskList = widget.NewList(
		func() int { return len(ui.tasks) },
		func() fyne.CanvasObject { return ui.createTaskItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateTaskItem(id, obj) },
	)

	top := container.NewVBox(topPanel, ui.notificationContainer, ui.dropZone)
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.taskList))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.dropZone.SetHint(ui.localization.GetText(KeyDropHint))
	ui.taskList.Refresh()
}

// validateURL accepts empty input and absolute http(s) URLs
func validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	parsedURL, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// onDownloadClick hands the URL to the downloader. The outcome is not
// reported back; failures only reach the log.
func (ui *RootUI) onDownloadClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterURL))
		return
	}

	if err := validateURL(urlText); err != nil {
		ui.showNotification(ui.localization.GetText(KeyInvalidURL) + ": " + err.Error())
		return
	}

	ui.logger.Debug("download requested", zap.String("url", urlText))
	ui.downloadSvc.Download(urlText)

	ui.urlEntry.SetText("")
	ui.showNotification(ui.localization.GetText(KeyDownloadStarted))
}

// onFiles starts a compression for every accepted file
func (ui *RootUI) onFiles(blobs []*model.Blob) {
	ui.compressSvc.SetOptions(ui.settings.CompressOptions())

	started := 0
	for _, blob := range blobs {
		task, err := ui.compressSvc.StartCompression(blob)
		if err != nil {
			ui.logger.Warn("compression not started", zap.String("input", blob.Name), zap.Error(err))
			ui.showNotification(ui.localization.GetText(KeyCompressionFailed) + ": " + err.Error())
			continue
		}
		ui.onTaskUpdate(task)
		started++
	}

	if started > 0 {
		ui.showNotification(fmt.Sprintf("%s: %d", ui.localization.GetText(KeyCompressionStarted), started))
	}
}

// onFileRejected reports a dropped file that is not a JPEG or PNG
func (ui *RootUI) onFileRejected(name string, err error) {
	ui.logger.Info("file rejected", zap.String("name", name), zap.Error(err))
	ui.showNotification(ui.localization.GetText(KeyUnsupportedFile) + ": " + name)
}

// onTaskUpdate merges a task snapshot into the list. Must run on the UI goroutine.
func (ui *RootUI) onTaskUpdate(task *model.CompressionTask) {
	index := -1
	for i, existing := range ui.tasks {
		if existing.ID == task.ID {
			index = i
			break
		}
	}

	if index < 0 {
		ui.tasks = append(ui.tasks, task)
	} else {
		previous := ui.tasks[index]
		if previous.Status.IsFinished() && !task.Status.IsFinished() {
			// stale snapshot
			return
		}
		ui.tasks[index] = task
		if !previous.Status.IsFinished() && task.Status.IsFinished() {
			ui.onTaskFinished(task)
		}
	}

	if ui.taskList != nil {
		ui.taskList.Refresh()
	}
}

// onTaskFinished notifies the user and reveals the output if configured
func (ui *RootUI) onTaskFinished(task *model.CompressionTask) {
	if task.Status == model.TaskStatusError {
		ui.showNotification(ui.localization.GetText(KeyCompressionFailed) + ": " + task.InputName)
		return
	}

	message := task.OutputName + MiddleDotSeparator + SizeText(task)
	ui.showNotification(ui.localization.GetText(KeyCompressionDone) + ": " + message)

	if app := fyne.CurrentApp(); app != nil {
		app.SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyCompressionDone),
			Content: message,
		})
	}

	if ui.settings.GetAutoRevealOnComplete() && task.OutputPath != "" {
		ui.onRevealFile(task.OutputPath)
	}
}

// showNotification displays a message in the panel under the URL input
// and hides it again after NotificationAutoHide
func (ui *RootUI) showNotification(message string) {
	ui.notificationSeq++
	seq := ui.notificationSeq

	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()

	time.AfterFunc(NotificationAutoHide, func() {
		fyne.Do(func() {
			if ui.notificationSeq == seq {
				ui.notificationContainer.Hide()
			}
		})
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies settings that live outside the compressor options
func (ui *RootUI) onSettingsSaved() {
	dir := ui.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.logger.Warn("failed to create save directory", zap.String("dir", dir), zap.Error(err))
	}
	if ui.saver != nil {
		ui.saver.SetDir(dir)
	}

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(lang)
	}
	ui.showNotification(ui.localization.GetText(KeySettingsSaved))
}

// createTaskItem creates a new task item widget
func (ui *RootUI) createTaskItem() fyne.CanvasObject {
	row := NewTaskRow(nil, ui.localization)
	row.SetCallbacks(ui.onRevealFile, ui.onOpenFile, ui.onCopyPath, ui.onRemoveTask)
	return row
}

// updateTaskItem binds a recycled row to the task at id, newest first
func (ui *RootUI) updateTaskItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.tasks) {
		return
	}
	if row, ok := item.(*TaskRow); ok {
		row.UpdateTask(ui.tasks[len(ui.tasks)-1-id])
	}
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Warn("failed to reveal file", zap.String("path", filePath), zap.Error(err))
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onOpenFile handles opening a saved file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.logger.Warn("failed to open file", zap.String("path", filePath), zap.Error(err))
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onCopyPath handles copying file path to clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	if app := fyne.CurrentApp(); app != nil {
		app.Clipboard().SetContent(filePath)
	}
	ui.showNotification(ui.localization.GetText(KeyPathCopied))
}

// onRemoveTask removes a finished task from the service and the list
func (ui *RootUI) onRemoveTask(taskID string) {
	if err := ui.compressSvc.RemoveTask(taskID); err != nil {
		ui.logger.Warn("failed to remove task", zap.String("task", taskID), zap.Error(err))
		return
	}

	for i, task := range ui.tasks {
		if task.ID == taskID {
			ui.tasks = append(ui.tasks[:i], ui.tasks[i+1:]...)
			break
		}
	}
	ui.taskList.Refresh()
}
