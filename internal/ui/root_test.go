package ui

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/imgdrop/internal/compress"
	"github.com/ytget/imgdrop/internal/config"
	"github.com/ytget/imgdrop/internal/model"
)

type recordingDownloader struct {
	mu   sync.Mutex
	urls []string
}

func (d *recordingDownloader) Download(url string) {
	d.mu.Lock()
	d.urls = append(d.urls, url)
	d.mu.Unlock()
}

func (d *recordingDownloader) Wait() {}

type fakeCompressor struct {
	opts    compress.Options
	started []*model.Blob
	removed []string
	failFor string
	seq     int
}

func (c *fakeCompressor) SetUpdateCallback(func(*model.CompressionTask)) {}

func (c *fakeCompressor) SetOptions(opts compress.Options) { c.opts = opts }

func (c *fakeCompressor) StartCompression(blob *model.Blob) (*model.CompressionTask, error) {
	if blob.Name == c.failFor {
		return nil, compress.ErrUnsupportedFormat
	}
	c.seq++
	c.started = append(c.started, blob)
	return &model.CompressionTask{
		ID:        compress.TaskIDPrefix + strings.Repeat("x", c.seq),
		InputName: blob.Name,
		Status:    model.TaskStatusProcessing,
		InputSize: blob.Size(),
	}, nil
}

func (c *fakeCompressor) GetTask(string) (*model.CompressionTask, bool) { return nil, false }

func (c *fakeCompressor) GetAllTasks() []*model.CompressionTask { return nil }

func (c *fakeCompressor) RemoveTask(taskID string) error {
	if taskID == "" {
		return errors.New("task not found")
	}
	c.removed = append(c.removed, taskID)
	return nil
}

func (c *fakeCompressor) Wait() {}

func newTestRootUI(t *testing.T) (*RootUI, *recordingDownloader, *fakeCompressor, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	settings.SetLanguage("en")
	settings.SetAutoRevealOnComplete(false)

	downloader := &recordingDownloader{}
	compressor := &fakeCompressor{}
	ui := NewRootUI(window, settings, downloader, compressor, nil, zaptest.NewLogger(t))
	return ui, downloader, compressor, settings
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"https://example.com/a.png", false},
		{"http://example.com/", false},
		{"ftp://example.com/a.png", true},
		{"https://", true},
		{"example.com/a.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestRootUIDownloadClick(t *testing.T) {
	ui, downloader, _, _ := newTestRootUI(t)

	ui.urlEntry.SetText("  https://example.com/images/cat.png  ")
	ui.onDownloadClick()

	assert.Equal(t, []string{"https://example.com/images/cat.png"}, downloader.urls)
	assert.Empty(t, ui.urlEntry.Text)
	assert.Equal(t, "Download started", ui.notificationLabel.Text)
	assert.True(t, ui.notificationContainer.Visible())
}

func TestRootUIDownloadClickRejectsInvalidURL(t *testing.T) {
	ui, downloader, _, _ := newTestRootUI(t)

	ui.urlEntry.SetText("ftp://example.com/cat.png")
	ui.onDownloadClick()

	assert.Empty(t, downloader.urls)
	assert.True(t, strings.HasPrefix(ui.notificationLabel.Text, "Invalid URL"))

	ui.urlEntry.SetText("")
	ui.onDownloadClick()
	assert.Equal(t, "Please enter a URL", ui.notificationLabel.Text)
}

func TestRootUIFilesStartCompression(t *testing.T) {
	ui, _, compressor, settings := newTestRootUI(t)
	settings.SetMaxWidth(640)
	settings.SetQuality(0.5)

	compressor.failFor = "bad.png"
	ui.onFiles([]*model.Blob{
		model.NewBlob("a.png", compress.MediaTypePNG, []byte{1, 2, 3}),
		model.NewBlob("bad.png", compress.MediaTypePNG, nil),
		model.NewBlob("b.jpg", compress.MediaTypeJPEG, []byte{4}),
	})

	assert.Equal(t, 640, compressor.opts.MaxWidth)
	assert.Equal(t, 0.5, compressor.opts.Quality)
	require.Len(t, compressor.started, 2)
	require.Len(t, ui.tasks, 2)
	assert.Equal(t, 2, ui.taskList.Length())
	assert.Equal(t, "Compressing: 2", ui.notificationLabel.Text)
}

func TestRootUITaskUpdates(t *testing.T) {
	ui, _, _, _ := newTestRootUI(t)

	processing := &model.CompressionTask{ID: "compress-1", InputName: "a.png", Status: model.TaskStatusProcessing, InputSize: 4096}
	ui.onTaskUpdate(processing)
	require.Len(t, ui.tasks, 1)

	done := *processing
	done.Status = model.TaskStatusCompleted
	done.OutputName = "a.webp"
	done.OutputSize = 1024
	ui.onTaskUpdate(&done)

	assert.Equal(t, model.TaskStatusCompleted, ui.tasks[0].Status)
	assert.True(t, strings.HasPrefix(ui.notificationLabel.Text, "Compression completed: a.webp"))

	// A late processing snapshot must not undo the completion
	ui.onTaskUpdate(processing)
	assert.Equal(t, model.TaskStatusCompleted, ui.tasks[0].Status)
}

func TestRootUIRemoveTask(t *testing.T) {
	ui, _, compressor, _ := newTestRootUI(t)
	ui.onTaskUpdate(&model.CompressionTask{ID: "compress-1", Status: model.TaskStatusCompleted})
	ui.onTaskUpdate(&model.CompressionTask{ID: "compress-2", Status: model.TaskStatusError})

	ui.onRemoveTask("compress-1")

	assert.Equal(t, []string{"compress-1"}, compressor.removed)
	require.Len(t, ui.tasks, 1)
	assert.Equal(t, "compress-2", ui.tasks[0].ID)
}

func TestRootUILanguageChange(t *testing.T) {
	ui, _, _, settings := newTestRootUI(t)

	ui.onLanguageChange("ru")

	assert.Equal(t, "ru", settings.GetLanguage())
	assert.Equal(t, "Скачать", ui.downloadBtn.Text)
	assert.Equal(t, ui.localization.GetText(KeyDropHint), ui.dropZone.hint)
}
