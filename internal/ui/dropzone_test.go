package ui

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/imgdrop/internal/compress"
	"github.com/ytget/imgdrop/internal/model"
)

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 4, 3))))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestDropZoneHoverTogglesActive(t *testing.T) {
	test.NewApp()
	dz := NewDropZone(nil, "drop here", nil)

	assert.False(t, dz.Active())

	dz.MouseIn(&desktop.MouseEvent{})
	assert.True(t, dz.Active())

	dz.MouseMoved(&desktop.MouseEvent{})
	assert.True(t, dz.Active())

	dz.MouseOut()
	assert.False(t, dz.Active())
}

func TestDropZoneDragTogglesActive(t *testing.T) {
	test.NewApp()
	dz := NewDropZone(nil, "drop here", nil)

	dz.Dragged(&fyne.DragEvent{})
	assert.True(t, dz.Active())

	dz.DragEnd()
	assert.False(t, dz.Active())
}

func TestDropZoneTouchTogglesActive(t *testing.T) {
	test.NewApp()
	dz := NewDropZone(nil, "drop here", nil)

	dz.TouchDown(&mobile.TouchEvent{})
	assert.True(t, dz.Active())

	dz.TouchUp(&mobile.TouchEvent{})
	assert.False(t, dz.Active())

	dz.TouchDown(&mobile.TouchEvent{})
	dz.TouchCancel(&mobile.TouchEvent{})
	assert.False(t, dz.Active())
}

func TestDropZoneInstancesAreIndependent(t *testing.T) {
	test.NewApp()
	first := NewDropZone(nil, "first", nil)
	second := NewDropZone(nil, "second", nil)

	first.MouseIn(&desktop.MouseEvent{})

	assert.True(t, first.Active())
	assert.False(t, second.Active())
}

func TestDropZoneRendererAccent(t *testing.T) {
	test.NewApp()
	dz := NewDropZone(nil, "drop here", nil)
	r := test.WidgetRenderer(dz).(*dropZoneRenderer)

	assert.NotEqual(t, theme.Color(theme.ColorNamePrimary), r.background.StrokeColor)

	dz.MouseIn(&desktop.MouseEvent{})
	assert.Equal(t, theme.Color(theme.ColorNamePrimary), r.background.StrokeColor)

	dz.MouseOut()
	assert.NotEqual(t, theme.Color(theme.ColorNamePrimary), r.background.StrokeColor)

	dz.SetHint("updated")
	assert.Equal(t, "updated", r.label.Text)
}

func TestDropZoneHandleDropFiltersByContent(t *testing.T) {
	test.NewApp()
	dir := t.TempDir()

	image1 := writePNG(t, dir, "one.png")
	// PNG bytes behind a misleading extension are still accepted
	image2 := writePNG(t, dir, "two.dat")
	text := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(text, []byte("plain text, not an image"), 0o644))

	var received []*model.Blob
	var rejected []string
	dz := NewDropZone(nil, "drop here", func(blobs []*model.Blob) {
		received = append(received, blobs...)
	})
	dz.OnRejected = func(name string, err error) {
		rejected = append(rejected, name)
		assert.ErrorIs(t, err, compress.ErrUnsupportedFormat)
	}
	dz.MouseIn(&desktop.MouseEvent{})

	dz.HandleDrop(fyne.NewPos(10, 10), []fyne.URI{
		storage.NewFileURI(image1),
		storage.NewFileURI(text),
		storage.NewFileURI(image2),
	})

	require.Len(t, received, 2)
	assert.Equal(t, "one.png", received[0].Name)
	assert.Equal(t, compress.MediaTypePNG, received[0].MediaType)
	assert.Equal(t, "two.dat", received[1].Name)
	assert.Equal(t, []string{"notes.png"}, rejected)
	assert.False(t, dz.Active(), "drop should clear the active state")
}

func TestDropZoneHandleDropMissingFile(t *testing.T) {
	test.NewApp()

	called := false
	var rejected []string
	dz := NewDropZone(nil, "drop here", func([]*model.Blob) { called = true })
	dz.OnRejected = func(name string, err error) {
		rejected = append(rejected, name)
	}

	dz.HandleDrop(fyne.NewPos(0, 0), []fyne.URI{
		storage.NewFileURI(filepath.Join(t.TempDir(), "missing.png")),
	})

	assert.False(t, called, "OnFiles should not run when nothing was accepted")
	assert.Equal(t, []string{"missing.png"}, rejected)
}

func TestDropZoneTapWithoutWindow(t *testing.T) {
	test.NewApp()
	dz := NewDropZone(nil, "drop here", nil)

	assert.NotPanics(t, func() { dz.Tapped(&fyne.PointEvent{}) })
}
