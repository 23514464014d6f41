package ui

import (
	"fmt"
	"image/color"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/imgdrop/internal/compress"
	"github.com/ytget/imgdrop/internal/model"
)

// DropZoneMediaTypes lists the content types the drop zone hands on
var DropZoneMediaTypes = []string{compress.MediaTypeJPEG, compress.MediaTypePNG}

// DropZone is a target area for image files. Files arrive either dropped
// onto the window or picked through a file dialog opened on tap. Only
// JPEG and PNG content is accepted; everything else is reported through
// OnRejected.
type DropZone struct {
	widget.BaseWidget

	window fyne.Window
	hint   string
	active bool

	// OnFiles receives the accepted files of one drop or pick
	OnFiles func(blobs []*model.Blob)
	// OnRejected receives the names of files that were not accepted
	OnRejected func(name string, err error)
}

// NewDropZone creates a drop zone. window may be nil, in which case tapping
// does not open a picker.
func NewDropZone(window fyne.Window, hint string, onFiles func([]*model.Blob)) *DropZone {
	dz := &DropZone{
		window:  window,
		hint:    hint,
		OnFiles: onFiles,
	}
	dz.ExtendBaseWidget(dz)
	return dz
}

// Active reports whether a pointer or drag is currently over the zone
func (dz *DropZone) Active() bool {
	return dz.active
}

// SetHint replaces the text shown inside the zone
func (dz *DropZone) SetHint(hint string) {
	dz.hint = hint
	dz.Refresh()
}

func (dz *DropZone) setActive(active bool) {
	if dz.active == active {
		return
	}
	dz.active = active
	dz.Refresh()
}

// MouseIn is called when a desktop pointer enters the widget
func (dz *DropZone) MouseIn(*desktop.MouseEvent) {
	dz.setActive(true)
}

// MouseMoved is called when a desktop pointer hovers over the widget
func (dz *DropZone) MouseMoved(*desktop.MouseEvent) {}

// MouseOut is called when a desktop pointer exits the widget
func (dz *DropZone) MouseOut() {
	dz.setActive(false)
}

// Dragged is called while a drag is in progress over the widget
func (dz *DropZone) Dragged(*fyne.DragEvent) {
	dz.setActive(true)
}

// DragEnd is called when the drag finishes
func (dz *DropZone) DragEnd() {
	dz.setActive(false)
}

// TouchDown is called when a finger lands on the widget
func (dz *DropZone) TouchDown(*mobile.TouchEvent) {
	dz.setActive(true)
}

// TouchUp is called when the finger lifts
func (dz *DropZone) TouchUp(*mobile.TouchEvent) {
	dz.setActive(false)
}

// TouchCancel is called when the touch leaves the widget
func (dz *DropZone) TouchCancel(*mobile.TouchEvent) {
	dz.setActive(false)
}

// Tapped opens the file picker. Fyne's open dialog selects one file at a
// time, so several files per interaction only arrive through HandleDrop.
func (dz *DropZone) Tapped(*fyne.PointEvent) {
	if dz.window == nil {
		return
	}
	picker := dialog.NewFileOpen(dz.onPicked, dz.window)
	picker.SetFilter(storage.NewMimeTypeFileFilter(DropZoneMediaTypes))
	picker.Show()
}

// HandleDrop accepts the files of a window drop. It is meant to be
// registered with fyne.Window.SetOnDropped.
func (dz *DropZone) HandleDrop(_ fyne.Position, uris []fyne.URI) {
	dz.setActive(false)

	var accepted []*model.Blob
	for _, uri := range uris {
		blob, err := loadURI(uri)
		if err == nil {
			err = checkAccepted(blob)
		}
		if err != nil {
			dz.reject(uri.Name(), err)
			continue
		}
		accepted = append(accepted, blob)
	}
	dz.deliver(accepted)
}

func (dz *DropZone) onPicked(reader fyne.URIReadCloser, err error) {
	if err != nil || reader == nil {
		return
	}
	defer reader.Close()

	name := reader.URI().Name()
	data, err := io.ReadAll(reader)
	if err != nil {
		dz.reject(name, err)
		return
	}
	blob := model.NewBlob(name, model.DetectMediaType(data), data)
	if err := checkAccepted(blob); err != nil {
		dz.reject(name, err)
		return
	}
	dz.deliver([]*model.Blob{blob})
}

func (dz *DropZone) deliver(blobs []*model.Blob) {
	if len(blobs) == 0 || dz.OnFiles == nil {
		return
	}
	dz.OnFiles(blobs)
}

func (dz *DropZone) reject(name string, err error) {
	if dz.OnRejected != nil {
		dz.OnRejected(name, err)
	}
}

// loadURI reads a dropped file. Local files are read directly, anything
// else goes through the Fyne storage repositories.
func loadURI(uri fyne.URI) (*model.Blob, error) {
	if uri.Scheme() == "file" {
		return model.LoadBlob(uri.Path())
	}

	reader, err := storage.Reader(uri)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return model.NewBlob(uri.Name(), model.DetectMediaType(data), data), nil
}

func checkAccepted(blob *model.Blob) error {
	for _, mediaType := range DropZoneMediaTypes {
		if blob.MediaType == mediaType {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", compress.ErrUnsupportedFormat, blob.MediaType)
}

// CreateRenderer creates the widget renderer
func (dz *DropZone) CreateRenderer() fyne.WidgetRenderer {
	dz.ExtendBaseWidget(dz)

	r := &dropZoneRenderer{
		zone:       dz,
		background: canvas.NewRectangle(color.Transparent),
		icon:       widget.NewIcon(theme.UploadIcon()),
		label:      widget.NewLabel(dz.hint),
	}
	r.background.StrokeWidth = DropZoneBorderWidth
	r.background.CornerRadius = DropZoneCornerRadius
	r.label.Alignment = fyne.TextAlignCenter
	r.label.Wrapping = fyne.TextWrapWord
	r.content = container.NewCenter(container.NewVBox(r.icon, r.label))
	r.Refresh()
	return r
}

type dropZoneRenderer struct {
	zone       *DropZone
	background *canvas.Rectangle
	icon       *widget.Icon
	label      *widget.Label
	content    *fyne.Container
}

func (r *dropZoneRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.content.Resize(size)
}

func (r *dropZoneRenderer) MinSize() fyne.Size {
	return r.content.MinSize().Max(fyne.NewSize(DropZoneMinWidth, DropZoneMinHeight))
}

// Refresh switches between the idle border and the indigo accent
func (r *dropZoneRenderer) Refresh() {
	if r.zone.active {
		accent := theme.Color(theme.ColorNamePrimary)
		r.background.StrokeColor = accent
		r.background.FillColor = withAlpha(accent, DropZoneActiveAlpha)
		r.label.Importance = widget.HighImportance
	} else {
		r.background.StrokeColor = theme.Color(ColorNameDropZoneIdle)
		r.background.FillColor = color.Transparent
		r.label.Importance = widget.MediumImportance
	}
	r.label.SetText(r.zone.hint)
	r.background.Refresh()
	r.icon.Refresh()
}

func (r *dropZoneRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.content}
}

func (r *dropZoneRenderer) Destroy() {}

func withAlpha(c color.Color, alpha uint8) color.Color {
	red, green, blue, _ := c.RGBA()
	return color.NRGBA{R: uint8(red >> 8), G: uint8(green >> 8), B: uint8(blue >> 8), A: alpha}
}
