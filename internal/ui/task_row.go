package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/imgdrop/internal/format"
	"github.com/ytget/imgdrop/internal/model"
)

// TaskRow represents a compact compression task row widget
type TaskRow struct {
	widget.BaseWidget

	task         *model.CompressionTask
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	statusLabel *widget.Label
	sizeLabel   *widget.Label
	dimsLabel   *widget.Label

	// Action buttons
	revealBtn *widget.Button // reveal in file manager
	openBtn   *widget.Button // open with default app
	copyBtn   *widget.Button
	removeBtn *widget.Button

	// Callbacks
	onReveal   func(filePath string)
	onOpen     func(filePath string)
	onCopyPath func(filePath string)
	onRemove   func(taskID string)
}

// NewTaskRow creates a new task row widget
func NewTaskRow(task *model.CompressionTask, localization *Localization) *TaskRow {
	if task == nil {
		task = &model.CompressionTask{Status: model.TaskStatusPending}
	}

	tr := &TaskRow{
		task:         task,
		localization: localization,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTask()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TaskRow) SetCallbacks(
	onReveal func(filePath string),
	onOpen func(filePath string),
	onCopyPath func(filePath string),
	onRemove func(taskID string),
) {
	tr.onReveal = onReveal
	tr.onOpen = onOpen
	tr.onCopyPath = onCopyPath
	tr.onRemove = onRemove
}

// UpdateTask updates the row with new task data
func (tr *TaskRow) UpdateTask(task *model.CompressionTask) {
	if task == nil {
		return
	}
	tr.task = task
	tr.updateFromTask()
	tr.Refresh()
}

// createUI creates the UI components
func (tr *TaskRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing
	tr.sizeLabel = widget.NewLabel("")
	tr.sizeLabel.TextStyle = fyne.TextStyle{Monospace: true}
	tr.dimsLabel = widget.NewLabel("")
	tr.dimsLabel.Importance = widget.LowImportance

	// Buttons read tr.task at click time, rows are recycled by the list
	tr.revealBtn = widget.NewButton(tr.localization.GetText(KeyReveal), func() {
		if tr.onReveal != nil && tr.task.OutputPath != "" {
			tr.onReveal(tr.task.OutputPath)
		}
	})
	tr.openBtn = widget.NewButton(tr.localization.GetText(KeyOpen), func() {
		if tr.onOpen != nil && tr.task.OutputPath != "" {
			tr.onOpen(tr.task.OutputPath)
		}
	})
	tr.copyBtn = widget.NewButton(tr.localization.GetText(KeyCopyPath), func() {
		if tr.onCopyPath != nil && tr.task.OutputPath != "" {
			tr.onCopyPath(tr.task.OutputPath)
		}
	})
	tr.removeBtn = widget.NewButton(IconClose, func() {
		if tr.onRemove != nil {
			tr.onRemove(tr.task.ID)
		}
	})
	tr.removeBtn.Importance = widget.LowImportance
}

// SizeText returns "before → after" for a task, followed by the relative
// change once the output size is known
func SizeText(task *model.CompressionTask) string {
	if task.InputSize <= 0 {
		return DashPlaceholder
	}
	before := format.FormatSize(task.InputSize)
	if task.OutputSize <= 0 {
		return before + ArrowSeparator + DashPlaceholder
	}
	change := -task.SavedRatio() * 100
	return before + ArrowSeparator + format.FormatSize(task.OutputSize) +
		MiddleDotSeparator + fmt.Sprintf(SavedPercentFormat, change)
}

// updateFromTask updates UI components based on task state
func (tr *TaskRow) updateFromTask() {
	tr.titleLabel.SetText(tr.task.GetDisplayTitle())
	tr.sizeLabel.SetText(SizeText(tr.task))
	tr.dimsLabel.SetText(tr.task.GetDimensionsString())

	switch tr.task.Status {
	case model.TaskStatusError:
		tr.statusLabel.Importance = widget.DangerImportance
		tr.statusLabel.SetText(IconError + " " + tr.task.Status.String())
		if tr.task.LastError != "" {
			tr.dimsLabel.SetText(tr.task.LastError)
		}
	case model.TaskStatusCompleted:
		tr.statusLabel.Importance = widget.SuccessImportance
		tr.statusLabel.SetText(IconDone + " " + tr.task.Status.String())
	case model.TaskStatusProcessing:
		tr.statusLabel.Importance = widget.HighImportance
		tr.statusLabel.SetText(IconWorking + " " + tr.task.Status.String())
	default:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(tr.task.Status.String())
	}

	tr.updateButtons()
}

// updateButtons enables file actions once the output is on disk
func (tr *TaskRow) updateButtons() {
	if tr.task.Status == model.TaskStatusCompleted && tr.task.OutputPath != "" {
		tr.revealBtn.Enable()
		tr.openBtn.Enable()
		tr.copyBtn.Enable()
	} else {
		tr.revealBtn.Disable()
		tr.openBtn.Disable()
		tr.copyBtn.Disable()
	}

	if tr.task.Status.IsActive() {
		tr.removeBtn.Disable()
	} else {
		tr.removeBtn.Enable()
	}
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewVBox(
		fixedWidth(StatusLabelWidth, tr.statusLabel),
		fixedWidth(SizeLabelWidth, tr.sizeLabel),
	)
	actions := container.NewHBox(tr.revealBtn, tr.openBtn, tr.copyBtn, tr.removeBtn)
	rightCluster := container.NewBorder(nil, nil, nil, actions, info)
	left := container.NewVBox(tr.titleLabel, tr.dimsLabel)

	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, rightCluster, left),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows readable in narrow windows
func (tr *TaskRow) MinSize() fyne.Size {
	return tr.BaseWidget.MinSize().Max(fyne.NewSize(RowMinWidth, RowMinHeight))
}
