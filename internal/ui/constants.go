package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconCopy     = "📋"
	IconClose    = "×"
	IconError    = "❌"
	IconDone     = "✔"
	IconWorking  = "⏳"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	ArrowSeparator     = " → "
	DashPlaceholder    = "—"
	SavedPercentFormat = "%+.0f%%"
)

// Layout sizing (TaskRow / lists)
const (
	StatusLabelWidth float32 = 96
	SizeLabelWidth   float32 = 180

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 64
	RowDefaultH  float32 = 60
)

// Drop zone sizing
const (
	DropZoneMinWidth     float32 = 320
	DropZoneMinHeight    float32 = 140
	DropZoneCornerRadius float32 = 10
	DropZoneBorderWidth  float32 = 2
	DropZoneActiveAlpha  uint8   = 40
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 460
)

// Notification behavior
const (
	NotificationAutoHide = 5 * time.Second
)
