// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the drop zone to the compression service and the URL entry to the
// downloader, and renders compression tasks and settings. All UI strings are
// localized via Localization.
package ui
