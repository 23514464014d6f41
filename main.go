package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/imgdrop/internal/compress"
	"github.com/ytget/imgdrop/internal/config"
	"github.com/ytget/imgdrop/internal/download"
	"github.com/ytget/imgdrop/internal/logging"
	"github.com/ytget/imgdrop/internal/platform"
	"github.com/ytget/imgdrop/internal/storage"
	"github.com/ytget/imgdrop/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.imgdrop"
	AppName = "ImgDrop"

	WindowWidth  = 720
	WindowHeight = 560

	// DebugEnv enables debug logging when set to any non-empty value
	DebugEnv = "IMGDROP_DEBUG"
)

func main() {
	logger := logging.New("imgdrop", os.Getenv(DebugEnv) != "")
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	saveDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(saveDir); err != nil {
		logger.Warn("failed to ensure save directory", zap.String("dir", saveDir), zap.Error(err))
	}
	saver := storage.NewDirSaver(saveDir)

	downloadSvc := download.NewService(saver, logger)
	compressSvc := compress.NewService(saver, logger)
	compressSvc.SetOptions(settings.CompressOptions())

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, downloadSvc, compressSvc, saver, logger)

	// Show and run
	myWindow.ShowAndRun()

	// Let in-flight work reach the disk before exiting
	downloadSvc.Wait()
	compressSvc.Wait()
	logger.Info("stopped")
}
