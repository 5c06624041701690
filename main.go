package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-backup/internal/config"
	"github.com/ytget/yt-backup/internal/download"
	"github.com/ytget/yt-backup/internal/platform"
	"github.com/ytget/yt-backup/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-backup"
	AppName = "YT Backup"

	WindowWidth  = 720
	WindowHeight = 640
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	extractor := platform.NewYTDLP(settings.GetAutoInstallTools())
	// Resolve the tools in the background so the first job starts faster.
	// A failure here is retried by the first probe.
	go func() {
		if err := extractor.EnsureInstalled(context.Background()); err != nil {
			log.Printf("Tool installation failed: %v", err)
		}
	}()

	launcher := download.NewService(extractor)
	ui.NewRootUI(myWindow, launcher, settings)

	myWindow.ShowAndRun()
}
