// Package main provides the entry point for the Room Planner application.
package main

import (
	"os"

	"roomplanner/internal/app"
	"roomplanner/internal/logger"
	"roomplanner/internal/version"
	"roomplanner/ui/mainwindow"
	"roomplanner/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"
)

const appID = "org.roomplanner.desktop"

func main() {
	appPrefs := prefs.Load()

	log := logger.Must(appPrefs.LogLevel(), appPrefs.LogFormat(), "room-planner")
	defer log.Sync()
	log.Info("starting",
		zap.String("version", version.Version),
		zap.String("commit", version.GitCommit),
		zap.String("prefs", appPrefs.Path()))

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.RoomPlannerTheme{})

	appState := app.NewState(log, appPrefs.HistoryLimit())

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// Handle command line arguments
	if len(os.Args) > 1 {
		designPath := os.Args[1]
		if err := appState.LoadDesign(designPath); err != nil {
			log.Error("failed to open design", zap.String("path", designPath), zap.Error(err))
		}
	}

	win.ShowAndRun()
	log.Info("exiting")
}
