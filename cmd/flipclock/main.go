package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"flip-clock/internal/app"
	"flip-clock/internal/config"
	"flip-clock/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "flipclock: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, closer, err := logger.Setup(logger.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
		File:  cfg.Log.File,
	})
	if err != nil {
		return fmt.Errorf("log setup: %w", err)
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fyneApp := fyneapp.NewWithID(app.AppID)
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})

	application, err := app.NewApplication(fyneApp, cfg, log)
	if err != nil {
		log.Error("Main", err, nil)
		return err
	}

	if err := application.Run(ctx); err != nil {
		log.Error("Main", err, nil)
		return err
	}

	log.Info("Main", "application terminated", nil)
	return nil
}
