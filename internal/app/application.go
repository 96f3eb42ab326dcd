package app

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"

	"flip-clock/internal/commands"
	"flip-clock/internal/config"
	"flip-clock/internal/gui"
	"flip-clock/internal/locale"
	"flip-clock/internal/logger"
	"flip-clock/internal/refresh"
	"flip-clock/internal/settings"
	"flip-clock/internal/shutdown"
)

const (
	AppName    = "Flip Clock"
	AppID      = "io.github.flipclock"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	config     config.Config
	store      *settings.Store
	guiManager *gui.Manager
	table      *commands.Table
	loop       *refresh.Loop
	shutdown   *shutdown.Manager
	stopWatch  func() bool
}

// NewApplication wires the settings store, window, command table and
// refresh loop together. fyneApp is created by the caller so tests can
// pass the headless driver.
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	tr, err := locale.New(cfg.Language)
	if err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(cfg.Window.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
		"language":    tr.Language().String(),
		"interval_ms": cfg.Refresh.Interval.Milliseconds(),
	})

	fonts := gui.NewFontCatalog(gui.DefaultFontDirs(), log)
	guiManager := gui.NewManager(fyneApp, window, fonts, tr, log)

	store := settings.New()
	store.Subscribe(guiManager)

	table := commands.NewTable()
	NewHandlers(store, guiManager.Dialogs(), fonts, log).Register(table)
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("command table incomplete: %w", err)
	}
	guiManager.InstallMenu(table)

	loop := refresh.New(store, guiManager.View(), log)
	loop.SetInterval(cfg.Refresh.Interval.Duration)
	loop.SetDispatcher(fyne.Do)
	store.Subscribe(loop)

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register("gui", guiManager)
	shutdownMgr.Register("refresh", loop)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		config:     cfg,
		store:      store,
		guiManager: guiManager,
		table:      table,
		loop:       loop,
		shutdown:   shutdownMgr,
	}

	log.Info("Application", "initialization complete", map[string]interface{}{
		"commands": len(commands.All()),
	})
	return application, nil
}

// Start shows the window, begins refreshing and scans fonts in the
// background. It does not block. Cancelling ctx quits the application.
func (a *Application) Start(ctx context.Context) error {
	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.Shutdown()
		a.window.Close()
	})
	a.window.Show()

	if err := a.loop.Start(a.shutdown.Context()); err != nil {
		return err
	}
	a.stopWatch = context.AfterFunc(ctx, a.quit)

	go a.guiManager.Fonts().Scan()

	a.shutdown.Listen(a.quit)
	return nil
}

func (a *Application) quit() {
	fyne.Do(a.fyneApp.Quit)
}

// Run starts the application and blocks in the toolkit event loop.
func (a *Application) Run(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		return err
	}

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	a.stopWatch()

	a.Shutdown()
	return nil
}

// Shutdown stops the refresh loop and releases resources. Safe to call
// more than once.
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

func (a *Application) Store() *settings.Store {
	return a.store
}

func (a *Application) Dispatch(c commands.Command) error {
	return a.table.Dispatch(c)
}
