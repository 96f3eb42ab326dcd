package gui

import (
	"fyne.io/fyne/v2"
	"go.uber.org/atomic"

	"flip-clock/internal/commands"
	"flip-clock/internal/logger"
	"flip-clock/internal/settings"
)

// Manager owns the window and everything drawn in it.
type Manager struct {
	app        fyne.App
	window     fyne.Window
	logger     logger.Logger
	isShutdown *atomic.Bool

	view    *ClockView
	dialogs *Dialogs
	fonts   *FontCatalog
	tr      Translator
}

func NewManager(app fyne.App, window fyne.Window, fonts *FontCatalog, tr Translator, log logger.Logger) *Manager {
	manager := &Manager{
		app:        app,
		window:     window,
		logger:     log,
		isShutdown: atomic.NewBool(false),
		view:       NewClockView(fonts),
		dialogs:    NewDialogs(window, tr, log),
		fonts:      fonts,
		tr:         tr,
	}

	app.Settings().SetTheme(NewClockTheme(settings.ThemeDark))

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"width":  window.Canvas().Size().Width,
		"height": window.Canvas().Size().Height,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.view.GetMainContainer()
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) View() *ClockView {
	return m.view
}

func (m *Manager) Dialogs() *Dialogs {
	return m.dialogs
}

func (m *Manager) Fonts() *FontCatalog {
	return m.fonts
}

func (m *Manager) InstallMenu(table *commands.Table) {
	m.window.SetMainMenu(BuildMainMenu(table, m.tr, m.logger))
}

// SettingsChanged applies window chrome and forwards the change to the view.
// Changes arriving after Shutdown are dropped.
func (m *Manager) SettingsChanged(field settings.Field, s settings.DisplaySettings) {
	if m.isShutdown.Load() {
		m.logger.Debug("GUIManager", "settings change after shutdown ignored", map[string]interface{}{
			"field": field.String(),
		})
		return
	}

	switch field {
	case settings.FieldFullscreen:
		m.applyFullscreen(s.Fullscreen)
	case settings.FieldTheme:
		m.applyTheme(s.Theme)
	case settings.FieldAll:
		m.applyFullscreen(s.Fullscreen)
		m.applyTheme(s.Theme)
	}

	m.view.SettingsChanged(field, s)

	m.logger.Debug("GUIManager", "settings applied", map[string]interface{}{
		"field": field.String(),
	})
}

func (m *Manager) applyFullscreen(on bool) {
	if m.window.FullScreen() == on {
		return
	}
	m.window.SetFullScreen(on)
	if !on {
		m.window.CenterOnScreen()
	}
}

func (m *Manager) applyTheme(t settings.Theme) {
	m.app.Settings().SetTheme(NewClockTheme(t))
}

// Shutdown detaches the window from the settings store. It may run off the
// UI thread, so it touches no widgets.
func (m *Manager) Shutdown() {
	if m.isShutdown.Swap(true) {
		return
	}
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
