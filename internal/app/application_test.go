package app

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"flip-clock/internal/commands"
	"flip-clock/internal/config"
	"flip-clock/internal/logger"
)

func TestNewApplication_Wiring(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)

	application, err := NewApplication(a, config.DefaultConfig(), logger.NoOpLogger{})
	if err != nil {
		t.Fatalf("NewApplication() = %v", err)
	}
	t.Cleanup(application.Shutdown)

	if err := application.Dispatch(commands.ToggleFullscreen); err != nil {
		t.Fatal(err)
	}
	if !application.Store().Settings().Fullscreen {
		t.Error("fullscreen not toggled through the command table")
	}
	if !application.guiManager.GetWindow().FullScreen() {
		t.Error("window did not follow the fullscreen setting")
	}
}

func TestNewApplication_RejectsBadLanguage(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)

	cfg := config.DefaultConfig()
	cfg.Language = "not a language tag!"
	if _, err := NewApplication(a, cfg, logger.NoOpLogger{}); err == nil {
		t.Error("expected an error for an invalid language tag")
	}
}
