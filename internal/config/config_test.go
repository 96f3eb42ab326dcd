package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func noEnv(string) string { return "" }

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom("", noEnv)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
	if cfg.Refresh.Interval.Duration != time.Second {
		t.Errorf("interval = %s, want 1s", cfg.Refresh.Interval.Duration)
	}
}

func TestLoadFrom_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flipclock.toml")
	content := `
language = "de"

[window]
title = "Desk Clock"
width = 1024
height = 600

[refresh]
interval = "500ms"

[log]
level = "debug"
file = "/tmp/clock.log"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	env := map[string]string{
		EnvLogLevel: "warn",
		EnvJSONLogs: "true",
	}
	cfg, err := LoadFrom(path, func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}

	if cfg.Window.Title != "Desk Clock" || cfg.Window.Width != 1024 || cfg.Window.Height != 600 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Refresh.Interval.Duration != 500*time.Millisecond {
		t.Errorf("interval = %s", cfg.Refresh.Interval.Duration)
	}
	if cfg.Log.Level != "warn" || !cfg.Log.JSON || cfg.Log.File != "/tmp/clock.log" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Language != "de" {
		t.Errorf("language = %q", cfg.Language)
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad tick", map[string]string{EnvTick: "soon"}, EnvTick},
		{"tick too fast", map[string]string{EnvTick: "1ms"}, "refresh interval"},
		{"bad bool", map[string]string{EnvJSONLogs: "maybe"}, EnvJSONLogs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom("", func(k string) string { return tt.env[k] })
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}

	if _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"), noEnv); err == nil {
		t.Error("expected error for missing config file")
	}
}
