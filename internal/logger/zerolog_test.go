package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_WritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("RefreshLoop", "started", map[string]interface{}{"interval_ms": 1000})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["component"] != "RefreshLoop" || entry["message"] != "started" || entry["level"] != "info" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if entry["interval_ms"] != float64(1000) {
		t.Errorf("interval_ms = %v", entry["interval_ms"])
	}
}

func TestZerologAdapter_ErrorAndLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Store", "hidden", nil)
	log.Info("Store", "hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("entries below warn were written: %s", buf.String())
	}

	log.Error("Store", errors.New("boom"), nil)
	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Errorf("error not recorded: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"WARNING": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"chatty":  zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetup_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "clock.log")
	var console bytes.Buffer

	log, closer, err := Setup(Options{Level: "info", JSON: true, File: path, Console: &console})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	log.Info("App", "hello", nil)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"message":"hello"`) {
		t.Errorf("file content = %s", data)
	}
	if !strings.Contains(console.String(), "hello") {
		t.Errorf("console content = %s", console.String())
	}
}
