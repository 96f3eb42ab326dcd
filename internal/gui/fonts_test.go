package gui

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"flip-clock/internal/logger"
)

func writeFont(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFontCatalog_ScansFamilies(t *testing.T) {
	root := t.TempDir()
	writeFont(t, root, "Go-Regular.ttf", goregular.TTF)
	writeFont(t, filepath.Join(root, "mono"), "Go-Mono.TTF", gomono.TTF)
	writeFont(t, root, "broken.ttf", []byte("not a font"))
	writeFont(t, root, "readme.txt", []byte("fonts live here"))

	catalog := NewFontCatalog([]string{root, filepath.Join(root, "missing")}, logger.NoOpLogger{})

	got := catalog.Families()
	want := []string{"Go", "Go Mono"}
	if len(got) != len(want) {
		t.Fatalf("Families() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Families()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	res := catalog.Resource("Go Mono")
	if res == nil || len(res.Content()) != len(gomono.TTF) {
		t.Errorf("Resource(Go Mono) = %v", res)
	}
	if catalog.Resource("Go Mono") != res {
		t.Error("Resource did not cache the loaded font")
	}
	if catalog.Resource("Papyrus") != nil {
		t.Error("unknown family returned a resource")
	}
}

func TestFontCatalog_NilIsSafe(t *testing.T) {
	var catalog *FontCatalog
	if catalog.Resource("Go") != nil {
		t.Error("nil catalog returned a resource")
	}
}

func TestFontDirs_SkipsUnknownBases(t *testing.T) {
	noEnv := func(string) string { return "" }

	tests := []struct {
		goos   string
		home   string
		getenv func(string) string
		want   []string
	}{
		{"linux", "/home/ada", noEnv, []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join("/home/ada", ".local", "share", "fonts"),
			filepath.Join("/home/ada", ".fonts"),
		}},
		{"linux", "", noEnv, []string{"/usr/share/fonts", "/usr/local/share/fonts"}},
		{"darwin", "", noEnv, []string{"/System/Library/Fonts", "/Library/Fonts"}},
		{"windows", "", noEnv, nil},
		{"windows", "", func(k string) string {
			if k == "WINDIR" {
				return `C:\Windows`
			}
			return ""
		}, []string{filepath.Join(`C:\Windows`, "Fonts")}},
	}

	for _, tt := range tests {
		got := fontDirs(tt.goos, tt.home, tt.getenv)
		if len(got) != len(tt.want) {
			t.Errorf("fontDirs(%s, %q) = %v, want %v", tt.goos, tt.home, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("fontDirs(%s, %q)[%d] = %q, want %q", tt.goos, tt.home, i, got[i], tt.want[i])
			}
		}
	}
}
