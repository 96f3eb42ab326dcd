package gui

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"golang.org/x/image/font/sfnt"

	"flip-clock/internal/logger"
)

// DefaultFontDirs lists the places fonts are installed on the current OS.
func DefaultFontDirs() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return fontDirs(runtime.GOOS, home, os.Getenv)
}

// fontDirs leaves out any directory whose base is unknown, so a missing home
// or environment variable never turns into a path relative to the working
// directory.
func fontDirs(goos, home string, getenv func(string) string) []string {
	var dirs []string
	add := func(base string, elem ...string) {
		if base == "" {
			return
		}
		dirs = append(dirs, filepath.Join(append([]string{base}, elem...)...))
	}

	switch goos {
	case "windows":
		add(getenv("WINDIR"), "Fonts")
		add(getenv("LOCALAPPDATA"), "Microsoft", "Windows", "Fonts")
	case "darwin":
		dirs = append(dirs, "/System/Library/Fonts", "/Library/Fonts")
		add(home, "Library", "Fonts")
	default:
		dirs = append(dirs, "/usr/share/fonts", "/usr/local/share/fonts")
		add(home, ".local", "share", "fonts")
		add(home, ".fonts")
	}
	return dirs
}

// FontCatalog enumerates the TrueType and OpenType families installed on the
// host and loads them for the canvas on demand.
type FontCatalog struct {
	dirs   []string
	logger logger.Logger

	scanOnce sync.Once
	mu       sync.Mutex
	paths    map[string]string
	loaded   map[string]fyne.Resource
}

func NewFontCatalog(dirs []string, log logger.Logger) *FontCatalog {
	return &FontCatalog{
		dirs:   dirs,
		logger: log,
		paths:  make(map[string]string),
		loaded: make(map[string]fyne.Resource),
	}
}

// Scan walks the font directories once. Later calls return immediately.
func (c *FontCatalog) Scan() {
	c.scanOnce.Do(c.scan)
}

func (c *FontCatalog) scan() {
	found := make(map[string]string)
	for _, dir := range c.dirs {
		if dir == "" {
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Missing or unreadable directories are common; skip them.
				return nil
			}
			if d.IsDir() || !isFontFile(path) {
				return nil
			}
			family, err := readFamily(path)
			if err != nil {
				c.logger.Debug("FontCatalog", "skipping unreadable font", map[string]interface{}{
					"path":  path,
					"error": err.Error(),
				})
				return nil
			}
			if _, dup := found[family]; !dup {
				found[family] = path
			}
			return nil
		})
	}

	c.mu.Lock()
	c.paths = found
	c.mu.Unlock()

	c.logger.Info("FontCatalog", "font scan complete", map[string]interface{}{
		"families": len(found),
		"dirs":     len(c.dirs),
	})
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

func readFamily(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return "", err
	}
	return f.Name(nil, sfnt.NameIDFamily)
}

// Families returns the installed family names, sorted.
func (c *FontCatalog) Families() []string {
	c.Scan()

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(c.paths))
	for family := range c.paths {
		out = append(out, family)
	}
	sort.Strings(out)
	return out
}

// Resource loads the font file of family, or returns nil if it is unknown.
func (c *FontCatalog) Resource(family string) fyne.Resource {
	if c == nil {
		return nil
	}
	c.Scan()

	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.loaded[family]; ok {
		return res
	}
	path, ok := c.paths[family]
	if !ok {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		c.logger.Warning("FontCatalog", "font file unreadable", map[string]interface{}{
			"family": family,
			"path":   path,
			"error":  err.Error(),
		})
		return nil
	}
	res := fyne.NewStaticResource(filepath.Base(path), data)
	c.loaded[family] = res
	return res
}
