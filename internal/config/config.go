package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment variables read by Load.
const (
	EnvConfigFile = "FLIPCLOCK_CONFIG"
	EnvLogLevel   = "FLIPCLOCK_LOG_LEVEL"
	EnvJSONLogs   = "FLIPCLOCK_JSON_LOGS"
	EnvLogFile    = "FLIPCLOCK_LOG_FILE"
	EnvLanguage   = "FLIPCLOCK_LANG"
	EnvTick       = "FLIPCLOCK_TICK"
)

const minTickInterval = 100 * time.Millisecond

// Duration reads "1s"-style values from TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Config holds launch parameters. Display preferences are deliberately
// absent: they always start from their built-in defaults.
type Config struct {
	Window struct {
		Title  string  `toml:"title"`
		Width  float32 `toml:"width"`
		Height float32 `toml:"height"`
	} `toml:"window"`

	Refresh struct {
		Interval Duration `toml:"interval"`
	} `toml:"refresh"`

	Log struct {
		Level string `toml:"level"`
		JSON  bool   `toml:"json"`
		File  string `toml:"file"`
	} `toml:"log"`

	Language string `toml:"language"`
}

func DefaultConfig() Config {
	var c Config
	c.Window.Title = "Flip Clock"
	c.Window.Width = 800
	c.Window.Height = 500
	c.Refresh.Interval = Duration{time.Second}
	c.Log.Level = "info"
	c.Language = "en"
	return c
}

// Load reads the optional config file named by FLIPCLOCK_CONFIG and applies
// environment overrides on top.
func Load() (Config, error) {
	return LoadFrom(os.Getenv(EnvConfigFile), os.Getenv)
}

func LoadFrom(path string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv(EnvJSONLogs); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvJSONLogs, err)
		}
		cfg.Log.JSON = enabled
	}
	if v := getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := getenv(EnvLanguage); v != "" {
		cfg.Language = v
	}
	if v := getenv(EnvTick); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTick, err)
		}
		cfg.Refresh.Interval = Duration{interval}
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %.0fx%.0f must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Refresh.Interval.Duration < minTickInterval {
		errs = append(errs, fmt.Errorf("refresh interval %s is below %s", c.Refresh.Interval.Duration, minTickInterval))
	}
	if strings.TrimSpace(c.Language) == "" {
		errs = append(errs, errors.New("language must not be empty"))
	}
	return errors.Join(errs...)
}
