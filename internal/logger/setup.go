package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where and how log lines are written.
type Options struct {
	Level   string
	JSON    bool
	File    string
	Console io.Writer
}

// Setup builds the application logger. The returned closer releases the
// log file and must be called on shutdown.
func Setup(opts Options) (*ZerologAdapter, io.Closer, error) {
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	if !opts.JSON {
		console = zerolog.ConsoleWriter{Out: console, TimeFormat: "15:04:05"}
	}

	level := ParseLevel(opts.Level)
	if opts.File == "" {
		return NewZerolog(console, level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}

	// File output is always JSON so it stays machine readable.
	writer := zerolog.MultiLevelWriter(console, fileWriter)
	return NewZerolog(writer, level), fileWriter, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
