// Package logging builds the application logger and forwards engine
// events to it.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options configures New.
type Options struct {
	Level  string // debug, info, warn, error
	File   string // empty logs to the fallback writer
	Prefix string
}

// New returns a logger writing to opts.File, or to fallback when no file
// is set. The returned closer releases the file and is never nil.
func New(opts Options, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		path, err := expandHome(opts.File)
		if err != nil {
			return nil, nopCloser{}, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nopCloser{}, fmt.Errorf("logging: cannot create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("logging: cannot open %s: %w", path, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
