// Package logger wraps charmbracelet/log behind a package-level logger so
// the rest of the tree logs through one place. The input tracker itself
// never logs; hosts, platform backends, and commands do.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

var Logger = log.New(os.Stderr)

func init() {
	SetLevel(os.Getenv("LOG_LEVEL"))
}

// SetupFileLogging redirects all log output to a file so a fullscreen TUI
// owns the terminal; any stderr write while bubbletea is running corrupts
// the display. Call it before the first log line and close the returned
// file on shutdown.
func SetupFileLogging(tag string) (*os.File, error) {
	f, err := os.OpenFile(logFilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	Logger.SetOutput(f)
	Logger.Info(fmt.Sprintf("=== %s session started ===", tag))
	return f, nil
}

// logFilePath returns the log destination, preferring the XDG state
// directory and falling back to the temp directory.
func logFilePath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		if home := os.Getenv("HOME"); home != "" {
			dir = filepath.Join(home, ".local", "state")
		} else {
			dir = os.TempDir()
		}
	}
	dir = filepath.Join(dir, "pollframe")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return filepath.Join(os.TempDir(), "pollframe.log")
	}
	return filepath.Join(dir, "pollframe.log")
}

// SetLevel sets the log level from a name like "debug" or "WARN".
// Unknown or empty names leave the level at info.
func SetLevel(level string) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		Logger.SetLevel(log.DebugLevel)
	case "WARN", "WARNING":
		Logger.SetLevel(log.WarnLevel)
	case "ERROR":
		Logger.SetLevel(log.ErrorLevel)
	case "FATAL":
		Logger.SetLevel(log.FatalLevel)
	default:
		Logger.SetLevel(log.InfoLevel)
	}
}

// With returns a sub-logger carrying the given key/value pairs.
func With(keyvals ...interface{}) *log.Logger {
	return Logger.With(keyvals...)
}

func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	Logger.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Logger.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Logger.Errorf(format, args...)
}
