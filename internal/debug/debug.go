// Package debug writes an opt-in trace log for the TUI. Bubble Tea owns the
// terminal, so printing to stdout would corrupt the frame; with --debug set,
// messages go to a file under the user's home directory instead, truncated on
// every launch. Without the flag every call is a no-op.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	// LogFileName is the name of the debug log file.
	LogFileName = "debug.log"
	// LogDirName is the name of the directory containing the log file.
	LogDirName = ".tagform"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  *log.Logger
	logFile *os.File

	// getLogPath is a function variable to allow overriding in tests.
	getLogPath = resolveLogPath
)

// Init sets up logging. With enable false, Log and Logf discard their input.
// With enable true the log file is created or truncated.
func Init(enable bool) error {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable
	if !enable {
		logger = log.New(io.Discard, "", 0)
		return nil
	}

	path, err := getLogPath()
	if err != nil {
		return fmt.Errorf("determine log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f

	logger = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
	logger.Printf("debug logging enabled, pid %d", os.Getpid())
	return nil
}

// Close closes the log file if one is open. Safe to call when logging is
// disabled, and safe to call more than once.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Log writes a message in the manner of fmt.Print. No-op unless enabled.
func Log(v ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled || logger == nil {
		return
	}
	logger.Print(v...)
}

// Logf writes a formatted message in the manner of fmt.Printf. No-op unless
// enabled.
func Logf(format string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled || logger == nil {
		return
	}
	logger.Printf(format, v...)
}

// Enabled reports whether debug logging is active.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func resolveLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns the path the debug log is written to.
func GetLogPath() (string, error) {
	return getLogPath()
}
