package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "STRIPE_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	current atomic.Pointer[log.Logger]
	envOnce sync.Once
)

// Init routes debug logging to the file at path, appending to it.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	envOnce.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	current.Store(newLogger(f))
	return nil
}

// SetOutput routes debug logging to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	envOnce.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if w == nil {
		current.Store(nil)
		return
	}
	current.Store(newLogger(w))
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "stripe",
	})
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeLocked()
	current.Store(nil)
	return err
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Enabled reports whether debug messages are recorded.
func Enabled() bool {
	return logger() != nil
}

func logger() *log.Logger {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			mu.Lock()
			// Best effort: a log that cannot be opened stays disabled.
			_ = initLocked(path)
			mu.Unlock()
		}
	})
	return current.Load()
}

// Log records msg with alternating key/value pairs.
func Log(msg string, keyvals ...any) {
	if l := logger(); l != nil {
		l.Debug(msg, keyvals...)
	}
}

// Logf records a formatted message.
func Logf(format string, args ...any) {
	if l := logger(); l != nil {
		l.Debugf(format, args...)
	}
}
