// internal/logging/logger.go
//
// Timestamped file logger. The TUI owns stdout while it runs, so anything
// worth keeping (startup, parse failures, config problems) goes to
// <user cache dir>/venn/venn.log instead.

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const logFileName = "venn.log"

// Logger appends timestamped lines to the venn log file. A nil Logger is
// safe to use and drops everything.
type Logger struct {
	file *os.File
}

// Open creates (or reuses) the log file under the user's cache directory.
func Open() (*Logger, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("logging: resolve user cache dir: %w", err)
	}
	return OpenAt(filepath.Join(base, "venn", logFileName))
}

// OpenAt creates (or reuses) a log file at an explicit path.
func OpenAt(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return &Logger{file: f}, nil
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Printf writes a single timestamped line to the log file.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.file == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	line = strings.TrimRight(line, "\n")
	timestamp := time.Now().Format(time.RFC3339)
	fmt.Fprintf(l.file, "[%s] %s\n", timestamp, line)
}
