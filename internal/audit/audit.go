// Package audit appends accepted command lines to a log file.
package audit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amckenna/artgrow/internal/stamp"
)

// Log appends one entry per accepted input line, recognized or not.
type Log struct {
	path string
}

// NewLog returns a log writing to path. The parent directory is created on
// first record.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.path
}

// Record appends "[timestamp] line" to the log.
func (l *Log) Record(line string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open command log: %w", err)
	}

	_, err = fmt.Fprintf(f, "[%s] %s\n", stamp.Now(), line)
	if err1 := f.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		return fmt.Errorf("append command log: %w", err)
	}
	return nil
}
