// Package logging wires the standard logger to stdout plus an optional
// append-only log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init points the standard logger at stdout and, when logPath is non-empty,
// a log file created along with its parent directory.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	writers := []io.Writer{os.Stdout}
	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close releases the log file and restores the default output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent logs a formatted event line.
func LogEvent(format string, args ...any) {
	log.Println(fmt.Sprintf(format, args...))
}
