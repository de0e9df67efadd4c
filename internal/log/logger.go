// Package log provides the process-wide structured logger.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Logger wraps a slog.Logger together with the file it writes to, if any.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	file   *os.File
}

var (
	mu           sync.RWMutex
	globalLogger *Logger
)

func init() {
	globalLogger = New(os.Stderr)
}

// New creates a Logger writing text records to w at Info level.
func New(w io.Writer) *Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{logger: slog.New(handler), level: level}
}

// SetOutput replaces the global logger with one writing to w, keeping the
// current level.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	l := New(w)
	l.level.Set(globalLogger.level.Level())
	closeFile(globalLogger)
	globalLogger = l
}

// SetFileOutput configures the logger to append to the named file.
func SetFileOutput(filename string) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	SetOutput(file)
	mu.Lock()
	globalLogger.file = file
	mu.Unlock()
	return nil
}

// SetVerbose switches between Debug and Info level.
func SetVerbose(verbose bool) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		globalLogger.level.Set(slog.LevelDebug)
	} else {
		globalLogger.level.Set(slog.LevelInfo)
	}
}

// Close closes the log file, if one is open, and reverts to stderr.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if globalLogger.file == nil {
		return
	}
	level := globalLogger.level.Level()
	closeFile(globalLogger)
	globalLogger = New(os.Stderr)
	globalLogger.level.Set(level)
}

func closeFile(l *Logger) {
	if l != nil && l.file != nil {
		l.file.Close()
	}
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger.logger
}

func Debug(msg string, args ...any) { current().Debug(msg, args...) }

func Info(msg string, args ...any) { current().Info(msg, args...) }

func Warn(msg string, args ...any) { current().Warn(msg, args...) }

func Error(msg string, args ...any) { current().Error(msg, args...) }
