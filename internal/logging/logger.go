// Package logging provides categorized file-based logging for bmicalc.
// Logs are written to <dir>/<date>_<category>.log, one file per category.
// Nothing is written unless debug mode is on; every logger is then a no-op.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, workspace resolution
	CategoryConfig Category = "config" // Config load, validation, live reload
	CategoryUI     Category = "ui"     // Form host: focus, calculations, results
	CategoryCLI    Category = "cli"    // Non-interactive subcommands
)

// Categories lists every known category.
func Categories() []Category {
	return []Category{CategoryBoot, CategoryConfig, CategoryUI, CategoryCLI}
}

// Settings controls the category loggers. config.LoggingConfig converts to
// it, which keeps this package free of a config import.
type Settings struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	JSONFormat bool
	Categories map[string]bool
}

// Logger writes one category's entries to its own file.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.Mutex
	logsDir   string
	current   Settings
	configMu  sync.RWMutex
)

var nop = zap.NewNop().Sugar()

// Initialize points logging at dir and applies cfg. Call once at startup;
// use Reconfigure for later changes.
func Initialize(dir string, cfg Settings) error {
	if dir == "" {
		return fmt.Errorf("logs directory required")
	}

	configMu.Lock()
	logsDir = dir
	current = cfg
	configMu.Unlock()

	if !cfg.DebugMode {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== bmicalc logging initialized ===")
	boot.Info("Logs directory: %s", dir)
	boot.Info("Log level: %s", levelName(cfg.Level))
	return nil
}

// Reconfigure applies a new config. Settings are swapped before open files
// are closed, so the next Get picks up the new level, format and category
// toggles. A *Logger held across the swap keeps its old file; writes to it
// after the close are dropped.
func Reconfigure(cfg Settings) error {
	loggersMu.Lock()
	configMu.Lock()
	dir := logsDir
	current = cfg
	configMu.Unlock()
	closeAllLocked()
	loggersMu.Unlock()

	if !cfg.DebugMode || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	return nil
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return current.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled.
// In debug mode a category missing from the map is enabled.
func IsCategoryEnabled(category Category) bool {
	configMu.RLock()
	defer configMu.RUnlock()

	if !current.DebugMode {
		return false
	}
	if current.Categories == nil {
		return true
	}
	enabled, exists := current.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *Logger {
	// Lock order: loggersMu, then configMu.
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if !IsCategoryEnabled(category) {
		return &Logger{category: category, sugar: nop}
	}

	configMu.RLock()
	dir, cfg := logsDir, current
	configMu.RUnlock()
	if dir == "" {
		return &Logger{category: category, sugar: nop}
	}

	if l, ok := loggers[category]; ok {
		return l
	}

	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(dir, fmt.Sprintf("%s_%s.log", date, category))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return &Logger{category: category, sugar: nop}
	}

	core := zapcore.NewCore(newEncoder(cfg.JSONFormat), zapcore.AddSync(file), parseLevel(cfg.Level))
	l := &Logger{
		category: category,
		file:     file,
		sugar:    zap.New(core, zap.ErrorOutput(zapcore.AddSync(io.Discard))).Named(string(category)).Sugar(),
	}
	loggers[category] = l
	return l
}

// CloseAll flushes and closes every open category file.
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	closeAllLocked()
}

func closeAllLocked() {
	for cat, l := range loggers {
		_ = l.sugar.Sync()
		if l.file != nil {
			_ = l.file.Close()
		}
		delete(loggers, cat)
	}
}

func newEncoder(jsonFormat bool) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "ts"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if jsonFormat {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func levelName(level string) string {
	return parseLevel(level).String()
}

// Category returns the logger's category.
func (l *Logger) Category() Category {
	return l.category
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// With returns a logger that adds key/value pairs to every entry.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{category: l.category, sugar: l.sugar.With(keysAndValues...)}
}

// Shorthands used across the codebase.

func Boot(format string, args ...interface{}) { Get(CategoryBoot).Info(format, args...) }
func UI(format string, args ...interface{})   { Get(CategoryUI).Info(format, args...) }
func CLI(format string, args ...interface{})  { Get(CategoryCLI).Info(format, args...) }

func UIDebug(format string, args ...interface{}) {
	Get(CategoryUI).Debug(format, args...)
}
