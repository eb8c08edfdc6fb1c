// Package logger provides leveled, colored console logging for DBI tooling
// and drivers.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// ANSI color codes for console output
const (
	ColorReset        = "\033[0m"
	ColorCyan         = "\033[36m"
	ColorGreen        = "\033[32m"
	ColorBrightRed    = "\033[91m"
	ColorBrightYellow = "\033[93m"
	ColorBrightGray   = "\033[90m"
)

// NameWidth is the fixed column width for logger names.
const NameWidth = 12

// Logger provides leveled logging with a fixed-width name column.
type Logger struct {
	name string

	mu           sync.Mutex
	out          io.Writer
	colorEnabled bool
}

// New creates a new logger writing to stdout.
func New(name string) *Logger {
	return &Logger{
		name:         name,
		out:          os.Stdout,
		colorEnabled: isTerminal(),
	}
}

// SetOutput redirects the logger output. Color is disabled for non-stdout
// writers unless re-enabled explicitly.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.colorEnabled = false
}

// isTerminal checks if we're outputting to a terminal (for color support)
func isTerminal() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

func (l *Logger) colorFor(level string) string {
	if !l.colorEnabled {
		return ""
	}
	switch level {
	case "DEBUG":
		return ColorBrightGray
	case "INFO":
		return ColorGreen
	case "WARN":
		return ColorBrightYellow
	case "ERROR", "FATAL":
		return ColorBrightRed
	default:
		return ColorReset
	}
}

func (l *Logger) log(level, message string, fields map[string]string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	var suffix string
	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%s", k, fields[k]))
		}
		suffix = " " + strings.Join(pairs, " ")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	color := l.colorFor(level)
	reset := ""
	if l.colorEnabled {
		reset = ColorReset
	}

	fmt.Fprintf(l.out, "%s[%s]%s [%-*s] [%s%-5s%s] %s%s\n",
		ColorCyan, timestamp, reset, NameWidth, l.name, color, level, reset, message, suffix)
}

// Debug logs a debug message with optional formatting.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log("DEBUG", sprintf(format, args...), nil)
}

// Info logs an info message with optional formatting.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log("INFO", sprintf(format, args...), nil)
}

// Warn logs a warning message with optional formatting.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log("WARN", sprintf(format, args...), nil)
}

// Error logs an error message with optional formatting.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log("ERROR", sprintf(format, args...), nil)
}

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log("FATAL", sprintf(format, args...), nil)
	os.Exit(1)
}

func sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// WithFields returns a field-scoped logging context.
func (l *Logger) WithFields(fields map[string]string) *LogContext {
	return &LogContext{
		logger: l,
		fields: fields,
	}
}

// LogContext provides field-based logging.
type LogContext struct {
	logger *Logger
	fields map[string]string
}

// Info logs an info message with the context fields attached.
func (c *LogContext) Info(message string) {
	c.logger.log("INFO", message, c.fields)
}

// Warn logs a warning message with the context fields attached.
func (c *LogContext) Warn(message string) {
	c.logger.log("WARN", message, c.fields)
}

// Error logs an error message with the context fields attached.
func (c *LogContext) Error(message string) {
	c.logger.log("ERROR", message, c.fields)
}
