// Package logging provides structured JSON logging for the Inkwell backend.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents a log severity level.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel maps a level name to a Level, defaulting to LevelInfo for
// unrecognized input.
func ParseLevel(s string) Level {
	switch Level(strings.ToUpper(s)) {
	case LevelDebug:
		return LevelDebug
	case LevelWarn:
		return LevelWarn
	case LevelError:
		return LevelError
	default:
		return LevelInfo
	}
}

// Fields holds structured key/value context attached to a log entry.
type Fields map[string]interface{}

// Logger writes line-delimited JSON log entries.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	minLevel Level
}

var (
	global *Logger
	once   sync.Once
)

// Init initializes the global logger. Subsequent calls are no-ops.
func Init(out io.Writer, minLevel Level) {
	once.Do(func() {
		global = &Logger{out: out, minLevel: minLevel}
	})
}

// Get returns the global logger, initializing a default one if needed.
func Get() *Logger {
	if global == nil {
		Init(os.Stdout, LevelInfo)
	}
	return global
}

// New creates a standalone logger, mainly for tests.
func New(out io.Writer, minLevel Level) *Logger {
	return &Logger{out: out, minLevel: minLevel}
}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
	Fields    Fields `json:"fields,omitempty"`
}

func (l *Logger) write(level Level, message string, err error, fields []Fields) {
	if levelRank[level] < levelRank[l.minLevel] {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    merge(fields),
	}
	if err != nil {
		e.Error = err.Error()
	}

	data, jsonErr := json.Marshal(e)
	if jsonErr != nil {
		log.Printf("failed to marshal log entry: %v", jsonErr)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, string(data))
}

func merge(fields []Fields) Fields {
	switch len(fields) {
	case 0:
		return nil
	case 1:
		return fields[0]
	}
	merged := make(Fields)
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, fields ...Fields) {
	l.write(LevelDebug, message, nil, fields)
}

// Info logs an info message.
func (l *Logger) Info(message string, fields ...Fields) {
	l.write(LevelInfo, message, nil, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, fields ...Fields) {
	l.write(LevelWarn, message, nil, fields)
}

// Error logs an error message together with its error.
func (l *Logger) Error(message string, err error, fields ...Fields) {
	l.write(LevelError, message, err, fields)
}

// Convenience functions using the global logger.

func Debug(message string, fields ...Fields) {
	Get().Debug(message, fields...)
}

func Info(message string, fields ...Fields) {
	Get().Info(message, fields...)
}

func Warn(message string, fields ...Fields) {
	Get().Warn(message, fields...)
}

func Error(message string, err error, fields ...Fields) {
	Get().Error(message, err, fields...)
}
