// Package logger provides the prefixed, colour-coded component loggers used
// across the service.
package logger

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger writes "[PREFIX] [LEVEL] message" lines to its writer.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger for the named component. color is an ANSI escape
// applied to the prefix; an empty color prints it plain.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	l, _ := New("DISCARD", "", io.Discard)
	return l
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print("INFO", msg)
}

// Warning logs a recoverable anomaly.
func (l *Logger) Warning(msg string) {
	l.print("WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *Logger) print(level, msg string) {
	if l.color == "" {
		l.out.Printf("[%s] [%s] %s", l.prefix, level, msg)
		return
	}
	l.out.Printf("%s[%s]%s [%s] %s", l.color, l.prefix, colorReset, level, msg)
}
