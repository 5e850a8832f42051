// Package logger provides structured key-value logging for commitcheck.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Logger is the structured logging interface used throughout commitcheck.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

// Level represents the log level.
type Level string

const (
	// LevelDebug represents debug-level logging.
	LevelDebug Level = "DEBUG"

	// LevelInfo represents info-level logging.
	LevelInfo Level = "INFO"

	// LevelError represents error-level logging.
	LevelError Level = "ERROR"
)

// WriterLogger writes logfmt-style lines to a writer. Error lines are
// always written; Info requires debug mode and Debug requires trace mode.
type WriterLogger struct {
	mu      *sync.Mutex
	out     io.Writer
	baseKVs []any
	debug   bool
	trace   bool
}

// New creates a WriterLogger.
func New(out io.Writer, debug, trace bool) *WriterLogger {
	return &WriterLogger{
		mu:    &sync.Mutex{},
		out:   out,
		debug: debug,
		trace: trace,
	}
}

// Debug logs debug-level messages.
func (l *WriterLogger) Debug(msg string, keysAndValues ...any) {
	if !l.trace {
		return
	}

	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *WriterLogger) Info(msg string, keysAndValues ...any) {
	if !l.debug && !l.trace {
		return
	}

	l.log(LevelInfo, msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *WriterLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

// With returns a new logger with additional base key-value pairs.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *WriterLogger) With(keysAndValues ...any) Logger {
	baseKVs := make([]any, 0, len(l.baseKVs)+len(keysAndValues))
	baseKVs = append(baseKVs, l.baseKVs...)
	baseKVs = append(baseKVs, keysAndValues...)

	return &WriterLogger{
		mu:      l.mu,
		out:     l.out,
		baseKVs: baseKVs,
		debug:   l.debug,
		trace:   l.trace,
	}
}

func (l *WriterLogger) log(level Level, msg string, keysAndValues ...any) {
	var builder strings.Builder

	builder.WriteString(time.Now().UTC().Format(time.RFC3339))
	builder.WriteString(" ")
	builder.WriteString(string(level))
	builder.WriteString(" ")
	builder.WriteString(msg)

	writeKeyValues(&builder, l.baseKVs)
	writeKeyValues(&builder, keysAndValues)
	builder.WriteString("\n")

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = io.WriteString(l.out, builder.String())
}

func writeKeyValues(builder *strings.Builder, kvs []any) {
	for i := 0; i+1 < len(kvs); i += 2 {
		value := fmt.Sprintf("%v", kvs[i+1])
		if strings.ContainsAny(value, " \t\n\"") {
			value = fmt.Sprintf("%q", value)
		}

		builder.WriteString(" ")
		builder.WriteString(fmt.Sprintf("%v", kvs[i]))
		builder.WriteString("=")
		builder.WriteString(value)
	}
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (n *NoOpLogger) With(...any) Logger {
	return n
}
