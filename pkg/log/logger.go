package log

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// Logger writes structured entries to its transporters.
// Delivery is synchronous: an entry is written before the call returns.
type Logger struct {
	mu           sync.RWMutex
	level        Level
	transporters []Transporter
	baseFields   map[string]any
}

// New creates a new logger with the given minimum level and transporters.
func New(level Level, transporters ...Transporter) *Logger {
	return &Logger{
		level:        level,
		transporters: transporters,
		baseFields:   make(map[string]any),
	}
}

// SetLevel changes the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// With creates a child logger with additional base fields.
// The child shares the parent's transporters.
func (l *Logger) With(keysAndValues ...any) *Logger {
	l.mu.RLock()
	child := &Logger{
		level:        l.level,
		transporters: l.transporters,
		baseFields:   make(map[string]any, len(l.baseFields)),
	}
	for k, v := range l.baseFields {
		child.baseFields[k] = v
	}
	l.mu.RUnlock()

	addPairs(child.baseFields, keysAndValues)
	return child
}

// Close closes every transporter.
func (l *Logger) Close() {
	for _, t := range l.transporters {
		if err := t.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "log: close %s: %v\n", t.Name(), err)
		}
	}
}

func (l *Logger) log(ctx context.Context, level Level, msg string, keysAndValues ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.level.Enables(level) {
		return
	}

	entry := NewEntry(level, msg)
	entry.Caller = caller(3)

	for k, v := range l.baseFields {
		entry.Fields[k] = v
	}
	if ctx != nil {
		entry.RequestID = RequestIDFromContext(ctx)
		for k, v := range FieldsFromContext(ctx) {
			entry.Fields[k] = v
		}
	}
	addPairs(entry.Fields, keysAndValues)

	for _, t := range l.transporters {
		if err := t.Write(*entry); err != nil {
			fmt.Fprintf(os.Stderr, "log: write %s: %v\n", t.Name(), err)
		}
	}
}

// addPairs copies alternating key/value arguments into fields.
// Non-string keys and a trailing key without value are ignored.
func addPairs(fields map[string]any, keysAndValues []any) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
}

// caller returns file:line of the logging call site.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func (l *Logger) Trace(msg string, keysAndValues ...any) { l.log(nil, Trace, msg, keysAndValues...) }
func (l *Logger) Debug(msg string, keysAndValues ...any) { l.log(nil, Debug, msg, keysAndValues...) }
func (l *Logger) Info(msg string, keysAndValues ...any)  { l.log(nil, Info, msg, keysAndValues...) }
func (l *Logger) Warn(msg string, keysAndValues ...any)  { l.log(nil, Warn, msg, keysAndValues...) }
func (l *Logger) Error(msg string, keysAndValues ...any) { l.log(nil, Error, msg, keysAndValues...) }

// Fatal logs at Fatal level.
// Note: Does not exit - that's the caller's responsibility.
func (l *Logger) Fatal(msg string, keysAndValues ...any) { l.log(nil, Fatal, msg, keysAndValues...) }

func (l *Logger) DebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Debug, msg, keysAndValues...)
}

func (l *Logger) InfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Info, msg, keysAndValues...)
}

func (l *Logger) WarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Warn, msg, keysAndValues...)
}

func (l *Logger) ErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Error, msg, keysAndValues...)
}

// --- Global Logger ---

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
	noopLogger   = New(Fatal + 1)
)

// SetDefault sets the global default logger.
func SetDefault(l *Logger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

// Default returns the global logger, or a logger that drops everything
// if none was set.
func Default() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return noopLogger
	}
	return globalLogger
}

// Global convenience functions. They log from the caller's frame, so the
// entry's caller points at the code calling GlobalX, not at this file.

func GlobalDebug(msg string, keysAndValues ...any) { Default().log(nil, Debug, msg, keysAndValues...) }
func GlobalInfo(msg string, keysAndValues ...any)  { Default().log(nil, Info, msg, keysAndValues...) }
func GlobalWarn(msg string, keysAndValues ...any)  { Default().log(nil, Warn, msg, keysAndValues...) }
func GlobalError(msg string, keysAndValues ...any) { Default().log(nil, Error, msg, keysAndValues...) }

func GlobalDebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(ctx, Debug, msg, keysAndValues...)
}

func GlobalInfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(ctx, Info, msg, keysAndValues...)
}

func GlobalWarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(ctx, Warn, msg, keysAndValues...)
}

func GlobalErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(ctx, Error, msg, keysAndValues...)
}
