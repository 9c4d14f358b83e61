// Package logger provides tooling for structured logging.
// With logger, you can use context to add logging details to your call stack.
package logger

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

type Logger struct {
	Out io.Writer
	// Level is the minimum level that gets written out.
	// When empty, the level from the environment or LevelInfo is used.
	Level Level

	Separator string

	MessageKey   string
	LevelKey     string
	TimestampKey string

	// MarshalFunc is used to serialise the logging message event.
	// When nil it defaults to JSON format.
	MarshalFunc func(interface{}) ([]byte, error)
	// KeyFormatter will be used to format the logging field keys
	KeyFormatter func(string) string

	outLock sync.Mutex
}

const (
	levelDefaultKey   = "level"
	messageDefaultKey = "message"
	timestampKey      = "timestamp"
)

func (l *Logger) Debug(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelDebug, msg, ds)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelInfo, msg, ds)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelWarn, msg, ds)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelError, msg, ds)
}

func (l *Logger) Fatal(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelFatal, msg, ds)
}

func (l *Logger) log(ctx context.Context, level Level, msg string, ds []LoggingDetail) {
	if !l.level().Enabled(level) {
		return
	}
	_ = l.logTo(l.writer(), logEvent{
		Context:   ctx,
		Level:     level,
		Message:   msg,
		Details:   ds,
		Timestamp: time.Now(),
	})
}

type logEvent struct {
	Context   context.Context
	Level     Level
	Message   string
	Timestamp time.Time
	Details   []LoggingDetail
}

func (l *Logger) logTo(out io.Writer, event logEvent) error {
	var (
		entry   = l.toLogEntry(event)
		bs, err = l.marshalFunc()(entry)
	)
	if err != nil {
		return err
	}
	_, err = out.Write(append(bs, []byte(l.separator())...))
	return err
}

func (l *Logger) level() Level {
	if l.Level != "" {
		return l.Level
	}
	return defaultLevel
}

func (l *Logger) getKeyFormatter() func(string) string {
	if l.KeyFormatter != nil {
		return l.KeyFormatter
	}
	return func(s string) string { return s }
}

type writer struct {
	Writer io.Writer
	Locker sync.Locker
}

func (w *writer) Write(p []byte) (n int, err error) {
	w.Locker.Lock()
	defer w.Locker.Unlock()
	return w.Writer.Write(p)
}

func (l *Logger) writer() io.Writer {
	var out io.Writer = os.Stdout
	if l.Out != nil {
		out = l.Out
	}
	return &writer{
		Writer: out,
		Locker: &l.outLock,
	}
}

func (l *Logger) marshalFunc() func(interface{}) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc
	}
	return json.Marshal
}

func (l *Logger) coalesceKey(key, defaultKey string) string {
	if key == "" {
		key = defaultKey
	}
	return l.getKeyFormatter()(key)
}

func (l *Logger) toLogEntry(event logEvent) logEntry {
	le := make(logEntry)
	le.Merge(getLoggingDetailsFromContext(event.Context, l))
	for _, ld := range event.Details {
		ld.addTo(l, le)
	}
	le[l.coalesceKey(l.LevelKey, levelDefaultKey)] = event.Level
	le[l.coalesceKey(l.MessageKey, messageDefaultKey)] = event.Message
	le[l.coalesceKey(l.TimestampKey, timestampKey)] = event.Timestamp.Format(time.RFC3339)
	return le
}

func (l *Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	switch os.PathSeparator {
	case '\\':
		return "\r\n"
	default:
		return "\n"
	}
}
