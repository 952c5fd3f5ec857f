package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu            sync.RWMutex
	defaultLogger Logger = NewZerologLogger(os.Stderr, LevelInfo)
)

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// SetLogger replaces the process-wide default logger.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger creates a Logger backed by zerolog writing to w.
func NewZerologLogger(w io.Writer, level Level) Logger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

// NewConsoleLogger creates a Logger with human-readable console output,
// intended for CLI use.
func NewConsoleLogger(level Level) Logger {
	cw := zerolog.ConsoleWriter{Out: os.Stderr}
	zl := zerolog.New(cw).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &zerologLogger{zl: zl}
}

// NewNopLogger creates a Logger that discards all records.
func NewNopLogger() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	emit(l.zl.Debug(), msg, fields)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	emit(l.zl.Info(), msg, fields)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	emit(l.zl.Warn(), msg, fields)
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	emit(l.zl.Error(), msg, fields)
}

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for k, v := range pairs(fields) {
		ctx = ctx.Interface(k, v)
	}
	return &zerologLogger{zl: ctx.Logger()}
}

// emit writes one record, dispatching field values to typed zerolog adders.
func emit(ev *zerolog.Event, msg string, fields []any) {
	for k, v := range pairs(fields) {
		switch val := v.(type) {
		case error:
			if om, ok := v.(zerolog.LogObjectMarshaler); ok {
				ev = ev.Object(k, om)
			} else {
				ev = ev.AnErr(k, val)
			}
		case string:
			ev = ev.Str(k, val)
		case int:
			ev = ev.Int(k, val)
		case int64:
			ev = ev.Int64(k, val)
		case float64:
			ev = ev.Float64(k, val)
		case bool:
			ev = ev.Bool(k, val)
		default:
			ev = ev.Interface(k, v)
		}
	}
	ev.Msg(msg)
}

// pairs converts a variadic key-value list to a map. Keys that are not
// strings are stringified; a trailing unpaired value is keyed "!BADKEY".
func pairs(fields []any) map[string]any {
	out := make(map[string]any, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprint(fields[i])
		}
		out[key] = fields[i+1]
	}
	if len(fields)%2 != 0 {
		out["!BADKEY"] = fields[len(fields)-1]
	}
	return out
}

// WarningHandler returns a warning handler that forwards kairos warnings to
// the given logger, for use with errors.SetWarningHandler.
func WarningHandler(l Logger) func(error) {
	return func(w error) {
		l.Warn("warning", "warning", w)
	}
}
