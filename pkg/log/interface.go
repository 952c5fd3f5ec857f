// Package log provides structured logging for kairos estimator operations.
//
// The package defines a minimal, slog-compatible Logger interface with a
// zerolog-backed default implementation. Estimators and tooling log through
// this interface so the backend can be swapped without touching call sites.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.EstimatorKey, "SummaryRegressor",
//	)
//	logger.Info("fit complete",
//	    log.OperationKey, "fit",
//	    log.CasesKey, 128,
//	)
package log

// Logger is a structured logging interface compatible with log/slog
// field conventions: variadic key-value pairs following the message.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic conditions that do not stop the
	// operation.
	Warn(msg string, fields ...any)

	// Error logs error conditions. If a field value is an error carrying a
	// stack trace, the backend may include it in the emitted record.
	Error(msg string, fields ...any)

	// With returns a Logger that includes the given fields in every record.
	With(fields ...any) Logger
}

// Level represents a logging level. Values are compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the textual name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
