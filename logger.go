// FILE: vrsarin/argmap/logger.go
package argmap

import "log/slog"

// Logger is the structured warning/error sink consumed by the registry.
//
// The variadic args are interpreted as key/value pairs, e.g.:
//
//	log.Warn("ignoring unknown setting as requested", "name", name)
//
// The registry only ever logs: deprecated-setting usage, tolerated unknown
// settings, unopenable files, and include-directory failures. Everything
// else is surfaced as an error return.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(msg string, args ...any)

	// Error logs a message for failures that are about to be returned.
	Error(msg string, args ...any)
}

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps an slog logger. A nil argument wraps slog.Default().
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Info(msg string, args ...any) {
	s.l.Info(msg, args...)
}

func (s *SlogLogger) Warn(msg string, args ...any) {
	s.l.Warn(msg, args...)
}

func (s *SlogLogger) Error(msg string, args ...any) {
	s.l.Error(msg, args...)
}

// nopLogger discards everything. It is the default sink so that library
// users who never call SetLogger get silent, error-return-only behavior.
type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
