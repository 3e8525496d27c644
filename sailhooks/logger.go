// Package sailhooks provides the logging and metrics adapters plugged into
// the codec framework: a slog-backed Logger and an in-memory stats
// collector for frame-level timings and error counts.
package sailhooks

import "log/slog"

// SlogLogger adapts a *slog.Logger to sailcore.Logger.
type SlogLogger struct {
	log *slog.Logger
}

// NewSlogLogger wraps l. A nil l falls back to slog.Default().
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{log: l}
}

func (s *SlogLogger) Debug(msg string, fields ...interface{}) { s.log.Debug(msg, fields...) }
func (s *SlogLogger) Info(msg string, fields ...interface{})  { s.log.Info(msg, fields...) }
func (s *SlogLogger) Warn(msg string, fields ...interface{})  { s.log.Warn(msg, fields...) }
func (s *SlogLogger) Error(msg string, fields ...interface{}) { s.log.Error(msg, fields...) }
