// Package notify defines the notification capability used for operator
// feedback. The controller takes a Notifier at construction instead of
// reaching for ambient globals; the default implementation logs via slog so
// notifications stay visible even when no richer sink is wired up.
package notify

import "log/slog"

// Notifier delivers user-facing feedback messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Slog is a Notifier backed by a structured logger.
type Slog struct {
	logger *slog.Logger
}

// NewSlog returns a Notifier that writes to logger, or slog.Default()
// when logger is nil.
func NewSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{logger: logger}
}

func (s *Slog) Success(msg string) { s.logger.Info(msg, "notice", "success") }
func (s *Slog) Error(msg string)   { s.logger.Error(msg, "notice", "error") }
func (s *Slog) Info(msg string)    { s.logger.Info(msg, "notice", "info") }

// Nop discards all notifications.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Error(string)   {}
func (Nop) Info(string)    {}
