package logger

import "log/slog"

// Interface is the logger handed to use cases and handlers. The *w variants
// take alternating key/value pairs.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

type slogAdapter struct {
	l *slog.Logger
}

func NewLogger() Interface {
	return &slogAdapter{l: Get()}
}

func NewLoggerWithSlog(l *slog.Logger) Interface {
	return &slogAdapter{l: l}
}

func (a *slogAdapter) Debug(msg string, args ...any) { a.l.Debug(msg, args...) }
func (a *slogAdapter) Info(msg string, args ...any)  { a.l.Info(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.l.Warn(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.l.Error(msg, args...) }

func (a *slogAdapter) Debugw(msg string, kv ...any) { a.l.Debug(msg, kv...) }
func (a *slogAdapter) Infow(msg string, kv ...any)  { a.l.Info(msg, kv...) }
func (a *slogAdapter) Warnw(msg string, kv ...any)  { a.l.Warn(msg, kv...) }
func (a *slogAdapter) Errorw(msg string, kv ...any) { a.l.Error(msg, kv...) }

func (a *slogAdapter) With(args ...any) Interface {
	return &slogAdapter{l: a.l.With(args...)}
}

func (a *slogAdapter) Named(name string) Interface {
	return &slogAdapter{l: a.l.With("logger", name)}
}

// NewNopLogger discards everything. Used in tests and by components that
// run before logging is configured.
func NewNopLogger() Interface {
	return &slogAdapter{l: slog.New(slog.DiscardHandler)}
}
