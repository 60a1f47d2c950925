package logger

import (
	"context"
	"log/slog"
)

// Interface is the logging surface injected into use cases, repositories,
// and handlers. The sugared "w" forms and the plain forms both take
// alternating key-value pairs; they exist side by side so call sites can
// match the verbosity of their surroundings.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})
}

type slogLogger struct {
	base *slog.Logger
}

// NewLogger wraps the package logger configured by Init.
func NewLogger() Interface {
	return &slogLogger{base: Get()}
}

// NewLoggerWithSlog wraps an explicit slog logger. Tests use this to
// capture output through a handler of their choosing.
func NewLoggerWithSlog(slogLog *slog.Logger) Interface {
	return &slogLogger{base: slogLog}
}

func (l *slogLogger) log(level slog.Level, msg string, args ...any) {
	l.base.Log(context.Background(), level, msg, args...)
}

func (l *slogLogger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args...) }

// Fatal logs at error level and panics. Panicking instead of os.Exit lets
// deferred cleanup in the server command run before the process dies.
func (l *slogLogger) Fatal(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
	panic("fatal error")
}

// With returns a logger that attaches the given key-value pairs to every
// record it emits.
func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{base: l.base.With(args...)}
}

// Named tags the logger with a component name.
func (l *slogLogger) Named(name string) Interface {
	return &slogLogger{base: l.base.With("logger", name)}
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelDebug, msg, keysAndValues...)
}

func (l *slogLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelInfo, msg, keysAndValues...)
}

func (l *slogLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelWarn, msg, keysAndValues...)
}

func (l *slogLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelError, msg, keysAndValues...)
}

func (l *slogLogger) Fatalw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelError, msg, keysAndValues...)
	panic("fatal error")
}
