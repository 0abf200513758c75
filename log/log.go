// Package log provides tagged leveled logging on top of log/slog.
// Each message carries the emitting object's String() as its name.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Tag identifies the object a log message belongs to.
type Tag interface {
	String() string
}

type Level int

const (
	LevelTrace Level = Level(slog.LevelDebug) - 4
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
	LevelFatal Level = Level(slog.LevelError) + 4
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelFatal:
		return "FATAL"
	default:
		return slog.Level(l).String()
	}
}

// Logger is a leveled logger with a mutable level.
type Logger struct {
	inner *slog.Logger
	level *slog.LevelVar
}

var defaultLogger = New(os.Stderr)

// Default returns the process-wide logger.
func Default() *Logger {
	return defaultLogger
}

// New creates a logger writing text records to the given writer.
func New(w io.Writer) *Logger {
	level := new(slog.LevelVar)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				a.Value = slog.StringValue(Level(a.Value.Any().(slog.Level)).String())
			}
			return a
		},
	})
	return &Logger{
		inner: slog.New(handler),
		level: level,
	}
}

// Level returns the minimum level this logger emits.
func (l *Logger) Level() Level {
	return Level(l.level.Level())
}

// SetLevel sets the minimum level this logger emits.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(slog.Level(level))
}

func (l *Logger) log(level Level, t Tag, msg string, v ...any) {
	if t != nil {
		v = append([]any{"name", t.String()}, v...)
	}
	l.inner.Log(context.Background(), slog.Level(level), msg, v...)
}

func (l *Logger) Trace(t Tag, msg string, v ...any) { l.log(LevelTrace, t, msg, v...) }
func (l *Logger) Debug(t Tag, msg string, v ...any) { l.log(LevelDebug, t, msg, v...) }
func (l *Logger) Info(t Tag, msg string, v ...any)  { l.log(LevelInfo, t, msg, v...) }
func (l *Logger) Warn(t Tag, msg string, v ...any)  { l.log(LevelWarn, t, msg, v...) }
func (l *Logger) Error(t Tag, msg string, v ...any) { l.log(LevelError, t, msg, v...) }

func Trace(t Tag, msg string, v ...any) {
	defaultLogger.log(LevelTrace, t, msg, v...)
}

func Debug(t Tag, msg string, v ...any) {
	defaultLogger.log(LevelDebug, t, msg, v...)
}

func Info(t Tag, msg string, v ...any) {
	defaultLogger.log(LevelInfo, t, msg, v...)
}

func Warn(t Tag, msg string, v ...any) {
	defaultLogger.log(LevelWarn, t, msg, v...)
}

func Error(t Tag, msg string, v ...any) {
	defaultLogger.log(LevelError, t, msg, v...)
}

// Fatal logs the message and terminates the process.
func Fatal(t Tag, msg string, v ...any) {
	defaultLogger.log(LevelFatal, t, msg, v...)
	os.Exit(1)
}

// String is a plain string Tag.
type String string

func (s String) String() string {
	return string(s)
}
