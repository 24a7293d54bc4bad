package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the leveled, context-aware logging interface used across the
// pipeline.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	WithField(key string, value interface{}) Logger
}

type implLogger struct {
	log logrus.FieldLogger
}

// New creates a Logger writing to stdout. Unknown levels default to info;
// format is "text" or "json".
func New(level, format string) Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &implLogger{log: l}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log.Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log.Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log.Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log.Errorf(msg, args...)
}

// WithField returns a Logger that tags every entry with the given field.
func (l *implLogger) WithField(key string, value interface{}) Logger {
	return &implLogger{log: l.log.WithField(key, value)}
}
