// Package logging implements ports.Logger on top of logrus.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"orders/internal/core/ports"

	"github.com/sirupsen/logrus"
)

// Options configures the root logger.
type Options struct {
	// Enabled=false discards every entry.
	Enabled bool
	// Level is a logrus level name such as "debug", "info" or "warn".
	Level string
	// Format is "json" or "text".
	Format string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// NewLogrus builds the process-wide logrus logger from opts.
func NewLogrus(opts Options) (*logrus.Logger, error) {
	log := logrus.New()

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if !opts.Enabled {
		out = io.Discard
	}
	log.SetOutput(out)

	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	log.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "", "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	return log, nil
}

// LogrusLogger adapts a logrus entry to ports.Logger.
type LogrusLogger struct {
	entry *logrus.Entry
}

var _ ports.Logger = LogrusLogger{}

// NewLogrusLogger wraps log as a ports.Logger.
func NewLogrusLogger(log *logrus.Logger) LogrusLogger {
	return LogrusLogger{entry: logrus.NewEntry(log)}
}

// New builds a logrus logger from opts and wraps it.
func New(opts Options) (LogrusLogger, error) {
	log, err := NewLogrus(opts)
	if err != nil {
		return LogrusLogger{}, err
	}
	return NewLogrusLogger(log), nil
}

func (l LogrusLogger) Info(msg string, keysAndValues ...any) {
	l.entry.WithFields(fields(keysAndValues)).Info(msg)
}

func (l LogrusLogger) Warn(msg string, keysAndValues ...any) {
	l.entry.WithFields(fields(keysAndValues)).Warn(msg)
}

func (l LogrusLogger) Error(msg string, err error, keysAndValues ...any) {
	entry := l.entry.WithFields(fields(keysAndValues))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}

func (l LogrusLogger) With(keysAndValues ...any) ports.Logger {
	return LogrusLogger{entry: l.entry.WithFields(fields(keysAndValues))}
}

// Entry exposes the underlying logrus entry for libraries that want one.
func (l LogrusLogger) Entry() *logrus.Entry {
	return l.entry
}

// fields turns alternating key/value pairs into logrus fields. A trailing key
// without a value is kept under "!BADKEY" so nothing is silently dropped.
func fields(keysAndValues []any) logrus.Fields {
	f := make(logrus.Fields, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		if i+1 >= len(keysAndValues) {
			f["!BADKEY"] = key
			break
		}
		f[key] = keysAndValues[i+1]
	}
	return f
}
