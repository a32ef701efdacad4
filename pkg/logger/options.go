package logger

import (
	"errors"
	"io"

	"go.uber.org/zap/zapcore"
)

type Option func(*ZapLogger)

// Rotation sets the lumberjack limits used when a log file is configured.
func Rotation(maxSizeMB, maxBackups, maxAgeDays int) Option {
	return func(l *ZapLogger) {
		l.maxSize = maxSizeMB
		l.maxBackups = maxBackups
		l.maxAge = maxAgeDays
	}
}

func SetLevel(level zapcore.Level) Option {
	return func(l *ZapLogger) {
		l.level = level
	}
}

// Filename overrides the rotated log file; an empty name disables the file sink.
func Filename(name string) Option {
	return func(l *ZapLogger) {
		l.filename = name
	}
}

// Console switches to the human readable encoder.
func Console() Option {
	return func(l *ZapLogger) {
		l.format = formatConsole
	}
}

// Output replaces stdout as the primary sink.
func Output(w io.Writer) Option {
	return func(l *ZapLogger) {
		l.out = w
	}
}

func (l *ZapLogger) validate() error {
	switch {
	case l.out == nil:
		return errors.New("output is nil")
	case l.format != formatJSON && l.format != formatConsole:
		return errors.New("unknown format " + l.format)
	case l.filename == "":
		return nil
	case l.maxSize <= 0:
		return errors.New("invalid max size: must be > 0")
	case l.maxBackups < 0:
		return errors.New("invalid max backups: must be >= 0")
	case l.maxAge <= 0:
		return errors.New("invalid max age: must be > 0")
	}
	return nil
}
