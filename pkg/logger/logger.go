// Package logger wraps zap behind a small interface that carries the request
// id through context.
package logger

import (
	"context"
	"time"
)

// Level mirrors the slog level values so callers never import zap.
type Level int

const (
	DebugLevel Level = -4
	InfoLevel  Level = 0
	WarnLevel  Level = 4
	ErrorLevel Level = 8
)

type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// LogAttrs tags the entry with the request id found in ctx.
	LogAttrs(ctx context.Context, level Level, msg string, attrs ...Attr)

	// Ctx returns a logger bound to the request id in ctx.
	Ctx(ctx context.Context) Logger
	With(keysAndValues ...any) Logger

	GenerateRequestID() string
	WithRequestID(ctx context.Context, requestID string) context.Context
	GetRequestID(ctx context.Context) string
	LogRequest(ctx context.Context, method, path string, status int, duration time.Duration)
}

type Attr struct {
	Key   string
	Value any
}

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

func String(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

func Int(key string, value int) Attr {
	return Attr{Key: key, Value: value}
}

func Int64(key string, value int64) Attr {
	return Attr{Key: key, Value: value}
}

func Time(key string, value time.Time) Attr {
	return Attr{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Attr {
	return Attr{Key: key, Value: value}
}

// Err records err under "error"; nil is logged as an empty string.
func Err(err error) Attr {
	if err == nil {
		return Attr{Key: "error", Value: ""}
	}
	return Attr{Key: "error", Value: err.Error()}
}
