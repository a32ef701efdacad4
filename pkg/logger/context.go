package logger

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const requestIDKey contextKey = "request_id"

func (l *ZapLogger) WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func (l *ZapLogger) GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// NewContextLogger tags l with the request id carried by ctx. Fields already
// attached to l, such as the component, are kept.
func (l *ZapLogger) NewContextLogger(ctx context.Context) *zap.Logger {
	requestID := l.GetRequestID(ctx)
	if requestID == "" {
		return l.logger
	}
	return l.logger.With(zap.String("request_id", requestID))
}

// LogRequest writes one access line; server errors are logged at error level
// and rejected requests at warn.
func (l *ZapLogger) LogRequest(
	ctx context.Context,
	method, path string,
	status int,
	duration time.Duration,
) {
	level := zapcore.InfoLevel
	switch {
	case status >= http.StatusInternalServerError:
		level = zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		level = zapcore.WarnLevel
	}

	l.NewContextLogger(ctx).Log(level, "request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("duration", duration),
	)
}

func (l *ZapLogger) GenerateRequestID() string {
	return uuid.NewString()
}
