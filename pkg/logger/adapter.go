package logger

import (
	"context"
	"fmt"
	"time"

	"github.com/Kabir14815/rr/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*Adapter)(nil)

// Adapter implements Logger on top of a ZapLogger.
type Adapter struct {
	zapLogger *ZapLogger
}

func NewAdapter(cfg *config.Config, opts ...Option) (*Adapter, error) {
	l, err := NewZapLogger(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("logger.NewAdapter: %w", err)
	}
	return &Adapter{zapLogger: l}, nil
}

// NewNop discards everything.
func NewNop() *Adapter {
	return &Adapter{zapLogger: &ZapLogger{logger: zap.NewNop(), level: zapcore.FatalLevel}}
}

func (a *Adapter) Sync() error {
	return a.zapLogger.Zap().Sync()
}

func (a *Adapter) Debugw(msg string, keysAndValues ...any) {
	a.zapLogger.Zap().Sugar().Debugw(msg, keysAndValues...)
}

func (a *Adapter) Infow(msg string, keysAndValues ...any) {
	a.zapLogger.Zap().Sugar().Infow(msg, keysAndValues...)
}

func (a *Adapter) Warnw(msg string, keysAndValues ...any) {
	a.zapLogger.Zap().Sugar().Warnw(msg, keysAndValues...)
}

func (a *Adapter) Errorw(msg string, keysAndValues ...any) {
	a.zapLogger.Zap().Sugar().Errorw(msg, keysAndValues...)
}

func (a *Adapter) LogAttrs(ctx context.Context, level Level, msg string, attrs ...Attr) {
	zl := a.zapLogger.NewContextLogger(ctx)
	if ce := zl.Check(toZapLevel(level), msg); ce != nil {
		ce.Write(zapFields(attrs)...)
	}
}

func (a *Adapter) Ctx(ctx context.Context) Logger {
	return a.derive(a.zapLogger.NewContextLogger(ctx))
}

func (a *Adapter) With(keysAndValues ...any) Logger {
	return a.derive(a.zapLogger.Zap().Sugar().With(keysAndValues...).Desugar())
}

func (a *Adapter) derive(l *zap.Logger) *Adapter {
	return &Adapter{zapLogger: &ZapLogger{logger: l, level: a.zapLogger.level}}
}

// Level reports the minimum level the adapter was configured with.
func (a *Adapter) Level() Level {
	switch a.zapLogger.level {
	case zapcore.DebugLevel:
		return DebugLevel
	case zapcore.InfoLevel:
		return InfoLevel
	case zapcore.WarnLevel:
		return WarnLevel
	default:
		return ErrorLevel
	}
}

func (a *Adapter) GenerateRequestID() string {
	return a.zapLogger.GenerateRequestID()
}

func (a *Adapter) GetRequestID(ctx context.Context) string {
	return a.zapLogger.GetRequestID(ctx)
}

func (a *Adapter) WithRequestID(ctx context.Context, requestID string) context.Context {
	return a.zapLogger.WithRequestID(ctx, requestID)
}

func (a *Adapter) LogRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	a.zapLogger.LogRequest(ctx, method, path, status, duration)
}

func toZapLevel(level Level) zapcore.Level {
	switch {
	case level >= ErrorLevel:
		return zapcore.ErrorLevel
	case level >= WarnLevel:
		return zapcore.WarnLevel
	case level >= InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func zapFields(attrs []Attr) []zap.Field {
	fields := make([]zap.Field, len(attrs))
	for i, a := range attrs {
		fields[i] = zap.Any(a.Key, a.Value)
	}
	return fields
}
