package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/Kabir14815/rr/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	formatJSON    = "json"
	formatConsole = "console"
)

type ZapLogger struct {
	logger *zap.Logger
	level  zapcore.Level

	format     string
	out        io.Writer
	filename   string
	maxSize    int
	maxBackups int
	maxAge     int
}

func NewZapLogger(cfg *config.Config, opts ...Option) (*ZapLogger, error) {
	const op = "logger.NewZapLogger"

	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("%s: parse level: %w", op, err)
	}

	l := &ZapLogger{
		level:      level,
		format:     cfg.Logger.Format,
		out:        os.Stdout,
		filename:   cfg.Logger.Filename,
		maxSize:    cfg.Logger.MaxSize,
		maxBackups: cfg.Logger.MaxBackups,
		maxAge:     cfg.Logger.MaxAge,
	}
	if l.format == "" {
		l.format = formatJSON
	}

	for _, opt := range opts {
		opt(l)
	}

	if err = l.validate(); err != nil {
		return nil, fmt.Errorf("%s: validation: %w", op, err)
	}

	minLevel := l.level
	enabled := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel
	})

	// The rotated file always gets JSON so it stays machine readable.
	cores := []zapcore.Core{zapcore.NewCore(l.encoder(), zapcore.AddSync(l.out), enabled)}
	if l.filename != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig()),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   l.filename,
				MaxSize:    l.maxSize,
				MaxBackups: l.maxBackups,
				MaxAge:     l.maxAge,
				Compress:   true,
			}),
			enabled,
		))
	}

	l.logger = zap.New(zapcore.NewTee(cores...),
		zap.Fields(
			zap.String("service", cfg.App.Name),
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.Env),
		),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)

	return l, nil
}

func (l *ZapLogger) encoder() zapcore.Encoder {
	if l.format == formatConsole {
		ec := encoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		return zapcore.NewConsoleEncoder(ec)
	}
	return zapcore.NewJSONEncoder(encoderConfig())
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		FunctionKey:   zapcore.OmitKey,
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
}

func (l *ZapLogger) Zap() *zap.Logger {
	return l.logger
}
