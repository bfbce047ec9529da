package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

var (
	log  *zap.Logger
	once sync.Once
)

func Init(cfg Config) {
	once.Do(func() {
		log = newLogger(cfg)
	})
}

func newLogger(cfg Config) *zap.Logger {
	var level zapcore.Level
	switch cfg.Level {
	case DebugLevel:
		level = zapcore.DebugLevel
	case InfoLevel:
		level = zapcore.InfoLevel
	case WarnLevel:
		level = zapcore.WarnLevel
	case ErrorLevel:
		level = zapcore.ErrorLevel
	default:
		level = zapcore.WarnLevel
	}

	var output zapcore.WriteSyncer
	switch cfg.OutputPath {
	case "", "stderr":
		output = zapcore.AddSync(os.Stderr)
	case "stdout":
		output = zapcore.AddSync(os.Stdout)
	default:
		file, err := os.OpenFile(cfg.OutputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			output = zapcore.AddSync(os.Stderr)
		} else {
			output = zapcore.AddSync(file)
		}
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	return zap.New(zapcore.NewCore(encoder, output, level))
}

// L returns the process logger, initializing it with defaults if Init was
// never called.
func L() *zap.Logger {
	if log == nil {
		Init(Config{
			Level:      WarnLevel,
			OutputPath: "stderr",
			Encoding:   "console",
		})
	}
	return log
}

func Debugf(template string, args ...interface{}) {
	L().Sugar().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	L().Sugar().Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	L().Sugar().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	L().Sugar().Errorf(template, args...)
}

func Fatalf(template string, args ...interface{}) {
	L().Sugar().Fatalf(template, args...)
}
