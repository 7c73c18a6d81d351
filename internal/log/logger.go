package log

//go:generate mockgen -destination=../../generated/mocks/logger.go -package=mocks dirdiff/internal/log Logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

//Logger is the diagnostics logger. It never writes the comparison report itself.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Sync() error
}

//New builds a JSON logger of the given level. An empty logFile means stderr.
func New(lvl Level, logFile string) (Logger, error) {
	output := "stderr"
	if logFile != "" {
		output = logFile
	}
	logger, err := zap.Config{
		Level:    zap.NewAtomicLevelAt(levelsMapping[Level(strings.ToLower(string(lvl)))]),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "lvl",
			TimeKey:        "ts",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			StacktraceKey:  "stack",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}
