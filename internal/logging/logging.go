package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

const (
	LevelQuiet   = "quiet"
	LevelTerse   = "terse"
	LevelVerbose = "verbose"
)

// New creates a zap logger writing to stderr at the requested verbosity.
// Levels are colored when stderr is a terminal.
func New(level string) (*zap.Logger, error) {
	cfg, err := config(level, term.IsTerminal(int(os.Stderr.Fd()))) // #nosec G115 -- fd fits in int
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

func config(level string, color bool) (zap.Config, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = "time"
	encoderCfg.LevelKey = "level"
	encoderCfg.MessageKey = "msg"
	if color {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding:         "console",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	switch level {
	case LevelVerbose:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case LevelTerse, "":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case LevelQuiet:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	default:
		return zap.Config{}, fmt.Errorf("unknown log level %q", level)
	}

	return cfg, nil
}
