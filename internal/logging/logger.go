package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level maps the CLI verbosity flags to a zap level.
//
//	quiet      -> error
//	(default)  -> warn
//	-v         -> info
//	-vv and up -> debug
func Level(verbosity int, quiet bool) zapcore.Level {
	switch {
	case quiet:
		return zapcore.ErrorLevel
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New builds the command logger for the given verbosity. The logger writes
// human-readable console output to stderr so command output on stdout stays
// clean for scripting.
func New(verbosity int, quiet bool) (*zap.Logger, error) {
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(Level(verbosity, quiet)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
