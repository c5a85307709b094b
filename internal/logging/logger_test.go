package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		quiet     bool
		expected  zapcore.Level
	}{
		{"default", 0, false, zapcore.WarnLevel},
		{"single -v", 1, false, zapcore.InfoLevel},
		{"double -v", 2, false, zapcore.DebugLevel},
		{"many -v", 5, false, zapcore.DebugLevel},
		{"quiet", 0, true, zapcore.ErrorLevel},
		{"quiet wins over -v", 3, true, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Level(tt.verbosity, tt.quiet); got != tt.expected {
				t.Errorf("Level(%d, %v) = %v, want %v", tt.verbosity, tt.quiet, got, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger, err := New(1, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("New(1, false) should enable info level")
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("New(1, false) should not enable debug level")
	}
}
