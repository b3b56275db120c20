package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	logger, err := New("")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected a nop logger")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	logger, err := New("")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) || logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected warn level logger")
	}
}

func TestNewExplicitLevelWins(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "error")
	logger, err := New("debug")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level logger")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
