package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{name: "debug level", level: "debug"},
		{name: "info level", level: "info"},
		{name: "warn level", level: "warn"},
		{name: "error level", level: "error"},
		{name: "invalid level defaults to info", level: "invalid"},
		{name: "empty level defaults to info", level: ""},
		{name: "uppercase level", level: "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.level, &bytes.Buffer{})
			if logger == nil {
				t.Fatal("Expected logger to be non-nil")
				return
			}
			if logger.log == nil {
				t.Fatal("Expected internal log to be non-nil")
				return
			}
		})
	}
}

func TestNew_NilOutput(t *testing.T) {
	logger := New("info", nil)
	if logger == nil {
		t.Fatal("Expected logger to be non-nil")
		return
	}
}

func TestLogger_AllLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("debug", buf)

	logger.Debug().Str("type", "debug").Msg("debug message")
	logger.Info().Str("type", "info").Msg("info message")
	logger.Warn().Str("type", "warn").Msg("warn message")
	logger.Error().Str("type", "error").Msg("error message")

	output := buf.String()

	expectedMessages := []string{"debug message", "info message", "warn message", "error message"}
	for _, msg := range expectedMessages {
		if !strings.Contains(output, msg) {
			t.Errorf("Expected output to contain '%s', got: %s", msg, output)
		}
	}
}

func TestEntry_ChainedFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("info", buf)

	testErr := errors.New("chain error")
	logger.Info().
		Str("string", "value").
		Int("number", 123).
		Bool("flag", false).
		Err(testErr).
		Msg("chained message")

	output := buf.String()
	for _, want := range []string{"chained message", "string", "number", "flag"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain '%s', got: %s", want, output)
		}
	}
}

func TestEntry_Dur(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("info", buf)

	duration := 1500 * time.Microsecond
	logger.Info().Dur("duration", duration).Msg("test duration")

	output := buf.String()
	if !strings.Contains(output, "duration") {
		t.Errorf("Expected output to contain 'duration' field")
	}
	if !strings.Contains(output, "1.5") {
		t.Errorf("Expected output to contain '1.5' milliseconds")
	}
}

func TestEntry_Err_Nil(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("error", buf)

	logger.Error().Err(nil).Msg("no error")

	output := buf.String()
	if !strings.Contains(output, "no error") {
		t.Errorf("Expected output to contain 'no error', got: %s", output)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		logLevel    string
		messageFunc func(*Logger)
		shouldLog   bool
	}{
		{
			name:     "debug message with debug level",
			logLevel: "debug",
			messageFunc: func(l *Logger) {
				l.Debug().Msg("debug")
			},
			shouldLog: true,
		},
		{
			name:     "debug message with info level",
			logLevel: "info",
			messageFunc: func(l *Logger) {
				l.Debug().Msg("debug")
			},
			shouldLog: false,
		},
		{
			name:     "info message with warn level",
			logLevel: "warn",
			messageFunc: func(l *Logger) {
				l.Info().Msg("info")
			},
			shouldLog: false,
		},
		{
			name:     "warn message with warn level",
			logLevel: "warn",
			messageFunc: func(l *Logger) {
				l.Warn().Msg("warn")
			},
			shouldLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(tt.logLevel, buf)

			tt.messageFunc(logger)

			output := buf.String()
			hasOutput := len(output) > 0

			if tt.shouldLog && !hasOutput {
				t.Errorf("Expected log output but got none")
			}
			if !tt.shouldLog && hasOutput {
				t.Errorf("Expected no log output but got: %s", output)
			}
		})
	}
}
