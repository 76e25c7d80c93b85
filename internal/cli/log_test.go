package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "solve progress at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("solving PCSF") },
			wantLog: true,
		},
		{
			name:    "cache debug hidden at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("solution served from cache") },
			wantLog: false,
		},
		{
			name:    "cache debug shown with --verbose",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("solution served from cache") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			if logger == nil {
				t.Fatal("newLogger() returned nil")
			}
			tt.logFunc(logger)

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress_ReportsMessageAndDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(10 * time.Millisecond)
	prog.done("Forest has 12 nodes and 9 edges")

	out := buf.String()
	if !strings.Contains(out, "Forest has 12 nodes and 9 edges") {
		t.Errorf("progress output %q should contain the completion message", out)
	}
	if !strings.Contains(out, "ms") && !strings.Contains(out, "s)") {
		t.Errorf("progress output %q should contain an elapsed duration", out)
	}
}

func TestLoggerContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}

	loggerFromContext(ctx).Info("translated 4 identifiers")
	if buf.Len() == 0 {
		t.Error("attached logger should write to its buffer")
	}
}

func TestLoggerFromContext_DefaultWhenUnset(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to a usable default logger")
	}
}
