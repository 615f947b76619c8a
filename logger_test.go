package softraster

import (
	"bytes"
	"log/slog"
	"testing"
)

// TestLoggerDefault tests that the default logger exists and is disabled at
// every level.
func TestLoggerDefault(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, lv := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(nil, lv) {
			t.Errorf("default logger enabled at %v", lv)
		}
	}
}

// TestSetLogger tests installing a real logger and restoring the default.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Logger().Debug("flag buffer growth", "w", 8, "h", 8)
	if buf.Len() == 0 {
		t.Fatal("installed logger received no output")
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Debug("dropped")
	if buf.Len() != 0 {
		t.Error("nil reset still writes to the old logger")
	}
}
