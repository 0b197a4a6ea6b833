package glog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestLogger_DefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Errorf("default logger should be disabled for all levels")
	}
}

func TestSetLogger_RoutesRecords(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Debug("unknown vertex attribute format", slog.Int("offset", 0x458), slog.String("field", "vertexAttribState"))

	if !strings.Contains(buf.String(), "unknown vertex attribute format") {
		t.Errorf("expected log output to contain message, got %q", buf.String())
	}
}

func TestSetLogger_NilRestoresSilence(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	Logger().Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected no output after SetLogger(nil), got %q", buf.String())
	}
}
