package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New("debug", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected no-op logger to have every level disabled")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docnote.log")
	logger, err := New("info", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debugw("hidden")
	logger.Infow("opening URL", "url", "https://example.com")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "opening URL") {
		t.Fatalf("expected info entry in log, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered at info level: %q", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("loud", filepath.Join(t.TempDir(), "x.log")); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
