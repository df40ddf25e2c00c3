package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, "")
	log.Debug("hidden %d", 1)
	log.Info("hidden %d", 2)
	log.Warn("shown %d", 3)
	log.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug and info filtered, got %q", out)
	}
	if !strings.Contains(out, "shown 3") || !strings.Contains(out, "shown 4") {
		t.Errorf("expected warn and error lines, got %q", out)
	}
}

func TestLogger_Prefix(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelDebug, "exodiag").WithPrefix("fonts")
	log.Debug("fallback")
	if !strings.Contains(buf.String(), "[exodiag/fonts] fallback") {
		t.Errorf("expected nested prefix, got %q", buf.String())
	}
}

func TestLogger_Saved(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelError, "").Saved("/tmp/out.png", 1920, 1080)
	out := buf.String()
	if !strings.Contains(out, "/tmp/out.png") || !strings.Contains(out, "1920x1080") {
		t.Errorf("expected path and size, got %q", out)
	}
}

func TestLevelString(t *testing.T) {
	if LevelWarn.String() != "WARN" {
		t.Errorf("expected WARN, got %s", LevelWarn.String())
	}
	if Level(42).String() != "UNKNOWN" {
		t.Errorf("expected UNKNOWN, got %s", Level(42).String())
	}
}
