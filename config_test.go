package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFile)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg := loadConfigFrom(filepath.Join(t.TempDir(), "nope"), "/home/user")
	if cfg.OutputDirectory != "" {
		t.Errorf("expected no output directory, got %q", cfg.OutputDirectory)
	}
	if cfg.RegularFont != "DejaVuSans.ttf" || cfg.BoldFont != "DejaVuSans-Bold.ttf" {
		t.Errorf("expected DejaVu defaults, got %q / %q", cfg.RegularFont, cfg.BoldFont)
	}
	if cfg.CopyPath {
		t.Errorf("expected copy disabled by default")
	}
}

func TestLoadConfig_Keys(t *testing.T) {
	path := writeConfig(t, `
# render settings
OutDir = ~/diagrams
font_dirs = /opt/fonts, ~/fonts
regularfont = go
Copy = TRUE
not a setting
unknown = 1
`)
	cfg := loadConfigFrom(path, "/home/user")

	if cfg.OutputDirectory != "/home/user/diagrams" {
		t.Errorf("expected /home/user/diagrams, got %q", cfg.OutputDirectory)
	}
	n := len(cfg.FontDirs)
	if n < 2 || cfg.FontDirs[n-2] != "/opt/fonts" || cfg.FontDirs[n-1] != "/home/user/fonts" {
		t.Errorf("expected configured font dirs appended, got %v", cfg.FontDirs)
	}
	if cfg.RegularFont != "go" {
		t.Errorf("expected regular font go, got %q", cfg.RegularFont)
	}
	if !cfg.CopyPath {
		t.Errorf("expected copy enabled")
	}
}

func TestLoadConfig_DefaultDirsNotShared(t *testing.T) {
	path := writeConfig(t, "fontdirs = /opt/fonts\n")
	before := len(defaultConfig().FontDirs)
	loadConfigFrom(path, "")
	if after := len(defaultConfig().FontDirs); after != before {
		t.Errorf("expected defaults untouched, got %d dirs, want %d", after, before)
	}
}

func TestGetOutputPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := &Config{OutputDirectory: dir}

	got, err := cfg.GetOutputPath("a.png")
	if err != nil {
		t.Fatalf("GetOutputPath: %v", err)
	}
	if got != filepath.Join(dir, "a.png") {
		t.Errorf("expected %s, got %s", filepath.Join(dir, "a.png"), got)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected output directory created: %v", err)
	}

	explicit := filepath.Join(t.TempDir(), "b.png")
	if got, _ := cfg.GetOutputPath(explicit); got != explicit {
		t.Errorf("expected explicit path kept, got %s", got)
	}

	if got, _ := (&Config{}).GetOutputPath("c.png"); got != "c.png" {
		t.Errorf("expected bare name without output directory, got %s", got)
	}
}
