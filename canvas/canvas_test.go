package canvas

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var (
	testBG     = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	testFG     = color.RGBA{0xea, 0xea, 0xea, 0xff}
	testAccent = color.RGBA{0x00, 0xd4, 0xff, 0xff}
)

func pixel(c *Canvas, x, y int) color.RGBA {
	return color.RGBAModel.Convert(c.Image().At(x, y)).(color.RGBA)
}

func TestNew_FillsBackground(t *testing.T) {
	c := New(64, 32, testBG, nil)
	if c.Width() != 64 || c.Height() != 32 {
		t.Fatalf("expected 64x32, got %dx%d", c.Width(), c.Height())
	}
	for _, p := range [][2]int{{0, 0}, {63, 31}, {32, 16}} {
		if got := pixel(c, p[0], p[1]); got != testBG {
			t.Errorf("pixel %v: expected background %v, got %v", p, testBG, got)
		}
	}
	if c.Fonts() == nil || !c.Fonts().Fallback() {
		t.Errorf("expected bitmap fonts for a nil FontSet")
	}
}

func TestSave_RoundTripDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	c := New(1920, 1080, testBG, nil)
	c.DrawBox(Box{X: 10, Y: 10, Width: 100, Height: 50, Fill: testAccent, Border: testFG, Title: "x"})
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestSave_UnwritableLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "out.png")
	c := New(10, 10, testBG, nil)
	if err := c.Save(path); err == nil {
		t.Fatalf("expected error saving into a missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file at %s, stat returned %v", path, err)
	}
}

func TestSave_FailedRenameRemovesTemp(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "keep"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(10, 10, testBG, nil)
	if err := c.Save(target); err == nil {
		t.Fatalf("expected error renaming over a directory")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temporary file %s left behind", e.Name())
		}
	}
}

func TestLoad_MissingInput(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"), testBG, nil)
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("definitely not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path, testBG, nil)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if errors.Is(err, ErrInputNotFound) {
		t.Errorf("decode failure reported as missing input: %v", err)
	}
}

func TestLoad_DrawsIntoNewBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.png")
	if err := New(200, 100, testBG, nil).Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	c, err := Load(path, testBG, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Width() != 200 || c.Height() != 100 {
		t.Fatalf("expected 200x100, got %dx%d", c.Width(), c.Height())
	}
	c.DrawBox(Box{X: 0, Y: 0, Width: 200, Height: 100, Fill: testAccent, Border: testAccent})

	again, err := Load(path, testBG, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := pixel(again, 100, 50); got != testBG {
		t.Errorf("base image changed on disk: expected %v, got %v", testBG, got)
	}
	if got := pixel(c, 100, 50); got != testAccent {
		t.Errorf("expected drawn fill %v, got %v", testAccent, got)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	c := New(50, 50, testBG, nil)
	d := c.Clone()
	d.DrawDisc(25, 25, 10, testAccent)
	if got := pixel(c, 25, 25); got != testBG {
		t.Errorf("original modified by clone: got %v", got)
	}
	if got := pixel(d, 25, 25); got != testAccent {
		t.Errorf("expected disc on clone, got %v", got)
	}
}
