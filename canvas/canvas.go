// Package canvas paints labeled boxes and arrows onto a raster surface.
//
// Every draw call paints straight into the pixel buffer; there is no scene
// kept behind it, so later calls cover earlier ones.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// ErrInputNotFound is returned by Load when the base image does not exist.
var ErrInputNotFound = errors.New("input not found")

type Canvas struct {
	dc         *gg.Context
	background color.Color
	fonts      *FontSet
}

// New returns a width×height canvas filled with bg. A nil fonts uses the
// bitmap face.
func New(width, height int, bg color.Color, fonts *FontSet) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return newCanvas(dc, bg, fonts)
}

// Load decodes the PNG at path into a new canvas. bg is used for label
// patches drawn on top of it.
func Load(path string, bg color.Color, fonts *FontSet) (*Canvas, error) {
	img, err := gg.LoadPNG(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return FromImage(img, bg, fonts), nil
}

// FromImage copies img into a new canvas; img itself is never drawn on.
func FromImage(img image.Image, bg color.Color, fonts *FontSet) *Canvas {
	return newCanvas(gg.NewContextForImage(img), bg, fonts)
}

func newCanvas(dc *gg.Context, bg color.Color, fonts *FontSet) *Canvas {
	if fonts == nil {
		fonts = BitmapFonts()
	}
	dc.SetLineCap(gg.LineCapRound)
	return &Canvas{dc: dc, background: bg, fonts: fonts}
}

func (c *Canvas) Width() int              { return c.dc.Width() }
func (c *Canvas) Height() int             { return c.dc.Height() }
func (c *Canvas) Background() color.Color { return c.background }
func (c *Canvas) Fonts() *FontSet         { return c.fonts }

// Image returns the live pixel buffer.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	return FromImage(c.dc.Image(), c.background, c.fonts)
}

func (c *Canvas) Encode(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Save writes the canvas as PNG to path. The image is written to a temporary
// file next to path and renamed into place, so path never holds a partial
// render.
func (c *Canvas) Save(path string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if err := c.writeTo(tmp); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (c *Canvas) writeTo(f *os.File) error {
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
