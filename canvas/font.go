package canvas

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// EmbeddedFont as the regular font name selects the Go fonts compiled into
// the binary.
const EmbeddedFont = "go"

// Point sizes, in pixels at 72 DPI.
const (
	SizeSmall   = 14
	SizeMedium  = 18
	SizeLarge   = 24
	SizeTitle   = 32
	SizeBold    = 18
	SizeHeading = 22
)

// DefaultFontDirs are searched when no directories are configured.
var DefaultFontDirs = []string{
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/TTF",
	"/Library/Fonts",
}

type FontOptions struct {
	Dirs    []string
	Regular string
	Bold    string
}

func DefaultFontOptions() FontOptions {
	return FontOptions{
		Dirs:    DefaultFontDirs,
		Regular: "DejaVuSans.ttf",
		Bold:    "DejaVuSans-Bold.ttf",
	}
}

// FontSet holds the faces used by boxes, arrows and headings.
type FontSet struct {
	Small   font.Face
	Medium  font.Face
	Large   font.Face
	Title   font.Face
	Bold    font.Face
	Heading font.Face

	source string
	misses []error
}

// Fallback reports whether the bitmap face is in use.
func (fs *FontSet) Fallback() bool {
	return fs.source == ""
}

// Source is the file the regular face came from, or "" for the bitmap face.
func (fs *FontSet) Source() string {
	return fs.source
}

// Misses lists why each configured font could not be used.
func (fs *FontSet) Misses() []error {
	return fs.misses
}

// BitmapFonts uses basicfont at every size. It cannot fail.
func BitmapFonts() *FontSet {
	f := basicfont.Face7x13
	return &FontSet{Small: f, Medium: f, Large: f, Title: f, Bold: f, Heading: f}
}

// ResolveFonts loads the configured scalable fonts, falling back to the
// bitmap face for whatever cannot be found or parsed.
func ResolveFonts(opts FontOptions) *FontSet {
	fs := BitmapFonts()
	if opts.Regular == EmbeddedFont {
		opts.Regular, opts.Bold = "go-regular", "go-bold"
	}

	regular, src, err := findFont(opts.Regular, opts.Dirs)
	if err != nil {
		fs.misses = append(fs.misses, err)
	}
	bold, _, err := findFont(opts.Bold, opts.Dirs)
	if err != nil {
		fs.misses = append(fs.misses, err)
		bold = regular
	}

	if regular != nil {
		fs.source = src
		fs.Small = newFace(regular, SizeSmall)
		fs.Medium = newFace(regular, SizeMedium)
		fs.Large = newFace(regular, SizeLarge)
	}
	if bold != nil {
		fs.Title = newFace(bold, SizeTitle)
		fs.Bold = newFace(bold, SizeBold)
		fs.Heading = newFace(bold, SizeHeading)
	}
	return fs
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func findFont(name string, dirs []string) (*truetype.Font, string, error) {
	if name == "" {
		return nil, "", fmt.Errorf("no font configured")
	}
	if embedded, ok := embeddedFonts[name]; ok {
		f, err := truetype.Parse(embedded)
		if err != nil {
			return nil, "", fmt.Errorf("embedded font %s: %w", name, err)
		}
		return f, name, nil
	}

	candidates := []string{name}
	if !filepath.IsAbs(name) {
		candidates = candidates[:0]
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	var lastErr error
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			lastErr = fmt.Errorf("parse %s: %w", path, err)
			continue
		}
		return f, path, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no search directories")
	}
	return nil, "", fmt.Errorf("font %s not found: %w", name, lastErr)
}

var embeddedFonts = map[string][]byte{
	"go-regular": goregular.TTF,
	"go-bold":    gobold.TTF,
}
