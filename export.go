package main

import (
	"fmt"

	"exodiag/canvas"
	"exodiag/diagrams"
	"exodiag/internal/logger"
)

type app struct {
	cfg *Config
	log *logger.Logger
}

// fonts resolves the configured faces. Anything missing is only worth a
// debug line: the bitmap face still renders.
func (a *app) fonts() *canvas.FontSet {
	log := a.log.WithPrefix("fonts")
	fs := canvas.ResolveFonts(a.cfg.FontOptions())
	for _, miss := range fs.Misses() {
		log.Debug("%v", miss)
	}
	if fs.Fallback() {
		log.Debug("using built-in bitmap font")
	} else {
		log.Debug("using %s", fs.Source())
	}
	return fs
}

func (a *app) render(draw func(*canvas.FontSet) *canvas.Canvas, filename string) error {
	return a.save(draw(a.fonts()), filename)
}

func (a *app) overlay(input, filename string) error {
	base, err := canvas.Load(input, diagrams.BG, a.fonts())
	if err != nil {
		return err
	}
	a.log.Debug("loaded base %s (%dx%d)", input, base.Width(), base.Height())
	return a.save(diagrams.Overlay(base), filename)
}

func (a *app) save(c *canvas.Canvas, filename string) error {
	path, err := a.cfg.GetOutputPath(filename)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if err := c.Save(path); err != nil {
		return err
	}
	a.log.Saved(path, c.Width(), c.Height())

	if a.cfg.CopyPath {
		if err := writeClipboardText(path); err != nil {
			a.log.Warn("copy path to clipboard: %v", err)
		}
	}
	return nil
}
