package canvas

import (
	"image/color"
	"math"
)

// Layout decides where a box places its title, subtitle and icon.
type Layout int

const (
	// LayoutStacked puts the title near the top, the subtitle under it and
	// the icon below the middle.
	LayoutStacked Layout = iota
	// LayoutCentered puts a bold title in the middle with the subtitle below
	// and the icon above it.
	LayoutCentered
	// LayoutCompact puts title and subtitle close to the top in the medium
	// face and ignores the icon.
	LayoutCompact
)

const (
	DefaultRadius      = 10
	DefaultBorderWidth = 2
)

type Box struct {
	X, Y          float64
	Width, Height float64
	Fill          color.Color
	Border        color.Color
	Title         string
	Subtitle      string
	Icon          string
	Radius        float64
	// BorderWidth of 0 means DefaultBorderWidth.
	BorderWidth float64
	Layout      Layout
	// TextColor of nil means Border.
	TextColor color.Color
}

// DrawBox paints b. Its border lies inside [X, X+Width) × [Y, Y+Height).
// Text is centered horizontally and never wrapped; anything outside the
// canvas is clipped.
func (c *Canvas) DrawBox(b Box) {
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	dc := c.dc
	r := clampRadius(b.Radius, b.Width, b.Height)
	bw := b.BorderWidth
	if bw <= 0 {
		bw = DefaultBorderWidth
	}

	c.roundedRect(b.X, b.Y, b.Width, b.Height, r)
	dc.SetColor(b.Fill)
	dc.Fill()

	inset := math.Min(bw/2, math.Min(b.Width, b.Height)/2)
	c.roundedRect(b.X+inset, b.Y+inset, b.Width-2*inset, b.Height-2*inset, math.Max(r-inset, 0))
	dc.SetLineWidth(bw)
	dc.SetColor(b.Border)
	dc.Stroke()

	fg := b.TextColor
	if fg == nil {
		fg = b.Border
	}
	cx := b.X + b.Width/2
	switch b.Layout {
	case LayoutCentered:
		cy := b.Y + b.Height/2
		c.text(b.Title, cx, cy, c.fonts.Bold, fg)
		c.text(b.Subtitle, cx, cy+20, c.fonts.Small, fg)
		c.text(b.Icon, cx, cy-20, c.fonts.Large, fg)
	case LayoutCompact:
		c.text(b.Title, cx, b.Y+12, c.fonts.Medium, fg)
		c.text(b.Subtitle, cx, b.Y+30, c.fonts.Medium, fg)
	default:
		c.text(b.Title, cx, b.Y+15, c.fonts.Medium, fg)
		c.text(b.Subtitle, cx, b.Y+35, c.fonts.Small, fg)
		c.text(b.Icon, cx, b.Y+b.Height/2+10, c.fonts.Large, fg)
	}
}

func (c *Canvas) roundedRect(x, y, w, h, r float64) {
	if r == 0 {
		c.dc.DrawRectangle(x, y, w, h)
		return
	}
	c.dc.DrawRoundedRectangle(x, y, w, h, r)
}

func clampRadius(r, w, h float64) float64 {
	limit := math.Min(w, h) / 2
	switch {
	case r < 0 || math.IsNaN(r):
		return 0
	case r > limit:
		return limit
	}
	return r
}
