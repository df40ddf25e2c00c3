package canvas

import (
	"image/color"

	"golang.org/x/image/font"
)

// Anchors for DrawText. Horizontally 0 is the left edge; vertically 0 puts
// the baseline on y and 1 puts the top of the line there.
const (
	AnchorLeft     = 0.0
	AnchorMiddle   = 0.5
	AnchorRight    = 1.0
	AnchorBaseline = 0.0
	AnchorTop      = 1.0
)

// DrawText paints s anchored at (x, y). A nil face uses the small face.
func (c *Canvas) DrawText(s string, x, y float64, face font.Face, col color.Color, ax, ay float64) {
	if s == "" {
		return
	}
	if face == nil {
		face = c.fonts.Small
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

func (c *Canvas) text(s string, x, y float64, face font.Face, col color.Color) {
	c.DrawText(s, x, y, face, col, AnchorMiddle, AnchorMiddle)
}

// DrawSwatch paints the rectangle (x1, y1)-(x2, y2) with a one pixel outline.
func (c *Canvas) DrawSwatch(x1, y1, x2, y2 float64, fill, outline color.Color) {
	dc := c.dc
	dc.DrawRectangle(x1, y1, x2-x1, y2-y1)
	dc.SetColor(fill)
	dc.Fill()
	dc.DrawRectangle(x1+0.5, y1+0.5, x2-x1-1, y2-y1-1)
	dc.SetLineWidth(1)
	dc.SetColor(outline)
	dc.Stroke()
}

func (c *Canvas) DrawDisc(cx, cy, r float64, fill color.Color) {
	if r <= 0 {
		return
	}
	c.dc.DrawCircle(cx, cy, r)
	c.dc.SetColor(fill)
	c.dc.Fill()
}
