package canvas

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

const (
	DefaultHeadLength = 15
	DefaultArrowWidth = 2

	labelPatchWidth  = 60
	labelPatchHeight = 24
)

type Arrow struct {
	From, To Point
	Color    color.Color
	// Width of 0 means DefaultArrowWidth.
	Width float64
	Label string
	// Curved routes the stroke through CurveControl instead of straight.
	Curved bool
	Dashed bool
	// Shrink pulls both ends in along the line by this many pixels.
	Shrink float64
	// HeadLength of 0 means DefaultHeadLength.
	HeadLength float64
}

// DrawArrow paints the stroke, the two-wing head at To and, if set, the
// label on a background patch at the middle of the stroke.
func (c *Canvas) DrawArrow(a Arrow) {
	dc := c.dc
	from, to := shrink(a.From, a.To, a.Shrink)
	w := a.Width
	if w <= 0 {
		w = DefaultArrowWidth
	}
	l := a.HeadLength
	if l <= 0 {
		l = DefaultHeadLength
	}

	dc.SetColor(a.Color)
	dc.SetLineWidth(w)
	if a.Dashed {
		dc.SetLineCap(gg.LineCapButt)
		dc.SetDash(3.7*w, 1.6*w)
	}
	mid := midpoint(from, to)
	dc.MoveTo(from.X, from.Y)
	if a.Curved {
		ctrl := CurveControl(from, to)
		dc.QuadraticTo(ctrl.X, ctrl.Y, to.X, to.Y)
		mid = quadAt(from, ctrl, to, 0.5)
	} else {
		dc.LineTo(to.X, to.Y)
	}
	dc.Stroke()
	dc.SetDash()
	dc.SetLineCap(gg.LineCapRound)

	if from != to {
		left, right := ArrowheadWings(to, Direction(from, to), l)
		dc.DrawLine(to.X, to.Y, left.X, left.Y)
		dc.Stroke()
		dc.DrawLine(to.X, to.Y, right.X, right.Y)
		dc.Stroke()
	}

	if a.Label != "" {
		dc.DrawRectangle(
			math.Round(mid.X)-labelPatchWidth/2, math.Round(mid.Y)-labelPatchHeight/2,
			labelPatchWidth, labelPatchHeight,
		)
		dc.SetColor(c.background)
		dc.Fill()
		c.text(a.Label, mid.X, mid.Y, c.fonts.Small, a.Color)
	}
}
