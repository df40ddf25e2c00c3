package diagrams

import "exodiag/canvas"

const overlayHeadLength = 12

// Overlay adds the ae_path learning dashboard to a rendered Exocortex
// diagram. base is copied, never modified.
func Overlay(base *canvas.Canvas) *canvas.Canvas {
	c := base.Clone()

	const (
		boxX = 1300
		boxY = 720
		boxW = 200
		boxH = 60
	)
	c.DrawBox(canvas.Box{
		X:        boxX,
		Y:        boxY,
		Width:    boxW,
		Height:   boxH,
		Fill:     OverlayYellow,
		Border:   FG,
		Title:    "ae_path",
		Subtitle: "Learning PWA",
		Radius:   8,
		Layout:   canvas.LayoutCompact,
	})

	// SSOT -> ae_path
	c.DrawArrow(canvas.Arrow{
		From:       canvas.Pt(960, 560),
		To:         canvas.Pt(boxX+boxW/2, boxY),
		Color:      Cyan,
		Width:      2,
		HeadLength: overlayHeadLength,
	})
	// ae_path -> output
	c.DrawArrow(canvas.Arrow{
		From:       canvas.Pt(boxX+boxW/2, boxY+boxH),
		To:         canvas.Pt(boxX+boxW/2, boxY+100),
		Color:      OverlayYellow,
		Width:      2,
		HeadLength: overlayHeadLength,
	})

	c.DrawText("EXOCORTEX + ae_path (Learning Dashboard)", 960, 20, c.Fonts().Medium, FG, canvas.AnchorMiddle, canvas.AnchorMiddle)
	return c
}
