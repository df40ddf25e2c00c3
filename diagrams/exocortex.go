package diagrams

import (
	"image/color"

	"exodiag/canvas"
)

// layered draws rows of boxes with the stacked text layout.
type layered struct {
	c *canvas.Canvas
}

func (l layered) box(x, y, w, h float64, fill color.Color, title, sub, icon string) {
	l.c.DrawBox(canvas.Box{
		X: x, Y: y, Width: w, Height: h,
		Fill: fill, Border: FG,
		Title: title, Subtitle: sub, Icon: icon,
		Radius: canvas.DefaultRadius,
	})
}

func (l layered) arrow(x1, y1, x2, y2 float64, col color.Color, width float64) {
	l.c.DrawArrow(canvas.Arrow{
		From: canvas.Pt(x1, y1), To: canvas.Pt(x2, y2),
		Color: col, Width: width,
	})
}

func (l layered) swatch(x, y float64, fill color.Color, label string, labelX float64) {
	l.c.DrawSwatch(x, y, x+30, y+10, fill, FG)
	l.c.DrawText(label, labelX, y+5, l.c.Fonts().Small, FG, canvas.AnchorLeft, canvas.AnchorTop)
}

// Exocortex renders the layered system diagram: sources, pipelines, core,
// SSOT and its tables, outputs and monitoring, top to bottom.
func Exocortex(fonts *canvas.FontSet) *canvas.Canvas {
	c := canvas.New(Width, Height, BG, fonts)
	l := layered{c: c}

	c.DrawText("EXOCORTEX SYSTEM ARCHITECTURE", Width/2, 50, c.Fonts().Title, FG, canvas.AnchorMiddle, canvas.AnchorMiddle)

	const (
		layerX = Width/2 - 150
		layerW = 300
		layerH = 80

		ingestionY = 120
		processY   = 240
		coreY      = 360
		storageY   = 480
		tablesY    = 600
		outputY    = 720
		monitorY   = 840
		legendY    = 980
	)

	l.box(layerX-300, ingestionY, layerW, layerH, Purple, "Telegram", "Voice + Commands", "📱")
	l.box(layerX+300, ingestionY, layerW, layerH, Purple, "GitHub", "Commits + PRs", "💻")
	l.box(layerX, ingestionY, layerW, layerH, Purple, "RSS Feed", "heronfeed", "📡")

	l.box(layerX-400, processY, layerW, layerH, Orange, "Audio Pipeline", "Whisper", "🎤")
	l.box(layerX-100, processY, layerW, layerH, Orange, "CLI Router", "46 Tools", "🛠️")
	l.box(layerX+200, processY, layerW, layerH, Orange, "Embeddings", "Chunking + Vectors", "🧠")

	l.box(layerX, coreY, layerW, layerH, Blue, "heronclient", "Bot + WebSocket", "🤖")
	l.box(layerX+300, coreY, layerW, layerH, Blue, "n8n", "Workflows", "⚙️")

	l.box(layerX, storageY, layerW, layerH, Green, "PostgreSQL", "SSOT + pgvector", "💾")

	tables := []struct{ name, sub string }{
		{"items", "tasks/notes"},
		{"documents", "content"},
		{"events", "activity"},
		{"embeddings", "vectors"},
		{"capsules", "context"},
	}
	for i, tb := range tables {
		l.box(layerX-400+float64(i)*150, tablesY, 120, 60, Green, tb.name, tb.sub, "")
	}

	l.box(layerX-300, outputY, layerW, layerH, Yellow, "Telegram", "Replies + Alerts", "💬")
	l.box(layerX, outputY, layerW, layerH, Yellow, "Dashboard", "Monitoring", "📊")
	l.box(layerX+300, outputY, layerW, layerH, Yellow, "Daily Digest", "Reports", "📋")

	l.box(layerX, monitorY, layerW, layerH, Pink, "Monitoring", "Health Checks", "⚠️")
	l.box(layerX+300, monitorY, layerW, layerH, Pink, "CLI Registry", "Tool Catalog", "🔍")

	// ingestion -> processing
	l.arrow(layerX, ingestionY+80, layerX-100, processY-10, Purple, 2)
	l.arrow(layerX+300, ingestionY+80, layerX+200, processY-10, Purple, 2)
	l.arrow(layerX-300, ingestionY+80, layerX-400, processY-10, Purple, 2)

	// processing -> core
	l.arrow(layerX-100, processY+80, layerX, coreY-10, Orange, 2)
	l.arrow(layerX+200, processY+80, layerX, coreY-10, Orange, 2)
	l.arrow(layerX-400, processY+80, layerX, coreY-10, Orange, 2)

	// core -> SSOT
	l.arrow(layerX+300, coreY+80, layerX+300, storageY-10, Blue, 2)
	l.arrow(layerX, coreY+80, layerX, storageY-10, Blue, 2)

	// SSOT fans out to its tables
	for i := 0; i < len(tables); i++ {
		l.arrow(layerX, storageY+80, layerX+float64(i*150-300), tablesY-10, Green, 2)
	}

	// tables -> outputs
	l.arrow(layerX-400, tablesY+60, layerX-300, outputY-10, Green, 2)
	l.arrow(layerX-250, tablesY+60, layerX, outputY-10, Green, 2)
	l.arrow(layerX-100, tablesY+60, layerX+300, outputY-10, Green, 2)

	// monitoring cuts across every layer
	l.arrow(layerX-50, coreY+80, layerX, monitorY-10, Pink, 1)
	l.arrow(layerX+50, storageY+80, layerX, monitorY-10, Pink, 1)
	l.arrow(layerX+300, monitorY+80, layerX+300, processY-10, Pink, 1)

	legends := []struct {
		x              float64
		top, bottom    color.Color
		topLbl, botLbl string
		labelX         float64
	}{
		{50, Purple, Orange, "Ingestion", "Processing", 100},
		{280, Blue, Green, "Core", "Storage", 300},
		{510, Yellow, Pink, "Output", "Monitoring", 530},
	}
	for _, lg := range legends {
		l.box(lg.x, legendY, 200, 70, BG, "Legend", "", "")
		l.swatch(lg.x+10, legendY+20, lg.top, lg.topLbl, lg.labelX)
		l.swatch(lg.x+10, legendY+40, lg.bottom, lg.botLbl, lg.labelX)
	}

	c.DrawText("Exocortex: Unified Knowledge + Action System", Width/2, Height-20, c.Fonts().Small, FG, canvas.AnchorMiddle, canvas.AnchorMiddle)
	return c
}
