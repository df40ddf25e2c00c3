package diagrams

import (
	"image/color"

	"exodiag/canvas"
)

// sections draws the plotting-style diagram. Its coordinates grow upward
// from the bottom edge and boxes are placed by their lower-left corner.
type sections struct {
	c *canvas.Canvas
}

// tile is one box in a row of the section diagram.
type tile struct {
	x         float64
	title     string
	fill      color.Color
	sub, icon string
}

func (s sections) y(v float64) float64 {
	return Height - v
}

func (s sections) box(x, y, w, h float64, title string, fill color.Color, sub, icon string) {
	s.c.DrawBox(canvas.Box{
		X:         x,
		Y:         s.y(y + h),
		Width:     w,
		Height:    h,
		Fill:      canvas.WithAlpha(fill, 0.9),
		Border:    canvas.WithAlpha(Text, 0.9),
		TextColor: Text,
		Title:     title,
		Subtitle:  sub,
		Icon:      icon,
		Radius:    canvas.DefaultRadius,
		Layout:    canvas.LayoutCentered,
	})
}

func (s sections) arrow(x1, y1, x2, y2 float64, col color.Color, width float64) {
	s.c.DrawArrow(canvas.Arrow{
		From: canvas.Pt(x1, s.y(y1)), To: canvas.Pt(x2, s.y(y2)),
		Color: canvas.WithAlpha(col, 0.7), Width: width,
		Shrink: 10,
	})
}

func (s sections) dashed(x1, y1, x2, y2 float64, col color.Color, width float64) {
	s.c.DrawArrow(canvas.Arrow{
		From: canvas.Pt(x1, s.y(y1)), To: canvas.Pt(x2, s.y(y2)),
		Color: canvas.WithAlpha(col, 0.5), Width: width,
		Shrink: 10, Dashed: true,
	})
}

func (s sections) heading(x, y float64, label string, alpha float64) {
	s.c.DrawText(label, x, s.y(y), s.c.Fonts().Heading, canvas.WithAlpha(Text, alpha), canvas.AnchorMiddle, canvas.AnchorMiddle)
}

// Architecture renders the section diagram: ingestion sources feeding the
// processing pipelines, core and storage layers, cross-cutting concerns and
// the output actions, with a router disc in the middle.
func Architecture(fonts *canvas.FontSet) *canvas.Canvas {
	c := canvas.New(Width, Height, BG, fonts)
	s := sections{c: c}

	c.DrawText("Exocortex System Architecture", 960, s.y(1040), c.Fonts().Title, Text, canvas.AnchorMiddle, canvas.AnchorMiddle)

	const (
		ingestionY = 950
		boxW       = 350
		boxH       = 80
	)
	ingestion := []tile{
		{80, "Telegram", Highlight, "Voice, Commands", "📱"},
		{460, "GitHub", Secondary, "Commits, PRs, Repos", "💻"},
		{840, "RSS", Success, "heronfeed", "📰"},
		{1220, "Webhooks", Warning, "External Events", "🔗"},
	}
	for _, in := range ingestion {
		s.box(in.x, ingestionY, boxW, boxH, in.title, in.fill, in.sub, in.icon)
		s.arrow(in.x+boxW/2, ingestionY-10, in.x+boxW/2, 850, Info, 3)
	}
	s.box(1550, ingestionY, 320, 80, "Audio Transcription", Info, "Whisper → Text", "🎙️")
	s.arrow(1710, ingestionY-10, 1710, 850, Info, 3)

	const processingY = 750
	processing := []tile{
		{200, "CLI Router", Secondary, "46 Tools - Smart Selection", "⚡"},
		{620, "Embeddings", Info, "Chunking + Vectors", "🧠"},
		{1040, "Sub-agent Spawning", Success, "Parallel Processing", "👥"},
		{1460, "Monitoring", Warning, "Health Checks", "🔍"},
	}
	for _, p := range processing {
		s.box(p.x, processingY, 380, 80, p.title, p.fill, p.sub, p.icon)
		s.dashed(p.x+190, processingY-10, p.x+190, 650, Text, 2)
	}

	const (
		coreX = 50
		coreY = 400
		coreW = 400
	)
	s.box(coreX, coreY+120, coreW, 60, "SSOT", Text, "PostgreSQL + pgvector", "🗄️")
	s.arrow(coreX+coreW/2, coreY+120-10, coreX+coreW/2, 650, Text, 2)
	s.box(coreX, coreY+50, coreW, 60, "heronclient", Highlight, "Telegram Bot", "🤖")
	s.box(coreX, coreY-20, coreW, 60, "n8n", Secondary, "Workflows", "🔄")
	s.arrow(coreX+coreW/2, coreY-30, coreX+coreW/2, 650, Text, 2)
	s.heading(coreX+coreW/2, coreY+155, "Core Layers", 1)

	const (
		storageX = 500
		storageY = 400
		storageW = 350
	)
	s.box(storageX, 480, storageW, 50, "core.items", Text, "Tasks/Notes", "📝")
	s.arrow(storageX+storageW/2, 480+50, storageX+storageW/2, 650, Text, 2)
	s.box(storageX, 420, storageW, 50, "core.documents", Text, "Content", "📄")
	s.box(storageX, 360, storageW, 50, "core.events", Text, "Activity", "📊")
	s.box(storageX, 300, storageW, 50, "core.embeddings", Text, "Vectors", "🔢")
	s.heading(storageX+storageW/2, storageY+165, "Storage Layer", 1)

	const (
		crossX = 1200
		crossY = 350
		crossW = 400
	)
	s.box(crossX, crossY+120, crossW, 60, "Monitoring", Warning, "Health Checks & Alerts", "📡")
	s.arrow(crossX+crossW/2, crossY+120+80, crossX+crossW/2, 650, Text, 2)
	s.box(crossX, crossY+40, crossW, 60, "CLI Router", Secondary, "Smart Tool Selection", "⚙️")
	s.box(crossX, crossY-40, crossW, 60, "Sub-agent Spawning", Success, "Parallel Processing", "👥")
	s.heading(crossX+crossW/2, crossY+175, "Cross-Cutting Concerns", 1)

	const (
		outputY = 100
		outputH = 80
		outputW = 350
	)
	outputs := []tile{
		{80, "Telegram Replies", Highlight, "Instant Responses", "📤"},
		{460, "Daily Digests", Success, "Summaries", "📅"},
		{840, "Monitoring Alerts", Warning, "Real-time Notifications", "🚨"},
		{1220, "Admin Dashboard", Secondary, "Control Panel", "🎛️"},
	}
	for _, o := range outputs {
		s.box(o.x, outputY, outputW, outputH, o.title, o.fill, o.sub, o.icon)
		s.arrow(o.x+outputW/2, 850, o.x+outputW/2, 180, Info, 3)
	}

	c.DrawDisc(960, s.y(650), 40, canvas.WithAlpha(Highlight, 0.8))
	c.DrawText("ROUTER", 960, s.y(650), c.Fonts().Small, Text, canvas.AnchorMiddle, canvas.AnchorMiddle)

	for _, sec := range []struct {
		x, y  float64
		label string
	}{
		{960, 900, "INGESTION SOURCES"},
		{960, 700, "PROCESSING PIPELINES"},
		{600, 500, "STORAGE"},
		{1650, 500, "CROSS-CUTTING"},
		{960, 150, "OUTPUT/ACTIONS"},
	} {
		s.heading(sec.x, sec.y, sec.label, 0.6)
	}
	return c
}
