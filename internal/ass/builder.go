package ass

import (
	"fmt"
	"strings"

	"subbox/internal/geometry"
	"subbox/internal/script"
)

// RTLMark is the right-to-left embedding character prefixed to RTL cue text.
const RTLMark = "\u202B"

const (
	stylesFormat = "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding"
	eventsFormat = "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"
)

// Header carries the document-wide values.
type Header struct {
	Title  string
	Canvas geometry.Canvas
	Script script.Script
	Config RenderConfig
}

// Event is one cue ready for rendering.
type Event struct {
	Start float64
	End   float64
	Text  string
	Box   geometry.Box
	RTL   bool
}

// Build renders the complete document.
func Build(h Header, events []Event) string {
	var b strings.Builder
	writeScriptInfo(&b, h)
	b.WriteByte('\n')
	writeStyles(&b, h.Config)
	b.WriteByte('\n')
	b.WriteString("[Events]\n")
	b.WriteString(eventsFormat)
	b.WriteByte('\n')
	x, y := anchor(h.Canvas, h.Config.MarginBottom)
	for _, ev := range events {
		b.WriteString(BoxLine(ev, h.Config, x, y))
		b.WriteByte('\n')
		b.WriteString(TextLine(ev, x, y))
		b.WriteByte('\n')
	}
	return b.String()
}

// BoxLine renders the layer 0 background event of ev.
func BoxLine(ev Event, cfg RenderConfig, x, y string) string {
	tags := fmt.Sprintf(`{\an7\pos(%s,%s)\bord0\shad0\1c%s\1a%s\p1}`,
		x, y, OverrideColor(cfg.BoxColor), OverrideAlpha(cfg.BoxAlpha))
	return dialogue(0, ev.Start, ev.End, StyleBox, tags+geometry.RoundedRectPath(ev.Box)+`{\p0}`)
}

// TextLine renders the layer 1 text event of ev.
func TextLine(ev Event, x, y string) string {
	text := ev.Text
	if ev.RTL {
		text = RTLMark + text
	}
	tags := fmt.Sprintf(`{\an5\pos(%s,%s)\bord0\shad0}`, x, y)
	return dialogue(1, ev.Start, ev.End, StyleDefault, tags+text)
}

func writeScriptInfo(b *strings.Builder, h Header) {
	title := strings.TrimSpace(h.Title)
	if title == "" {
		title = "subbox"
	}
	b.WriteString("[Script Info]\n")
	fmt.Fprintf(b, "Title: %s\n", title)
	b.WriteString("ScriptType: v4.00+\n")
	fmt.Fprintf(b, "PlayResX: %d\n", h.Canvas.Width)
	fmt.Fprintf(b, "PlayResY: %d\n", h.Canvas.Height)
	b.WriteString("WrapStyle: 2\n")
	b.WriteString("ScaledBorderAndShadow: yes\n")
	b.WriteString("YCbCr Matrix: None\n")
	fmt.Fprintf(b, "Language: %s\n", h.Script.LanguageTag())
}

func writeStyles(b *strings.Builder, cfg RenderConfig) {
	b.WriteString("[V4+ Styles]\n")
	b.WriteString(stylesFormat)
	b.WriteByte('\n')
	b.WriteString(styleLine(StyleDefault, cfg.FontName, cfg.FontSize, StyleColor(cfg.TextColor, 0), 2, 10, cfg.MarginBottom))
	b.WriteByte('\n')
	b.WriteString(styleLine(StyleBox, cfg.FontName, cfg.FontSize/2, StyleColor(cfg.BoxColor, cfg.BoxAlpha), 7, 0, 0))
	b.WriteByte('\n')
}

func styleLine(name, font string, size int, primary string, alignment, marginH, marginV int) string {
	return fmt.Sprintf("Style: %s,%s,%d,%s,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,0,0,%d,%d,%d,%d,1",
		name, font, size, primary, alignment, marginH, marginH, marginV)
}

func dialogue(layer int, start, end float64, style, text string) string {
	return fmt.Sprintf("Dialogue: %d,%s,%s,%s,,0,0,0,,%s", layer, FormatTimestamp(start), FormatTimestamp(end), style, text)
}

func anchor(canvas geometry.Canvas, marginBottom int) (string, string) {
	x := geometry.FormatNumber(float64(canvas.Width) / 2)
	y := geometry.FormatNumber(float64(canvas.Height - marginBottom))
	return x, y
}
