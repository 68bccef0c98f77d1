package measure

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	charWidthFactor  = 0.6
	lineHeightFactor = 1.2
	maxWidthFraction = 0.9
)

var (
	overrideBlock = regexp.MustCompile(`\{[^}]*\}`)
	hideEscaped   = strings.NewReplacer(`\{`, "\uE000", `\}`, "\uE001")
	showEscaped   = strings.NewReplacer("\uE000", "{", "\uE001", "}")
)

// visibleText removes override blocks and turns escaped braces back into
// the literal characters the renderer draws.
func visibleText(text string) string {
	text = overrideBlock.ReplaceAllString(hideEscaped.Replace(text), "")
	return showEscaped.Replace(text)
}

// Heuristic estimates the rendered size of text. ASS override blocks are
// ignored and an escaped brace counts as one character. Forced breaks count
// as a space for width and as a new line for height.
func Heuristic(text string, fontSize float64, canvasWidth int) Metrics {
	lines := strings.Count(text, `\N`) + 1
	clean := visibleText(text)
	clean = strings.NewReplacer(`\N`, " ", `\n`, " ", `\h`, " ").Replace(clean)
	chars := float64(utf8.RuneCountInString(clean))
	return Metrics{
		Width:  min(chars*fontSize*charWidthFactor, float64(canvasWidth)*maxWidthFraction),
		Height: fontSize * lineHeightFactor * float64(lines),
	}
}
