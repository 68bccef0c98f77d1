package ass

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"subbox/internal/geometry"
	"subbox/internal/script"
)

// MeasureInput is what an exact measurer needs back from a measurement document.
type MeasureInput struct {
	FontName string
	FontSize float64
	Texts    []string
}

// MeasureDocument renders the minimal document handed to an exact measurer:
// the resolved font and canvas, one Default dialogue line per text, no boxes.
func MeasureDocument(cfg RenderConfig, canvas geometry.Canvas, texts []string) string {
	var b strings.Builder
	writeScriptInfo(&b, Header{Title: "measure", Canvas: canvas, Script: script.Latin, Config: cfg})
	b.WriteByte('\n')
	b.WriteString("[V4+ Styles]\n")
	b.WriteString(stylesFormat)
	b.WriteByte('\n')
	b.WriteString(styleLine(StyleDefault, cfg.FontName, cfg.FontSize, StyleColor(cfg.TextColor, 0), 5, 0, 0))
	b.WriteString("\n\n[Events]\n")
	b.WriteString(eventsFormat)
	b.WriteByte('\n')
	for i, text := range texts {
		b.WriteString(dialogue(0, float64(i), float64(i+1), StyleDefault, text))
		b.WriteByte('\n')
	}
	return b.String()
}

// DialogueTexts reads the Default style font and every dialogue text back
// out of a document produced by MeasureDocument.
func DialogueTexts(doc string) (MeasureInput, error) {
	var in MeasureInput
	scanner := bufio.NewScanner(strings.NewReader(doc))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "Style: "+StyleDefault+","):
			fields := strings.Split(strings.TrimPrefix(line, "Style: "), ",")
			if len(fields) < 3 {
				return MeasureInput{}, fmt.Errorf("malformed style line %q", line)
			}
			size, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
			if err != nil {
				return MeasureInput{}, fmt.Errorf("style font size: %w", err)
			}
			in.FontName = strings.TrimSpace(fields[1])
			in.FontSize = size
		case strings.HasPrefix(line, "Dialogue:"):
			fields := strings.SplitN(strings.TrimPrefix(line, "Dialogue:"), ",", 10)
			if len(fields) != 10 {
				return MeasureInput{}, fmt.Errorf("malformed dialogue line %q", line)
			}
			in.Texts = append(in.Texts, fields[9])
		}
	}
	if err := scanner.Err(); err != nil {
		return MeasureInput{}, fmt.Errorf("scan document: %w", err)
	}
	if in.FontSize <= 0 {
		return MeasureInput{}, errors.New("document has no Default style")
	}
	return in, nil
}
