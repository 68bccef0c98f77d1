package measure

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"subbox/internal/ass"
	"subbox/internal/geometry"
)

// FontMeasurer measures text in process from a TrueType font file, using
// the font size declared by the document's Default style at 72 DPI so that
// one point equals one canvas pixel.
type FontMeasurer struct {
	FontPath string
}

func (m FontMeasurer) Measure(ctx context.Context, doc []byte, _ geometry.Canvas) ([]Metrics, error) {
	path := strings.TrimSpace(m.FontPath)
	if path == "" {
		return nil, ErrMeasurementUnavailable
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read font: %v", ErrMeasurementUnavailable, err)
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse font %s: %v", ErrMeasurementUnavailable, path, err)
	}
	input, err := ass.DialogueTexts(string(doc))
	if err != nil {
		return nil, fmt.Errorf("read measurement document: %w", err)
	}

	face := truetype.NewFace(parsed, &truetype.Options{Size: input.FontSize, DPI: 72})
	defer face.Close()
	lineHeight := toFloat(face.Metrics().Height)

	out := make([]Metrics, len(input.Texts))
	for i, text := range input.Texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines := strings.Split(visibleText(text), `\N`)
		var width float64
		for _, line := range lines {
			width = max(width, toFloat(font.MeasureString(face, line)))
		}
		out[i] = Metrics{Width: width, Height: lineHeight * float64(len(lines))}
	}
	return out, nil
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
