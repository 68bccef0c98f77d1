package subtitle

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/asticode/go-astisub"

	"subbox/internal/logging"
)

// Parse reads decoded subtitle text in the given format. Metadata blocks
// (WebVTT header, NOTE, STYLE, REGION) are dropped; every remaining cue keeps
// its original order and gets its line breaks rewritten to ForcedBreak.
// Inline markup is removed and literal braces are escaped so the text never
// opens an ASS override block.
func Parse(text string, format Format) ([]Cue, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	reader := strings.NewReader(stripMarkup(normalizeNewlines(text)))

	var (
		subs *astisub.Subtitles
		err  error
	)
	switch format {
	case FormatSRT:
		subs, err = astisub.ReadFromSRT(reader)
	case FormatVTT:
		subs, err = astisub.ReadFromWebVTT(reader)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}
	if subs == nil || len(subs.Items) == 0 {
		return nil, ErrEmptyInput
	}

	cues := make([]Cue, 0, len(subs.Items))
	for _, item := range subs.Items {
		if item == nil {
			continue
		}
		cue := Cue{
			Index: item.Index,
			Start: seconds(item.StartAt),
			End:   seconds(item.EndAt),
			Text:  joinLines(item.Lines),
		}
		if cue.Index <= 0 {
			cue.Index = len(cues) + 1
		}
		if cue.End < cue.Start {
			cue.End = cue.Start
		}
		cues = append(cues, cue)
	}
	if len(cues) == 0 {
		return nil, ErrEmptyInput
	}
	return cues, nil
}

// Load decodes and parses raw subtitle bytes. It also reports the encoding
// the input was read as.
func Load(data []byte, format Format, logger *slog.Logger) ([]Cue, Encoding, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	text, enc, err := Decode(data, logger)
	if err != nil {
		return nil, "", err
	}
	cues, err := Parse(text, format)
	if err != nil {
		return nil, enc, err
	}
	logger.Debug("subtitle parsed",
		logging.String("format", string(format)),
		logging.String("encoding", string(enc)),
		logging.Int("cues", len(cues)),
	)
	return cues, enc, nil
}

var (
	markupTag     = regexp.MustCompile(`</?[A-Za-z][^<>\n]*>|<[0-9][0-9:.]*>`)
	overrideBlock = regexp.MustCompile(`\{\\[^}\n]*\}`)
	braceEscaper  = strings.NewReplacer("{", `\{`, "}", `\}`)
)

// stripMarkup removes HTML-style tags and SSA override blocks from the
// source before it is tokenized, so a styled span stays part of its line.
func stripMarkup(text string) string {
	text = markupTag.ReplaceAllString(text, "")
	return overrideBlock.ReplaceAllString(text, "")
}

func joinLines(lines []astisub.Line) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		words := make([]string, 0, len(line.Items))
		for _, item := range line.Items {
			if t := strings.TrimSpace(item.Text); t != "" {
				words = append(words, t)
			}
		}
		if len(words) == 0 {
			continue
		}
		parts = append(parts, braceEscaper.Replace(strings.Join(words, " ")))
	}
	return strings.Join(parts, ForcedBreak)
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func seconds(d time.Duration) float64 {
	return d.Seconds()
}
