package subtitle

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ForcedBreak is the ASS escape for a hard line break inside one event.
const ForcedBreak = `\N`

var (
	// ErrEmptyInput reports that parsing produced no cues.
	ErrEmptyInput = errors.New("subtitle: no cues parsed")
	// ErrDecodingExhausted reports that no decoder in the fallback chain accepted the input.
	ErrDecodingExhausted = errors.New("subtitle: all encoding fallbacks failed")
	// ErrUnknownFormat reports an input format other than srt or vtt.
	ErrUnknownFormat = errors.New("subtitle: unknown input format")
)

// Format identifies the input syntax.
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// Cue is a single timed subtitle entry. Times are in seconds.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Duration returns End-Start.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// ParseFormat validates a declared format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), ".")) {
	case "srt":
		return FormatSRT, nil
	case "vtt", "webvtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, filepath.Base(path))
	}
	return ParseFormat(ext)
}

// Texts returns the text of every cue in order.
func Texts(cues []Cue) []string {
	out := make([]string, len(cues))
	for i, cue := range cues {
		out[i] = cue.Text
	}
	return out
}
