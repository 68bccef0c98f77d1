package subtitle

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/dimchansky/utfbom"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"subbox/internal/logging"
)

// Encoding names the decoder that produced the returned text.
type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingUTF16LE     Encoding = "utf-16le"
	EncodingUTF16BE     Encoding = "utf-16be"
	EncodingLatin1      Encoding = "latin-1"
	EncodingWindows1252 Encoding = "windows-1252"
)

type fallback struct {
	name    Encoding
	decoder encoding.Encoding
}

var fallbacks = []fallback{
	{name: EncodingLatin1, decoder: charmap.ISO8859_1},
	{name: EncodingWindows1252, decoder: charmap.Windows1252},
}

// Decode converts raw subtitle bytes to a UTF-8 string. A leading BOM is
// honoured and removed. Without a BOM, UTF-8 is tried first and each legacy
// fallback is logged as a warning.
func Decode(data []byte, logger *slog.Logger) (string, Encoding, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	reader, bom := utfbom.Skip(bytes.NewReader(data))
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", "", fmt.Errorf("read subtitle bytes: %w", err)
	}

	switch bom {
	case utfbom.UTF16LittleEndian:
		return decodeWith(body, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), EncodingUTF16LE)
	case utfbom.UTF16BigEndian:
		return decodeWith(body, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), EncodingUTF16BE)
	}

	if utf8.Valid(body) {
		return string(body), EncodingUTF8, nil
	}

	hint := charsetHint(body)
	previous := EncodingUTF8
	for _, fb := range fallbacks {
		logging.WarnWithContext(logger, "subtitle decode fallback", "subtitle_decode_fallback",
			logging.String("failed_encoding", string(previous)),
			logging.String("next_encoding", string(fb.name)),
			logging.String("charset_hint", hint),
			logging.String(logging.FieldErrorHint, "re-save the subtitle as UTF-8 to avoid guessing"),
			logging.String(logging.FieldImpact, "non-ASCII characters may render incorrectly"),
		)
		text, name, err := decodeWith(body, fb.decoder, fb.name)
		if err == nil {
			return text, name, nil
		}
		previous = fb.name
	}
	return "", "", ErrDecodingExhausted
}

func decodeWith(body []byte, enc encoding.Encoding, name Encoding) (string, Encoding, error) {
	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), name, nil
}

func charsetHint(body []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(body)
	if err != nil || result == nil {
		return "unknown"
	}
	return result.Charset
}
