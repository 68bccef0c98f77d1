package ass

import (
	"fmt"
	"math"
	"strings"
)

// FormatTimestamp renders seconds as H:MM:SS.cc with an unpadded hour.
func FormatTimestamp(seconds float64) string {
	cs := int64(math.Round(seconds * 100))
	if cs < 0 {
		cs = 0
	}
	h := cs / 360000
	m := cs / 6000 % 60
	s := cs / 100 % 60
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs%100)
}

// StyleColor converts an RRGGBB hex colour plus alpha into the style field
// form &HAABBGGRR. Alpha 0 is opaque.
func StyleColor(hex string, alpha int) string {
	return fmt.Sprintf("&H%02X%s", clampByte(alpha), bgr(hex))
}

// OverrideColor converts RRGGBB into the override tag form &HBBGGRR&.
func OverrideColor(hex string) string {
	return "&H" + bgr(hex) + "&"
}

// OverrideAlpha renders alpha as &HAA&.
func OverrideAlpha(alpha int) string {
	return fmt.Sprintf("&H%02X&", clampByte(alpha))
}

func bgr(hex string) string {
	hex = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
	if len(hex) != 6 {
		return "000000"
	}
	return hex[4:6] + hex[2:4] + hex[0:2]
}

func clampByte(v int) int {
	return min(max(v, 0), 255)
}
