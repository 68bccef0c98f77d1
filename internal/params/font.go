package params

import (
	"strings"

	"subbox/internal/script"
)

// DefaultFont is the Latin font on every platform.
const DefaultFont = "Arial"

// Platform is the host platform family used for font selection.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformDarwin  Platform = "darwin"
	PlatformLinux   Platform = "linux"
)

// PlatformFor maps a GOOS value to a platform family. Unknown systems use
// the Linux font set.
func PlatformFor(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "darwin", "ios":
		return PlatformDarwin
	default:
		return PlatformLinux
	}
}

type fontKey struct {
	script   script.Script
	platform Platform
}

var fontTable = map[fontKey]string{
	{script.CJK, PlatformWindows}:    "Microsoft YaHei",
	{script.CJK, PlatformDarwin}:     "PingFang SC",
	{script.CJK, PlatformLinux}:      "Noto Sans CJK SC",
	{script.Arabic, PlatformWindows}: "Segoe UI",
	{script.Arabic, PlatformDarwin}:  "Geeza Pro",
	{script.Arabic, PlatformLinux}:   "Noto Sans Arabic",
	{script.Hebrew, PlatformWindows}: "Segoe UI",
	{script.Hebrew, PlatformDarwin}:  "Arial Hebrew",
	{script.Hebrew, PlatformLinux}:   "Noto Sans Hebrew",
	{script.Latin, PlatformWindows}:  DefaultFont,
	{script.Latin, PlatformDarwin}:   DefaultFont,
	{script.Latin, PlatformLinux}:    DefaultFont,
}

// ResolveFont returns override verbatim when set, otherwise the table font
// for the predominant script on the given platform.
func ResolveFont(override string, s script.Script, platform Platform) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	if name, ok := fontTable[fontKey{s, platform}]; ok {
		return name
	}
	return DefaultFont
}
