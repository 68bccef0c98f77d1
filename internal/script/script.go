// Package script classifies text by writing system to drive font and
// direction choices.
package script

import "strings"

// Script is a coarse writing-system family.
type Script string

const (
	CJK    Script = "cjk"
	Arabic Script = "arabic"
	Hebrew Script = "hebrew"
	Latin  Script = "latin"
)

type runeRange struct {
	lo, hi rune
}

type family struct {
	script Script
	ranges []runeRange
}

// priority is the detection order; the first family with any matching rune wins.
var priority = []family{
	{CJK, []runeRange{
		{0x3040, 0x30FF}, // hiragana, katakana
		{0x3400, 0x4DBF}, // extension A
		{0x4E00, 0x9FFF}, // unified ideographs
		{0xAC00, 0xD7AF}, // hangul syllables
		{0xF900, 0xFAFF}, // compatibility ideographs
	}},
	{Arabic, []runeRange{
		{0x0600, 0x06FF},
		{0x0750, 0x077F},
		{0x08A0, 0x08FF},
		{0xFB50, 0xFDFF},
		{0xFE70, 0xFEFF},
	}},
	{Hebrew, []runeRange{
		{0x0590, 0x05FF},
		{0xFB1D, 0xFB4F},
	}},
}

// Detect returns the first script family, in priority order, that has at
// least one character in text. Text with none of them is Latin.
func Detect(text string) Script {
	for _, fam := range priority {
		if fam.matches(text) {
			return fam.script
		}
	}
	return Latin
}

// Predominant classifies the concatenation of all texts.
func Predominant(texts []string) Script {
	return Detect(strings.Join(texts, " "))
}

// IsRTL reports whether the script is written right to left.
func IsRTL(s Script) bool {
	return s == Arabic || s == Hebrew
}

// LanguageTag returns the language tag written into document metadata.
func (s Script) LanguageTag() string {
	switch s {
	case CJK:
		return "zh"
	case Arabic:
		return "ar"
	case Hebrew:
		return "he"
	default:
		return "en"
	}
}

func (f family) matches(text string) bool {
	for _, r := range text {
		for _, rr := range f.ranges {
			if r >= rr.lo && r <= rr.hi {
				return true
			}
		}
	}
	return false
}
