// Package subtitle turns raw SRT and WebVTT bytes into a normalized cue list.
//
// Decoding tolerates legacy encodings (UTF-8 first, then Latin-1, then
// Windows-1252), parsing delegates cue syntax to go-astisub, and cue text is
// rewritten so every line break becomes the ASS forced break (\N). The
// package also owns the timing pass that closes sub-threshold gaps between
// adjacent cues.
package subtitle
