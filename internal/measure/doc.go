// Package measure supplies per-cue text dimensions.
//
// Two strategies exist. The exact strategy hands a minimal ASS document to a
// Measurer (an external command or an in-process TrueType measurer) and
// reads back one width/height pair per dialogue line. The heuristic
// strategy estimates dimensions from character count and font size. The
// Provider always falls back to the heuristic for any cue the exact
// strategy could not measure, so it never fails.
package measure
