// Package params derives the visual parameters a caller left unspecified:
// font family, font size, corner radius and bottom margin.
package params
