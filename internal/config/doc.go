// Package config loads, normalizes, and validates subbox configuration.
//
// Values come from a TOML file (by default ~/.config/subbox/config.toml, or
// subbox.toml in the working directory) layered over built-in defaults.
// Optional render values are pointers so "unset" stays distinguishable from
// zero; the converter derives those from the video canvas instead.
package config
