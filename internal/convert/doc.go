// Package convert drives one subtitle file through the rendering pipeline.
//
// A conversion decodes and parses the cues, closes small timing gaps, picks
// document defaults from the predominant script and the video canvas,
// resolves text dimensions, then lays out one rounded background box per cue
// and renders the ASS document. Only input errors fail a conversion: a
// missing probe or measurer degrades to the default canvas and estimated
// dimensions.
package convert
