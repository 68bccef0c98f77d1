// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Inspect runs ffprobe and decodes its streams and format sections. Prober
// narrows that to what subtitle rendering needs: the pixel dimensions of the
// first video stream, used as the document canvas.
package ffprobe
