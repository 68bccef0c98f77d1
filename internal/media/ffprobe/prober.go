package ffprobe

import (
	"context"
	"fmt"
	"time"

	"subbox/internal/geometry"
)

// Prober resolves the pixel canvas of a video file.
type Prober struct {
	Binary  string
	Timeout time.Duration
}

// ProbeCanvas returns the dimensions of the video's first picture stream.
func (p Prober) ProbeCanvas(ctx context.Context, path string) (geometry.Canvas, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	result, err := Inspect(ctx, p.Binary, path)
	if err != nil {
		return geometry.Canvas{}, err
	}
	width, height, err := result.VideoDimensions()
	if err != nil {
		return geometry.Canvas{}, fmt.Errorf("probe %s: %w", path, err)
	}
	return geometry.Canvas{Width: width, Height: height}, nil
}
