package convert

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"subbox/internal/ass"
	"subbox/internal/geometry"
	"subbox/internal/logging"
	"subbox/internal/measure"
	"subbox/internal/params"
	"subbox/internal/script"
	"subbox/internal/subtitle"
)

// CanvasProber resolves the pixel dimensions of a video.
type CanvasProber interface {
	ProbeCanvas(ctx context.Context, path string) (geometry.Canvas, error)
}

// Converter holds the collaborators shared by every conversion.
type Converter struct {
	Prober   CanvasProber
	Provider measure.Provider
	Logger   *slog.Logger
	Platform params.Platform
	Workers  int
}

// Request describes one conversion.
type Request struct {
	Input     []byte
	Format    subtitle.Format
	VideoPath string
	Title     string
	Options   params.Options

	// GapThreshold defaults to subtitle.DefaultGapThreshold when nil. Zero
	// disables timing normalization.
	GapThreshold *float64
}

// Result is the rendered document plus what was decided along the way.
type Result struct {
	Document string
	Canvas   geometry.Canvas
	Probed   bool
	Script   script.Script
	Font     string
	FontSize int
	Encoding subtitle.Encoding
	Stats    measure.Stats
	Adjusted int
	Cues     int
}

// Convert renders req into an ASS document.
func (c *Converter) Convert(ctx context.Context, req Request) (Result, error) {
	logger := logging.NewComponentLogger(c.Logger, "convert")

	cues, enc, err := subtitle.Load(req.Input, req.Format, logger)
	if err != nil {
		return Result{}, err
	}

	canvas, probed := c.canvas(ctx, logger, req.VideoPath)
	gap := subtitle.DefaultGapThreshold
	if req.GapThreshold != nil {
		gap = *req.GapThreshold
	}
	adjusted := subtitle.NormalizeTiming(cues, gap)
	texts := subtitle.Texts(cues)
	predominant := script.Predominant(texts)
	platform := c.Platform
	if platform == "" {
		platform = params.PlatformFor(runtime.GOOS)
	}
	cfg := params.Resolve(req.Options, canvas, probed, predominant, platform)

	logger.Info("conversion parameters resolved",
		logging.Int("cues", len(cues)),
		logging.Int("timing_adjusted", adjusted),
		logging.Float64("gap_threshold", gap),
		logging.String("canvas", canvas.String()),
		logging.Bool("canvas_probed", probed),
		logging.String("script", string(predominant)),
		logging.String("font", cfg.FontName),
		logging.Int("font_size", cfg.FontSize),
		logging.Int("margin_bottom", cfg.MarginBottom),
	)

	provider := c.Provider
	if provider.Logger == nil {
		provider.Logger = c.Logger
	}
	metrics, stats := provider.Provide(ctx, texts, cfg, canvas)

	events := c.layout(cues, metrics, cfg, canvas)
	doc := ass.Build(ass.Header{
		Title:  req.Title,
		Canvas: canvas,
		Script: predominant,
		Config: cfg,
	}, events)

	return Result{
		Document: doc,
		Canvas:   canvas,
		Probed:   probed,
		Script:   predominant,
		Font:     cfg.FontName,
		FontSize: cfg.FontSize,
		Encoding: enc,
		Stats:    stats,
		Adjusted: adjusted,
		Cues:     len(cues),
	}, nil
}

func (c *Converter) canvas(ctx context.Context, logger *slog.Logger, videoPath string) (geometry.Canvas, bool) {
	videoPath = strings.TrimSpace(videoPath)
	if videoPath == "" || c.Prober == nil {
		return geometry.DefaultCanvas, false
	}
	canvas, err := c.Prober.ProbeCanvas(ctx, videoPath)
	if err == nil && !canvas.Valid() {
		err = fmt.Errorf("invalid canvas %s", canvas)
	}
	if err != nil {
		logging.WarnWithContext(logger, "video canvas probe failed", "canvas_probe_failed",
			logging.String("video", videoPath),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that ffprobe is installed and the video is readable"),
			logging.String(logging.FieldImpact, "layout uses the default 1920x1080 canvas"),
		)
		return geometry.DefaultCanvas, false
	}
	return canvas, true
}

// layout computes one event per cue. Cues are independent, so the work is
// spread over a bounded pool and written back by index.
func (c *Converter) layout(cues []subtitle.Cue, metrics []measure.Metrics, cfg ass.RenderConfig, canvas geometry.Canvas) []ass.Event {
	events := make([]ass.Event, len(cues))
	workers := min(max(c.Workers, 1), max(len(cues), 1))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				events[i] = cueEvent(cues[i], metrics[i], cfg, canvas)
			}
		}()
	}
	for i := range cues {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return events
}

func cueEvent(cue subtitle.Cue, m measure.Metrics, cfg ass.RenderConfig, canvas geometry.Canvas) ass.Event {
	width, height := geometry.BoxSize(m.Width, m.Height, cfg.Padding, cfg.WidthBounds, canvas)
	radius := params.ResolveRadius(cfg.RadiusRequest, width/2, height/2, canvas)
	return ass.Event{
		Start: cue.Start,
		End:   cue.End,
		Text:  cue.Text,
		Box:   geometry.NewBox(width, height, radius),
		RTL:   script.IsRTL(script.Detect(cue.Text)),
	}
}
