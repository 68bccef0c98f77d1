package measure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"subbox/internal/ass"
	"subbox/internal/geometry"
	"subbox/internal/logging"
)

// Strategy selects how dimensions are obtained.
type Strategy string

const (
	StrategyExact     Strategy = "exact"
	StrategyHeuristic Strategy = "heuristic"
)

// ParseStrategy validates a strategy name. Empty selects exact.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(value))) {
	case "", StrategyExact:
		return StrategyExact, nil
	case StrategyHeuristic:
		return StrategyHeuristic, nil
	default:
		return "", fmt.Errorf("unknown measure strategy %q", value)
	}
}

// Stats counts how each cue's dimensions were obtained.
type Stats struct {
	Measured  int
	Estimated int
}

// Provider resolves text metrics for a cue list.
type Provider struct {
	Strategy Strategy
	Measurer Measurer
	Logger   *slog.Logger
}

// Provide returns one Metrics per text. Exact results are used where
// available; every other cue is estimated.
func (p Provider) Provide(ctx context.Context, texts []string, cfg ass.RenderConfig, canvas geometry.Canvas) ([]Metrics, Stats) {
	logger := p.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	var exact []Metrics
	if p.Strategy != StrategyHeuristic && len(texts) > 0 {
		exact = p.measure(ctx, logger, texts, cfg, canvas)
	}

	out := make([]Metrics, len(texts))
	var stats Stats
	for i, text := range texts {
		if i < len(exact) && exact[i].Valid() {
			out[i] = exact[i]
			stats.Measured++
			continue
		}
		out[i] = Heuristic(text, float64(cfg.FontSize), canvas.Width)
		stats.Estimated++
	}
	logger.Info("text dimensions resolved",
		logging.String("strategy", string(p.strategy())),
		logging.Int("measured", stats.Measured),
		logging.Int("estimated", stats.Estimated),
	)
	return out, stats
}

func (p Provider) measure(ctx context.Context, logger *slog.Logger, texts []string, cfg ass.RenderConfig, canvas geometry.Canvas) []Metrics {
	measurer := p.Measurer
	if measurer == nil {
		measurer = Unavailable{}
	}
	doc := ass.MeasureDocument(cfg, canvas, texts)
	results, err := measurer.Measure(ctx, []byte(doc), canvas)
	if err != nil {
		if errors.Is(err, ErrMeasurementUnavailable) {
			logger.Info("exact measurement unavailable; estimating dimensions", logging.Error(err))
			return nil
		}
		logging.WarnWithContext(logger, "exact measurement failed", "measure_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the measure command or font file"),
			logging.String(logging.FieldImpact, "box sizes fall back to estimated text dimensions"),
		)
		return nil
	}
	if len(results) != len(texts) {
		logging.WarnWithContext(logger, "measurer returned unexpected line count", "measure_count_mismatch",
			logging.Int("expected", len(texts)),
			logging.Int("received", len(results)),
			logging.String(logging.FieldImpact, "unmatched cues use estimated dimensions"),
		)
	}
	return results
}

func (p Provider) strategy() Strategy {
	if p.Strategy == "" {
		return StrategyExact
	}
	return p.Strategy
}
