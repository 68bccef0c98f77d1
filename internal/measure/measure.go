package measure

import (
	"context"
	"errors"

	"subbox/internal/geometry"
)

// ErrMeasurementUnavailable reports that no exact measurer is configured or
// the configured one could not run.
var ErrMeasurementUnavailable = errors.New("measure: exact measurement unavailable")

// Metrics is the rendered size of one cue in canvas pixels.
type Metrics struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether the metrics describe a measured, non-empty block.
func (m Metrics) Valid() bool {
	return m.Width > 0 && m.Height > 0
}

// Measurer returns one Metrics entry per dialogue line of doc, in document
// order. A zero entry means that line was not measured.
type Measurer interface {
	Measure(ctx context.Context, doc []byte, canvas geometry.Canvas) ([]Metrics, error)
}

// Unavailable is the Measurer used when no exact backend is configured.
type Unavailable struct{}

func (Unavailable) Measure(context.Context, []byte, geometry.Canvas) ([]Metrics, error) {
	return nil, ErrMeasurementUnavailable
}
