package params

import (
	"math"

	"subbox/internal/ass"
	"subbox/internal/geometry"
	"subbox/internal/script"
)

const (
	defaultFontSize     = 48
	fontSizeDivisor     = 20
	radiusReference     = 1080.0
	radiusBase          = 10.0
	radiusShareOfSide   = 4.0
	marginFraction      = 0.05
	marginFloor         = 60
	marginCeilingFactor = 0.1
)

// Options holds caller-supplied overrides. Nil pointers and empty strings
// mean "derive it".
type Options struct {
	Font         string
	FontSize     *int
	TextColor    string
	BoxColor     string
	BoxAlpha     int
	Padding      geometry.Padding
	Radius       *float64
	WidthBounds  geometry.WidthBounds
	MarginBottom *int
}

// Resolve builds the fully populated render configuration for one document.
func Resolve(opts Options, canvas geometry.Canvas, probed bool, predominant script.Script, platform Platform) ass.RenderConfig {
	return ass.RenderConfig{
		FontName:      ResolveFont(opts.Font, predominant, platform),
		FontSize:      ResolveFontSize(opts.FontSize, canvas, probed),
		TextColor:     opts.TextColor,
		BoxColor:      opts.BoxColor,
		BoxAlpha:      opts.BoxAlpha,
		Padding:       opts.Padding,
		RadiusRequest: opts.Radius,
		WidthBounds:   opts.WidthBounds,
		MarginBottom:  ResolveMarginBottom(opts.MarginBottom, canvas),
	}
}

// ResolveFontSize returns the override when set. Otherwise a probed canvas
// scales the size to a twentieth of its height and the fallback canvas uses 48.
func ResolveFontSize(override *int, canvas geometry.Canvas, probed bool) int {
	if override != nil && *override > 0 {
		return *override
	}
	if probed && canvas.Height > 0 {
		return max(1, canvas.Height/fontSizeDivisor)
	}
	return defaultFontSize
}

// ResolveRadius returns the effective corner radius for one box. A requested
// radius is clamped; without a request the radius scales with the canvas and
// never exceeds a quarter of the box's smaller half extent.
func ResolveRadius(request *float64, halfWidth, halfHeight float64, canvas geometry.Canvas) float64 {
	if request != nil {
		return geometry.ClampRadius(*request, halfWidth, halfHeight)
	}
	videoScale := float64(canvas.MinSide()) / radiusReference
	base := min(radiusBase*videoScale, min(halfWidth, halfHeight)/radiusShareOfSide)
	return geometry.ClampRadius(base, halfWidth, halfHeight)
}

// ResolveMarginBottom returns the override when set, otherwise 5% of the
// canvas height bounded to [60, 10% of the height]. On canvases too short
// for that range the upper bound wins.
func ResolveMarginBottom(override *int, canvas geometry.Canvas) int {
	if override != nil {
		return *override
	}
	h := float64(canvas.Height)
	base := int(math.Floor(h * marginFraction))
	ceiling := int(math.Floor(h * marginCeilingFactor))
	return min(max(base, marginFloor), ceiling)
}
