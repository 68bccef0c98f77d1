package ass

import "subbox/internal/geometry"

// Style names written to the document.
const (
	StyleDefault = "Default"
	StyleBox     = "Box-BG"
)

// RenderConfig is the fully resolved visual configuration of one document.
// RadiusRequest stays a request: the effective radius is clamped per box.
type RenderConfig struct {
	FontName      string
	FontSize      int
	TextColor     string
	BoxColor      string
	BoxAlpha      int
	Padding       geometry.Padding
	RadiusRequest *float64
	WidthBounds   geometry.WidthBounds
	MarginBottom  int
}
