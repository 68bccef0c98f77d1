package geometry

// Fixed cap on box width relative to the canvas, applied before the
// configurable ratio bounds.
const maxCanvasFill = 0.98

// Padding is the space between the text and the box edge, in pixels.
type Padding struct {
	X float64
	Y float64
}

// WidthBounds limits box width as fractions of canvas width. Min <= 0
// disables the lower bound.
type WidthBounds struct {
	Min float64
	Max float64
}

// Box is the half-extent form of a background box plus its corner radius.
type Box struct {
	HalfWidth  float64
	HalfHeight float64
	Radius     float64
}

// BoxSize computes the full box width and height for a text block.
func BoxSize(textWidth, textHeight float64, pad Padding, bounds WidthBounds, canvas Canvas) (float64, float64) {
	width := textWidth + 2*pad.X
	if pad.X == 0 {
		width = textWidth + 2
	}
	canvasWidth := float64(canvas.Width)
	width = min(width, canvasWidth*maxCanvasFill)
	if bounds.Min > 0 {
		width = max(width, canvasWidth*bounds.Min)
	}
	if bounds.Max > 0 {
		width = min(width, canvasWidth*bounds.Max)
	}
	height := textHeight + 2*pad.Y
	return width, height
}

// MaxRadius is the largest corner radius allowed for the given half extents.
func MaxRadius(halfWidth, halfHeight float64) float64 {
	return max(1, min(halfWidth, halfHeight)-1)
}

// ClampRadius limits radius to [0, MaxRadius(halfWidth, halfHeight)].
func ClampRadius(radius, halfWidth, halfHeight float64) float64 {
	return min(max(radius, 0), MaxRadius(halfWidth, halfHeight))
}

// NewBox halves the full dimensions and clamps the radius.
func NewBox(width, height, radius float64) Box {
	hw, hh := width/2, height/2
	return Box{
		HalfWidth:  hw,
		HalfHeight: hh,
		Radius:     ClampRadius(radius, hw, hh),
	}
}
