package geometry

import "fmt"

// Canvas is the reference pixel space of the target video.
type Canvas struct {
	Width  int
	Height int
}

// DefaultCanvas is used when no video is supplied or probing fails.
var DefaultCanvas = Canvas{Width: 1920, Height: 1080}

// Valid reports whether both dimensions are positive.
func (c Canvas) Valid() bool {
	return c.Width > 0 && c.Height > 0
}

// MinSide returns the smaller canvas dimension.
func (c Canvas) MinSide() int {
	return min(c.Width, c.Height)
}

func (c Canvas) String() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}
