package geometry

import (
	"math"
	"strconv"
	"strings"
)

// kappa places cubic control points so a quarter curve leaves and enters
// tangent to the adjacent straight edges.
const kappa = 0.5523

// RoundedRectPath renders b as a closed clockwise ASS drawing that starts on
// the top edge. A zero radius yields a plain rectangle.
func RoundedRectPath(b Box) string {
	hw, hh, r := b.HalfWidth, b.HalfHeight, b.Radius
	var p pathWriter
	if r <= 0 {
		p.move(-hw, -hh)
		p.line(hw, -hh)
		p.line(hw, hh)
		p.line(-hw, hh)
		p.line(-hw, -hh)
		return p.String()
	}
	c := r * kappa
	p.move(-hw+r, -hh)
	p.line(hw-r, -hh)
	p.curve(hw-r+c, -hh, hw, -hh+r-c, hw, -hh+r)
	p.line(hw, hh-r)
	p.curve(hw, hh-r+c, hw-r+c, hh, hw-r, hh)
	p.line(-hw+r, hh)
	p.curve(-hw+r-c, hh, -hw, hh-r+c, -hw, hh-r)
	p.line(-hw, -hh+r)
	p.curve(-hw, -hh+r-c, -hw+r-c, -hh, -hw+r, -hh)
	return p.String()
}

type pathWriter struct {
	b strings.Builder
}

func (p *pathWriter) move(x, y float64) {
	p.cmd("m", x, y)
}

func (p *pathWriter) line(x, y float64) {
	p.cmd("l", x, y)
}

func (p *pathWriter) curve(x1, y1, x2, y2, x3, y3 float64) {
	p.cmd("b", x1, y1, x2, y2, x3, y3)
}

func (p *pathWriter) cmd(op string, coords ...float64) {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
	p.b.WriteString(op)
	for _, v := range coords {
		p.b.WriteByte(' ')
		p.b.WriteString(FormatNumber(v))
	}
}

func (p *pathWriter) String() string {
	return p.b.String()
}

// FormatNumber renders v rounded to two decimals without trailing zeros.
func FormatNumber(v float64) string {
	rounded := math.Round(v*100) / 100
	if rounded == 0 {
		return "0"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
