package transplot

//Colors and glyphs for the three series of a run.

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg/draw"
)

const (
	head = iota
	tail
	front
)

var roleNames = []string{"Head", "Tail", "Front"}

//hue per role: red for the head, green for the tail, blue for the front.
var roleHues = []float64{0, 120, 240}

//roleColor returns the line color for one role of file key out of steps:
//the role's hue, dimmed progressively so the files stay apart when several
//runs share a figure.
func roleColor(role, key, steps int) color.RGBA {
	v := 1.0
	if steps > 1 {
		v = 1.0 - 0.5*float64(key)/float64(steps)
	}
	r, g, b := hsv2rgb(roleHues[role], v, 1.0)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

//edgeColor returns the marker color for one role: a dark shade of the role's
//hue, the same for every file.
func edgeColor(role int) color.RGBA {
	r, g, b := hsv2rgb(roleHues[role], 0.3, 1.0)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

//open markers, so overlapping series stay legible.
func roleShape(role int) draw.GlyphDrawer {
	switch role {
	case head:
		return draw.RingGlyph{}
	case tail:
		return draw.TriangleGlyph{}
	default:
		return draw.SquareGlyph{}
	}
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func hsv2rgb(h, v, s float64) (uint8, uint8, uint8) {
	maxcolor := 255.0
	if s == 0.0 {
		gray := maxcolor * v
		return uint8(gray), uint8(gray), uint8(gray)
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * maxcolor), uint8(g * maxcolor), uint8(b * maxcolor)
}
