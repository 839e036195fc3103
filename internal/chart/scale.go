package chart

import (
	"image/color"
	"math"
)

// Scale is a continuous colour scale defined by evenly spaced stops.
type Scale []color.RGBA

// Plasma approximates the matplotlib "plasma" sequential scale.
var Plasma = Scale{
	{0x0d, 0x08, 0x87, 0xff},
	{0x7e, 0x03, 0xa8, 0xff},
	{0xcc, 0x47, 0x78, 0xff},
	{0xf8, 0x95, 0x40, 0xff},
	{0xf0, 0xf9, 0x21, 0xff},
}

// At returns the colour at t in [0, 1]; t is clamped.
func (s Scale) At(t float64) color.RGBA {
	if len(s) == 0 {
		return color.RGBA{A: 0xff}
	}
	if len(s) == 1 || math.IsNaN(t) || t <= 0 {
		return s[0]
	}
	if t >= 1 {
		return s[len(s)-1]
	}

	pos := t * float64(len(s)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := s[i], s[i+1]
	return color.RGBA{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 0xff,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// normalize maps v from [lo, hi] to [0, 1]. A zero-width range maps to 1.
func normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 1
	}
	return (v - lo) / (hi - lo)
}
