package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor converts "#rrggbb" or "#rrggbbaa" into an RGBA color. The
// alpha form is written straight and returned premultiplied, as color.RGBA expects.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return color.RGBA{
			R: uint8(value >> 16),
			G: uint8(value >> 8),
			B: uint8(value),
			A: 255,
		}, nil
	}

	a := uint8(value)
	return color.RGBA{
		R: premultiply(uint8(value>>24), a),
		G: premultiply(uint8(value>>16), a),
		B: premultiply(uint8(value>>8), a),
		A: a,
	}, nil
}

// premultiply scales a straight channel value by alpha, rounding to nearest
func premultiply(v, a uint8) uint8 {
	return uint8((uint32(v)*uint32(a) + 127) / 255)
}

// MustHexColor is ParseHexColor for compile-time constants; it panics on bad input
func MustHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
