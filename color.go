package blurkit

import (
	"fmt"
	"image/color"
)

// Hex parses a CSS-style hex color into a [color.NRGBA]. It accepts the
// forms "#RGB", "#RGBA", "#RRGGBB" and "#RRGGBBAA"; the leading "#" is
// optional and digits are case-insensitive. Colors without an alpha
// component are opaque.
//
// Hex returns an error wrapping [ErrInvalidColor] for any other input.
func Hex(s string) (color.NRGBA, error) {
	h := s
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}

	c := color.NRGBA{A: 0xff}
	ok := true
	switch len(h) {
	case 3:
		c.R = 0x11 * nibble(h[0], &ok)
		c.G = 0x11 * nibble(h[1], &ok)
		c.B = 0x11 * nibble(h[2], &ok)
	case 4:
		c.R = 0x11 * nibble(h[0], &ok)
		c.G = 0x11 * nibble(h[1], &ok)
		c.B = 0x11 * nibble(h[2], &ok)
		c.A = 0x11 * nibble(h[3], &ok)
	case 6:
		c.R = hexByte(h, 0, &ok)
		c.G = hexByte(h, 2, &ok)
		c.B = hexByte(h, 4, &ok)
	case 8:
		c.R = hexByte(h, 0, &ok)
		c.G = hexByte(h, 2, &ok)
		c.B = hexByte(h, 4, &ok)
		c.A = hexByte(h, 6, &ok)
	default:
		ok = false
	}
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

func hexByte(s string, i int, ok *bool) uint8 {
	return nibble(s[i], ok)<<4 | nibble(s[i+1], ok)
}

func nibble(b byte, ok *bool) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	*ok = false
	return 0
}
