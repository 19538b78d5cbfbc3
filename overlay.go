package blurkit

import (
	"image"
	"image/color"
)

// Overlay renders a strip as a tinted dimming layer: every pixel takes the
// tint's color with its alpha scaled by the strip's ramp. Stacking the
// result over a blur keeps bright backgrounds from washing out light
// foreground content.
//
// The returned image has the strip's bounds. Overlay returns nil if s is
// nil.
func Overlay(s *Strip, tint color.Color) *image.NRGBA {
	if s == nil {
		return nil
	}
	t := color.NRGBAModel.Convert(tint).(color.NRGBA)
	img := image.NewNRGBA(s.Bounds())
	for i := 0; i < s.Len(); i++ {
		x, y := 0, i
		if s.axis == AxisHorizontal {
			x, y = i, 0
		}
		off := img.PixOffset(x, y)
		img.Pix[off+0] = t.R
		img.Pix[off+1] = t.G
		img.Pix[off+2] = t.B
		img.Pix[off+3] = mul255(t.A, s.Alpha(i))
	}
	return img
}

// mul255 multiplies two 8-bit values as if they were fractions of 255,
// rounding to nearest.
func mul255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}
