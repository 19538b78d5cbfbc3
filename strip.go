package blurkit

import (
	"image"
	"image/color"
)

// Strip is a rasterized one-dimensional alpha gradient. It is a 1 x Length
// image for [AxisVertical] requests and a Length x 1 image for
// [AxisHorizontal] ones.
//
// Pixels are stored as two bytes each, a grayscale value followed by an
// alpha value, in axis order. Rasterized strips keep the gray byte at zero;
// only the alpha channel carries the ramp.
//
// Strip implements [image.Image]. Strips returned by [Rasterize] and the
// gradient cache are shared and must be treated as immutable.
type Strip struct {
	axis   Axis
	width  int
	height int
	data   []uint8
}

func newStrip(axis Axis, length int) *Strip {
	w, h := 1, length
	if axis == AxisHorizontal {
		w, h = length, 1
	}
	return &Strip{
		axis:   axis,
		width:  w,
		height: h,
		data:   make([]uint8, 2*length),
	}
}

// Axis returns the axis the strip runs along.
func (s *Strip) Axis() Axis { return s.axis }

// Width returns the strip width in pixels.
func (s *Strip) Width() int { return s.width }

// Height returns the strip height in pixels.
func (s *Strip) Height() int { return s.height }

// Len returns the number of pixels along the strip's axis.
func (s *Strip) Len() int {
	if s.axis == AxisHorizontal {
		return s.width
	}
	return s.height
}

// Alpha returns the alpha value of the pixel at index i along the axis.
// Out-of-range indices return 0.
func (s *Strip) Alpha(i int) uint8 {
	if i < 0 || 2*i+1 >= len(s.data) {
		return 0
	}
	return s.data[2*i+1]
}

// Data returns the underlying pixel data as gray, alpha pairs in axis
// order. The slice is shared with the strip and must not be modified.
func (s *Strip) Data() []uint8 { return s.data }

// ColorModel implements [image.Image].
func (s *Strip) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements [image.Image].
func (s *Strip) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At implements [image.Image]. Out-of-bounds pixels are transparent.
func (s *Strip) At(x, y int) color.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.NRGBA{}
	}
	i := y
	if s.axis == AxisHorizontal {
		i = x
	}
	g := s.data[2*i]
	return color.NRGBA{R: g, G: g, B: g, A: s.data[2*i+1]}
}

func (s *Strip) setAlpha(i int, a uint8) {
	s.data[2*i+1] = a
}
