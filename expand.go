package blurkit

import (
	"image"

	"golang.org/x/image/draw"
)

// Expand scales src to width x height with bilinear interpolation and
// returns the result. It is the bridge from a one-pixel-wide strip to a
// full-size mask: stretching a 1 x N vertical strip across a view
// reproduces the gradient in every column.
//
// Expand returns nil if src is nil or either dimension is not positive.
func Expand(src image.Image, width, height int) *image.NRGBA {
	if src == nil || width <= 0 || height <= 0 {
		return nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
