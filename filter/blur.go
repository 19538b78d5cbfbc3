package filter

import (
	"image"

	"github.com/TimOliver/BlurUIKit/internal/parallel"
)

// VariableBlur is a separable Gaussian blur whose radius varies per pixel.
// The mask's alpha channel selects each pixel's radius: 255 receives the
// full MaxRadius, 0 passes the source pixel through byte for byte, and
// intermediate values scale linearly between the two.
//
// The zero value is a no-op blur.
type VariableBlur struct {
	// MaxRadius is the blur radius, in pixels, applied where the mask is
	// fully opaque. Values at or below zero disable blurring.
	MaxRadius float64

	// Workers caps the number of goroutines used per pass. Zero means
	// one per available CPU.
	Workers int
}

// Apply blurs src into dst under the control of mask. All three images
// must have the same dimensions; dst may be src for an in-place blur.
//
// Apply returns [ErrNilImage] if any argument is nil and
// [ErrSizeMismatch] if the dimensions differ. The pixel data of src and
// mask is never modified.
func (v VariableBlur) Apply(dst, src *image.NRGBA, mask image.Image) error {
	if dst == nil || src == nil || mask == nil {
		return ErrNilImage
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if dst.Bounds().Dx() != w || dst.Bounds().Dy() != h ||
		mask.Bounds().Dx() != w || mask.Bounds().Dy() != h {
		return ErrSizeMismatch
	}
	if w == 0 || h == 0 {
		return nil
	}
	if v.MaxRadius <= 0 {
		copyPixels(dst, src, w, h)
		return nil
	}

	blurLevels(dst, src, maskLevels(mask, w, h), v.MaxRadius, v.Workers, w, h)
	return nil
}

// Uniform blurs src into dst with the same radius everywhere, the
// degenerate case of [VariableBlur] under a fully opaque mask. dst and src
// must have the same dimensions; dst may be src.
func Uniform(dst, src *image.NRGBA, radius float64) error {
	if dst == nil || src == nil {
		return ErrNilImage
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if dst.Bounds().Dx() != w || dst.Bounds().Dy() != h {
		return ErrSizeMismatch
	}
	if w == 0 || h == 0 {
		return nil
	}
	if radius <= 0 {
		copyPixels(dst, src, w, h)
		return nil
	}

	levels := make([]uint8, w*h)
	for i := range levels {
		levels[i] = 255
	}
	blurLevels(dst, src, levels, radius, 0, w, h)
	return nil
}

// blurLevels runs the separable passes with per-pixel kernels chosen by
// levels: a horizontal pass into a premultiplied float buffer, then a
// vertical pass back out. Aliasing dst and src is safe because the second
// pass reads source bytes only for the pixel it is writing.
func blurLevels(dst, src *image.NRGBA, levels []uint8, maxRadius float64, workers, w, h int) {
	taps := kernelTable(levels, maxRadius)
	temp := make([]float32, w*h*4)
	parallel.For(h, workers, func(start, end int) {
		blurRows(temp, src, levels, taps, w, start, end)
	})
	parallel.For(h, workers, func(start, end int) {
		blurColumns(dst, src, temp, levels, taps, w, h, start, end)
	})
}

// maskLevels flattens the mask's alpha channel into one byte per pixel.
func maskLevels(mask image.Image, w, h int) []uint8 {
	levels := make([]uint8, w*h)
	b := mask.Bounds()
	switch m := mask.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			row := m.Pix[m.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < w; x++ {
				levels[y*w+x] = row[x*4+3]
			}
		}
	case *image.Alpha:
		for y := 0; y < h; y++ {
			row := m.Pix[m.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < w; x++ {
				levels[y*w+x] = row[x]
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				_, _, _, a := mask.At(b.Min.X+x, b.Min.Y+y).RGBA()
				levels[y*w+x] = uint8(a >> 8)
			}
		}
	}
	return levels
}

// kernelTable builds one kernel per mask level present in levels. The
// radius for level l is MaxRadius*l/255, so level 0 always maps to the
// identity kernel.
func kernelTable(levels []uint8, maxRadius float64) *[256]Kernel {
	var seen [256]bool
	for _, l := range levels {
		seen[l] = true
	}
	var taps [256]Kernel
	for l, ok := range seen {
		if !ok {
			continue
		}
		taps[l] = CachedKernel(maxRadius * float64(l) / 255)
	}
	return &taps
}

func blurRows(temp []float32, src *image.NRGBA, levels []uint8, taps *[256]Kernel, w, start, end int) {
	b := src.Bounds()
	for y := start; y < end; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		out := temp[y*w*4:]
		for x := 0; x < w; x++ {
			k := taps[levels[y*w+x]]
			half := k.Half()
			var r, g, bl, a float32
			for t := -half; t <= half; t++ {
				sx := x + t
				if sx < 0 {
					sx = 0
				} else if sx >= w {
					sx = w - 1
				}
				p := row[sx*4 : sx*4+4]
				weight := k[t+half]
				// Weight color by alpha so transparent neighbors do not
				// bleed their color into the blur.
				f := weight * float32(p[3]) / 255
				r += f * float32(p[0])
				g += f * float32(p[1])
				bl += f * float32(p[2])
				a += weight * float32(p[3])
			}
			o := x * 4
			out[o+0] = r
			out[o+1] = g
			out[o+2] = bl
			out[o+3] = a
		}
	}
}

func blurColumns(dst, src *image.NRGBA, temp []float32, levels []uint8, taps *[256]Kernel, w, h, start, end int) {
	db := dst.Bounds()
	sb := src.Bounds()
	for y := start; y < end; y++ {
		out := dst.Pix[dst.PixOffset(db.Min.X, db.Min.Y+y):]
		srow := src.Pix[src.PixOffset(sb.Min.X, sb.Min.Y+y):]
		for x := 0; x < w; x++ {
			k := taps[levels[y*w+x]]
			if len(k) == 1 {
				// Identity kernel on both axes: carry the source pixel
				// through byte for byte.
				copy(out[x*4:x*4+4], srow[x*4:x*4+4])
				continue
			}
			half := k.Half()
			var r, g, bl, a float32
			for t := -half; t <= half; t++ {
				sy := y + t
				if sy < 0 {
					sy = 0
				} else if sy >= h {
					sy = h - 1
				}
				weight := k[t+half]
				o := (sy*w + x) * 4
				r += weight * temp[o+0]
				g += weight * temp[o+1]
				bl += weight * temp[o+2]
				a += weight * temp[o+3]
			}
			o := x * 4
			if a > 0 {
				inv := 255 / a
				out[o+0] = clampU8(r * inv)
				out[o+1] = clampU8(g * inv)
				out[o+2] = clampU8(bl * inv)
			} else {
				out[o+0] = 0
				out[o+1] = 0
				out[o+2] = 0
			}
			out[o+3] = clampU8(a)
		}
	}
}

func copyPixels(dst, src *image.NRGBA, w, h int) {
	if dst == src {
		return
	}
	db := dst.Bounds()
	sb := src.Bounds()
	for y := 0; y < h; y++ {
		d := dst.PixOffset(db.Min.X, db.Min.Y+y)
		s := src.PixOffset(sb.Min.X, sb.Min.Y+y)
		copy(dst.Pix[d:d+w*4], src.Pix[s:s+w*4])
	}
}

func clampU8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
