package blurkit

import "math"

// GradientRequest describes a single alpha-ramp strip. Two requests with the
// same field values describe the same strip, which makes the struct usable
// as a cache key.
type GradientRequest struct {
	// Length is the number of pixels along the gradient axis. It must be
	// positive.
	Length int

	// Axis selects the strip orientation: 1 x Length for [AxisVertical],
	// Length x 1 for [AxisHorizontal].
	Axis Axis

	// StartLocation is the normalized position in [0, 1] where the ramp
	// begins. Pixels at or before it hold the constant end value. Values
	// outside the range are clamped.
	StartLocation float64

	// Reversed flips the ramp so the strip starts transparent and ends
	// opaque.
	Reversed bool

	// Smooth eases the transition with a sinusoidal curve instead of a
	// linear ramp.
	Smooth bool
}

// normalized returns the request with StartLocation clamped to [0, 1],
// collapsing out-of-range values onto the same cache key.
func (r GradientRequest) normalized() GradientRequest {
	r.StartLocation = clamp01(r.StartLocation)
	return r
}

// Rasterize renders the alpha strip described by req.
//
// The strip holds a ramp from opaque to transparent along the axis. Pixels
// whose normalized position is at or before StartLocation form a constant
// region holding the exact end value (255, or 0 when Reversed); the
// remaining pixels interpolate to the other end, linearly or with
// sinusoidal easing when Smooth is set.
//
// Rasterize returns [ErrInvalidLength] if req.Length is not positive. The
// result depends only on req, so equal requests yield identical strips.
func Rasterize(req GradientRequest) (*Strip, error) {
	if req.Length <= 0 {
		return nil, ErrInvalidLength
	}

	start := clamp01(req.StartLocation)
	span := 1 - start
	flat := uint8(255)
	if req.Reversed {
		flat = 0
	}

	s := newStrip(req.Axis, req.Length)
	for i := 0; i < req.Length; i++ {
		var pos float64
		if req.Length > 1 {
			pos = float64(i) / float64(req.Length-1)
		}
		if pos <= start || span <= 0 {
			// Constant region. Written as the exact end value so these
			// pixels are bit-identical to a flat fill.
			s.setAlpha(i, flat)
			continue
		}
		t := (pos - start) / span
		if req.Smooth {
			t = easeInOutSine(t)
		}
		alpha := 1 - t
		if req.Reversed {
			alpha = t
		}
		s.setAlpha(i, quantize(alpha))
	}
	return s, nil
}

// easeInOutSine maps t in [0, 1] onto a sinusoidal ease-in-out curve. The
// curve is flat at both ends, which hides the seam where a gradient meets a
// constant region.
func easeInOutSine(t float64) float64 {
	return (1 - math.Cos(t*math.Pi)) / 2
}

// quantize converts a normalized alpha value to 8 bits, clamping and
// rounding to nearest.
func quantize(alpha float64) uint8 {
	return uint8(math.Round(clamp01(alpha) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
