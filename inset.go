package blurkit

// Inset positions the start of a gradient's transition region relative to
// the strip it is rasterized into. The fractional part scales with the
// strip; the absolute part caps it so the constant region cannot grow past
// a fixed pixel size on large strips.
//
// The zero Inset starts the transition at the very first pixel.
type Inset struct {
	// Fraction is the portion of the strip, in [0, 1], covered by the
	// constant region.
	Fraction float64

	// MaxAbsolute caps the constant region at a size in pixels. Zero or
	// negative means no cap.
	MaxAbsolute float64
}

// StartLocation resolves the inset against a strip of the given length and
// returns the normalized start location for a [GradientRequest].
func (in Inset) StartLocation(length int) float64 {
	f := clamp01(in.Fraction)
	if length <= 0 || in.MaxAbsolute <= 0 {
		return f
	}
	return clamp01(min(f, in.MaxAbsolute/float64(length)))
}
