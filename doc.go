// Package blurkit rasterizes the gradient alpha masks behind progressive
// blur effects, where an image is sharp at one edge and increasingly
// blurred toward the other.
//
// The core primitive is a strip: a one-pixel-wide (or one-pixel-tall)
// image holding an alpha ramp from opaque to transparent. A strip is cheap
// to rasterize, cheap to cache, and scales up to any size without banding
// because the ramp is one-dimensional.
//
// # Gradient strips
//
// [Rasterize] renders a strip from a [GradientRequest]:
//
//	strip, err := blurkit.Rasterize(blurkit.GradientRequest{
//		Length:        240,
//		Axis:          blurkit.AxisVertical,
//		StartLocation: 0.25,
//		Smooth:        true,
//	})
//
// The quarter of the strip before StartLocation is fully opaque; the rest
// eases to transparent. Setting Reversed flips the ramp, and [Direction]
// provides the usual UI vocabulary ("down", "up", "left", "right") for
// building requests.
//
// # Caching
//
// Identical requests produce identical strips, so strips are memoized.
// [Cache.GetOrCreate] rasterizes on first use and afterwards returns the
// shared *[Strip] for equal requests; [DefaultCache] is a package-level
// instance for callers that do not need isolation. Cached strips must be
// treated as immutable.
//
// # Building masks
//
// [Expand] stretches a strip to a full-size mask with bilinear filtering,
// and [Overlay] renders a strip as a tinted dimming layer. The
// [github.com/TimOliver/BlurUIKit/filter] package consumes expanded masks
// to drive a variable-radius blur.
//
// blurkit is silent by default; pass a logger to [SetLogger] for
// diagnostics.
package blurkit
