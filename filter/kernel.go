package filter

import (
	"math"

	"github.com/TimOliver/BlurUIKit/internal/cache"
)

// Kernel is a normalized, symmetric 1-D convolution kernel. Its length is
// always odd; the center tap is at index Half.
type Kernel []float32

// Half returns the kernel's half-width: the number of taps on each side of
// the center.
func (k Kernel) Half() int { return len(k) / 2 }

// Gaussian builds a normalized Gaussian kernel for the given blur radius.
// The kernel spans ceil(radius) taps on each side of the center with
// sigma = radius/2. Radii at or below zero yield the identity kernel.
func Gaussian(radius float64) Kernel {
	if radius <= 0 {
		return Kernel{1}
	}

	half := int(math.Ceil(radius))
	sigma := radius / 2
	twoSigmaSq := 2 * sigma * sigma

	weights := make([]float64, 2*half+1)
	var sum float64
	for i := -half; i <= half; i++ {
		w := math.Exp(-float64(i*i) / twoSigmaSq)
		weights[i+half] = w
		sum += w
	}

	k := make(Kernel, len(weights))
	for i, w := range weights {
		k[i] = float32(w / sum)
	}
	return k
}

// kernels memoizes Gaussian kernels by radius quantized to hundredths.
// A variable blur touches at most 256 distinct radii per run, so a small
// bound keeps reuse high across runs without letting animated radii grow
// the cache forever.
var kernels = cache.New[int, Kernel](512)

// CachedKernel returns the Gaussian kernel for radius, memoized across
// calls. Radii are quantized to hundredths of a pixel, which is below any
// visible difference in blur output.
func CachedKernel(radius float64) Kernel {
	if radius <= 0 {
		return Kernel{1}
	}
	key := int(radius*100 + 0.5)
	return kernels.GetOrCreate(key, func() Kernel {
		return Gaussian(radius)
	})
}
