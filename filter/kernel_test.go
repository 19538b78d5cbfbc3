package filter

import (
	"math"
	"testing"
)

func TestGaussianIdentity(t *testing.T) {
	for _, radius := range []float64{0, -1, -0.001} {
		k := Gaussian(radius)
		if len(k) != 1 || k[0] != 1 {
			t.Errorf("Gaussian(%v) = %v, want identity kernel", radius, k)
		}
	}
}

func TestGaussianShape(t *testing.T) {
	for _, radius := range []float64{0.5, 1, 2.5, 8, 31} {
		k := Gaussian(radius)

		wantLen := 2*int(math.Ceil(radius)) + 1
		if len(k) != wantLen {
			t.Errorf("Gaussian(%v) has %d taps, want %d", radius, len(k), wantLen)
		}

		var sum float64
		for _, w := range k {
			sum += float64(w)
		}
		if math.Abs(sum-1) > 1e-4 {
			t.Errorf("Gaussian(%v) sums to %v, want 1", radius, sum)
		}

		half := k.Half()
		for i := range half {
			if k[i] != k[len(k)-1-i] {
				t.Errorf("Gaussian(%v) not symmetric at tap %d: %v vs %v",
					radius, i, k[i], k[len(k)-1-i])
			}
			if k[i] > k[i+1] {
				t.Errorf("Gaussian(%v) not peaked at center: tap %d = %v > tap %d = %v",
					radius, i, k[i], i+1, k[i+1])
			}
		}
	}
}

func TestCachedKernelReuse(t *testing.T) {
	a := CachedKernel(3)
	b := CachedKernel(3)
	if &a[0] != &b[0] {
		t.Error("CachedKernel(3) returned distinct kernels for equal radii")
	}

	// Radii are quantized to hundredths, so 3.004 lands on the same entry.
	c := CachedKernel(3.004)
	if &a[0] != &c[0] {
		t.Error("CachedKernel should quantize 3.004 onto the kernel for 3")
	}

	d := CachedKernel(3.5)
	if &a[0] == &d[0] {
		t.Error("CachedKernel(3.5) should not share the kernel for 3")
	}
}

func TestCachedKernelIdentity(t *testing.T) {
	k := CachedKernel(0)
	if len(k) != 1 || k[0] != 1 {
		t.Errorf("CachedKernel(0) = %v, want identity kernel", k)
	}
}

func BenchmarkGaussian(b *testing.B) {
	for b.Loop() {
		Gaussian(12)
	}
}

func BenchmarkCachedKernel(b *testing.B) {
	CachedKernel(12)
	for b.Loop() {
		CachedKernel(12)
	}
}
