package blurkit

import (
	"bytes"
	"errors"
	"testing"
)

func TestRasterizeInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1, -4096} {
		_, err := Rasterize(GradientRequest{Length: length})
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Rasterize(Length=%d) error = %v, want ErrInvalidLength", length, err)
		}
	}
}

func TestRasterizeLinearRamp(t *testing.T) {
	tests := []struct {
		name string
		req  GradientRequest
		want []uint8
	}{
		{
			name: "four pixels",
			req:  GradientRequest{Length: 4},
			want: []uint8{255, 170, 85, 0},
		},
		{
			name: "four pixels reversed",
			req:  GradientRequest{Length: 4, Reversed: true},
			want: []uint8{0, 85, 170, 255},
		},
		{
			name: "five pixels",
			req:  GradientRequest{Length: 5},
			want: []uint8{255, 191, 128, 64, 0},
		},
		{
			name: "five pixels smooth",
			req:  GradientRequest{Length: 5, Smooth: true},
			want: []uint8{255, 218, 128, 37, 0},
		},
		{
			name: "two pixels",
			req:  GradientRequest{Length: 2},
			want: []uint8{255, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strip, err := Rasterize(tt.req)
			if err != nil {
				t.Fatalf("Rasterize() error = %v", err)
			}
			if strip.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", strip.Len(), len(tt.want))
			}
			for i, want := range tt.want {
				if got := strip.Alpha(i); got != want {
					t.Errorf("Alpha(%d) = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestRasterizeSinglePixel(t *testing.T) {
	tests := []struct {
		name string
		req  GradientRequest
		want uint8
	}{
		{"plain", GradientRequest{Length: 1}, 255},
		{"reversed", GradientRequest{Length: 1, Reversed: true}, 0},
		{"smooth with start", GradientRequest{Length: 1, StartLocation: 0.9, Smooth: true}, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strip, err := Rasterize(tt.req)
			if err != nil {
				t.Fatalf("Rasterize() error = %v", err)
			}
			if got := strip.Alpha(0); got != tt.want {
				t.Errorf("Alpha(0) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRasterizeEndpoints(t *testing.T) {
	for _, smooth := range []bool{false, true} {
		strip, err := Rasterize(GradientRequest{Length: 64, Smooth: smooth})
		if err != nil {
			t.Fatalf("Rasterize() error = %v", err)
		}
		if got := strip.Alpha(0); got != 255 {
			t.Errorf("smooth=%v: Alpha(0) = %d, want 255", smooth, got)
		}
		if got := strip.Alpha(63); got != 0 {
			t.Errorf("smooth=%v: Alpha(63) = %d, want 0", smooth, got)
		}

		rev, err := Rasterize(GradientRequest{Length: 64, Reversed: true, Smooth: smooth})
		if err != nil {
			t.Fatalf("Rasterize(reversed) error = %v", err)
		}
		if got := rev.Alpha(0); got != 0 {
			t.Errorf("smooth=%v reversed: Alpha(0) = %d, want 0", smooth, got)
		}
		if got := rev.Alpha(63); got != 255 {
			t.Errorf("smooth=%v reversed: Alpha(63) = %d, want 255", smooth, got)
		}
	}
}

func TestRasterizeMonotonic(t *testing.T) {
	tests := []struct {
		name string
		req  GradientRequest
	}{
		{"linear", GradientRequest{Length: 100}},
		{"smooth", GradientRequest{Length: 100, Smooth: true}},
		{"linear with start", GradientRequest{Length: 100, StartLocation: 0.4}},
		{"smooth with start", GradientRequest{Length: 100, StartLocation: 0.4, Smooth: true}},
		{"linear reversed", GradientRequest{Length: 100, Reversed: true}},
		{"smooth reversed", GradientRequest{Length: 100, Reversed: true, Smooth: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strip, err := Rasterize(tt.req)
			if err != nil {
				t.Fatalf("Rasterize() error = %v", err)
			}
			for i := 1; i < strip.Len(); i++ {
				prev, cur := strip.Alpha(i-1), strip.Alpha(i)
				if tt.req.Reversed && cur < prev {
					t.Fatalf("Alpha(%d) = %d < Alpha(%d) = %d, want non-decreasing", i, cur, i-1, prev)
				}
				if !tt.req.Reversed && cur > prev {
					t.Fatalf("Alpha(%d) = %d > Alpha(%d) = %d, want non-increasing", i, cur, i-1, prev)
				}
			}
		})
	}
}

func TestRasterizeConstantRegion(t *testing.T) {
	// With length 11 and start 0.3, positions 0/10 through 3/10 fall in the
	// constant region and must hold the exact end value.
	const length, flatEnd = 11, 3

	for _, reversed := range []bool{false, true} {
		flat := uint8(255)
		if reversed {
			flat = 0
		}
		for _, smooth := range []bool{false, true} {
			strip, err := Rasterize(GradientRequest{
				Length:        length,
				StartLocation: 0.3,
				Reversed:      reversed,
				Smooth:        smooth,
			})
			if err != nil {
				t.Fatalf("Rasterize() error = %v", err)
			}
			for i := 0; i <= flatEnd; i++ {
				if got := strip.Alpha(i); got != flat {
					t.Errorf("reversed=%v smooth=%v: Alpha(%d) = %d, want %d",
						reversed, smooth, i, got, flat)
				}
			}
			if got := strip.Alpha(flatEnd + 1); got == flat {
				t.Errorf("reversed=%v smooth=%v: Alpha(%d) = %d, want a transition value",
					reversed, smooth, flatEnd+1, got)
			}
		}
	}
}

func TestRasterizeStartClamped(t *testing.T) {
	base, err := Rasterize(GradientRequest{Length: 16})
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	low, err := Rasterize(GradientRequest{Length: 16, StartLocation: -3.5})
	if err != nil {
		t.Fatalf("Rasterize(start=-3.5) error = %v", err)
	}
	if !bytes.Equal(low.Data(), base.Data()) {
		t.Error("start below 0 should rasterize like start 0")
	}

	high, err := Rasterize(GradientRequest{Length: 16, StartLocation: 2.0})
	if err != nil {
		t.Fatalf("Rasterize(start=2) error = %v", err)
	}
	for i := 0; i < 16; i++ {
		if got := high.Alpha(i); got != 255 {
			t.Errorf("start=2: Alpha(%d) = %d, want 255", i, got)
		}
	}
}

func TestRasterizeStartAtOne(t *testing.T) {
	for _, reversed := range []bool{false, true} {
		flat := uint8(255)
		if reversed {
			flat = 0
		}
		strip, err := Rasterize(GradientRequest{Length: 32, StartLocation: 1, Reversed: reversed})
		if err != nil {
			t.Fatalf("Rasterize() error = %v", err)
		}
		for i := 0; i < 32; i++ {
			if got := strip.Alpha(i); got != flat {
				t.Errorf("reversed=%v: Alpha(%d) = %d, want %d", reversed, i, got, flat)
			}
		}
	}
}

func TestRasterizeSmoothDiffers(t *testing.T) {
	linear, err := Rasterize(GradientRequest{Length: 5})
	if err != nil {
		t.Fatalf("Rasterize(linear) error = %v", err)
	}
	smooth, err := Rasterize(GradientRequest{Length: 5, Smooth: true})
	if err != nil {
		t.Fatalf("Rasterize(smooth) error = %v", err)
	}
	// At a quarter of the way through the transition the sinusoidal curve
	// sits well above the line.
	if linear.Alpha(1) == smooth.Alpha(1) {
		t.Errorf("Alpha(1) = %d for both curves, want them to differ", linear.Alpha(1))
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	req := GradientRequest{Length: 300, Axis: AxisHorizontal, StartLocation: 0.2, Smooth: true}
	a, err := Rasterize(req)
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	b, err := Rasterize(req)
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if !bytes.Equal(a.Data(), b.Data()) {
		t.Error("equal requests produced different strips")
	}
}

func TestRasterizeAxis(t *testing.T) {
	vert, err := Rasterize(GradientRequest{Length: 9, Axis: AxisVertical})
	if err != nil {
		t.Fatalf("Rasterize(vertical) error = %v", err)
	}
	if vert.Width() != 1 || vert.Height() != 9 {
		t.Errorf("vertical strip is %dx%d, want 1x9", vert.Width(), vert.Height())
	}

	horiz, err := Rasterize(GradientRequest{Length: 9, Axis: AxisHorizontal})
	if err != nil {
		t.Fatalf("Rasterize(horizontal) error = %v", err)
	}
	if horiz.Width() != 9 || horiz.Height() != 1 {
		t.Errorf("horizontal strip is %dx%d, want 9x1", horiz.Width(), horiz.Height())
	}

	if !bytes.Equal(vert.Data(), horiz.Data()) {
		t.Error("axis should change layout, not alpha values")
	}
}

func BenchmarkRasterize(b *testing.B) {
	req := GradientRequest{Length: 1024, StartLocation: 0.25, Smooth: true}
	for i := 0; i < b.N; i++ {
		if _, err := Rasterize(req); err != nil {
			b.Fatal(err)
		}
	}
}
