package blend

import (
	"math"
	"testing"
)

func approx(a, b, tol float32) bool {
	return float32(math.Abs(float64(a-b))) <= tol
}

func TestPorterDuff(t *testing.T) {
	// A = 100, B = 60, alphaA = 200, alphaB = 120, max = 255.
	const (
		a, b   = 100, 60
		aa, ab = 200, 120
		m      = 255
	)
	tests := []struct {
		op   Op
		want float32
	}{
		{OpOver, a + b*(1-float32(aa)/m)},
		{OpUnder, a*(1-float32(ab)/m) + b},
		{OpAtop, a*float32(ab)/m + b*(1-float32(aa)/m)},
		{OpIn, a * float32(ab) / m},
		{OpOut, a * (1 - float32(ab)/m)},
		{OpMask, b * float32(aa) / m},
		{OpStencil, b * (1 - float32(aa)/m)},
		{OpMatte, a*float32(aa)/m + b*(1-float32(aa)/m)},
		{OpXor, a*(1-float32(ab)/m) + b*(1-float32(aa)/m)},
		{OpConjointOver, a},                                // alphaA > alphaB
		{OpDisjointOver, a + b*(m-float32(aa))/float32(ab)}, // alphaA + alphaB >= max
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got := Merge(tt.op, a, b, aa, ab, m)
			if !approx(got, tt.want, 1e-3) {
				t.Errorf("%v = %v, want %v", tt.op, got, tt.want)
			}
		})
	}
}

// TestOverScenario checks over on premultiplied 8-bit pixels
// A=(100,0,0,200), B=(0,100,0,100).
func TestOverScenario(t *testing.T) {
	a := []float32{100, 0, 0, 200}
	b := []float32{0, 100, 0, 100}
	dst := make([]float32, 4)
	MergePixel(OpOver, false, a, b, dst, 4, 255)

	if !approx(dst[0], 100, 1e-4) {
		t.Errorf("R = %v, want 100", dst[0])
	}
	if !approx(dst[1], 21.5686, 1e-3) {
		t.Errorf("G = %v, want ~21.57", dst[1])
	}
	if math.Round(float64(dst[1])) != 22 {
		t.Errorf("G rounds to %v, want 22", math.Round(float64(dst[1])))
	}
	if !approx(dst[3], 200+100*(1-200.0/255), 1e-3) {
		t.Errorf("A = %v", dst[3])
	}
}

func TestConjointOver(t *testing.T) {
	tests := []struct {
		name         string
		a, b, aa, ab float32
		want         float32
	}{
		{"A more opaque", 0.5, 0.4, 0.8, 0.6, 0.5},
		{"B transparent", 0.2, 0.1, 0, 0, 0.3},
		{"partial", 0.25, 0.5, 0.25, 0.5, 0.25 + 0.5*(1-0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := conjointOver(tt.a, tt.b, tt.aa, tt.ab, 1); !approx(got, tt.want, 1e-6) {
				t.Errorf("conjointOver = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisjointOver(t *testing.T) {
	tests := []struct {
		name         string
		a, b, aa, ab float32
		want         float32
	}{
		{"no overlap", 0.3, 0.2, 0.3, 0.4, 0.5},
		{"overlap", 0.6, 0.5, 0.6, 0.8, 0.6 + 0.5*0.4/0.8},
		{"A opaque B empty", 1, 0, 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := disjointOver(tt.a, tt.b, tt.aa, tt.ab, 1); !approx(got, tt.want, 1e-6) {
				t.Errorf("disjointOver = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPorterDuff_OpaqueTransparent(t *testing.T) {
	// Fully opaque A hides B under over; fully transparent A leaves B.
	if got := Merge(OpOver, 0.7, 0.3, 1, 1, 1); got != 0.7 {
		t.Errorf("over opaque = %v, want 0.7", got)
	}
	if got := Merge(OpOver, 0, 0.3, 0, 1, 1); got != 0.3 {
		t.Errorf("over transparent = %v, want 0.3", got)
	}
	if got := Merge(OpStencil, 0.7, 0.3, 1, 1, 1); got != 0 {
		t.Errorf("stencil opaque = %v, want 0", got)
	}
}
