package kernel

import (
	"math"
	"testing"

	"github.com/NatronGitHub/openfx-supportext-sub000/internal/image"
)

func never() bool { return false }

// gradient fills b with a deterministic per-pixel pattern and full alpha.
func gradient(b *image.Buffer) {
	n := b.Components()
	px := make([]float32, n)
	for y := b.Bounds.Y1; y < b.Bounds.Y2; y++ {
		for x := b.Bounds.X1; x < b.Bounds.X2; x++ {
			for c := range n {
				px[c] = float32((x*7+y*13+c*29)%200 + 1)
			}
			if i := b.Format.AlphaIndex(); i >= 0 {
				px[i] = b.Max()
			}
			if !b.Depth.IsInteger() {
				for c := range n {
					px[c] /= 255
				}
			}
			b.SetPixel(x, y, px)
		}
	}
}

func pixelAt(t *testing.T, b *image.Buffer, x, y int) []float32 {
	t.Helper()
	px := make([]float32, b.Components())
	if !b.Pixel(x, y, px) {
		t.Fatalf("pixel (%d,%d) outside %v", x, y, b.Bounds)
	}
	return px
}

func near(a, b, tol float32) bool {
	return float32(math.Abs(float64(a-b))) <= tol
}
