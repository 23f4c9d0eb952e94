package kernel

import (
	"github.com/NatronGitHub/openfx-supportext-sub000/internal/blend"
	"github.com/NatronGitHub/openfx-supportext-sub000/internal/image"
)

// MergeParams configures the Merge kernel.
type MergeParams struct {
	Op blend.Op

	// AlphaMasking forces the union alpha for maskable operators.
	AlphaMasking bool

	MaskMix MaskMix
}

// Merge composites a onto b for every pixel of band and writes the result to
// dst. a, b and dst share format and depth; a nil a or b reads as
// transparent black.
//
// Each pixel of a and b is sampled through its own boundary mode, merged
// with blend.MergePixel and then mask-mixed over the b pixel.
func Merge(dst, a, b *image.Buffer, band image.Rect, p *MergeParams, aborted func() bool) {
	n := dst.Components()
	maxValue := dst.Max()
	integer := dst.Depth.IsInteger()

	var pa, pb, out [4]float32
	var bg []float32
	if b != nil {
		bg = pb[:]
	}

	for y := band.Y1; y < band.Y2; y++ {
		if aborted() {
			return
		}
		for x := band.X1; x < band.X2; x++ {
			a.Sample(x, y, pa[:])
			b.Sample(x, y, pb[:])
			blend.MergePixel(p.Op, p.AlphaMasking, pa[:], pb[:], out[:], n, maxValue)
			p.MaskMix.Apply(out[:], bg, out[:], x, y, n, maxValue, integer)
			dst.SetPixel(x, y, out[:])
		}
	}
}
