package kernel

import "github.com/NatronGitHub/openfx-supportext-sub000/internal/image"

// PixelFunc transforms one normalized, unpremultiplied RGBA pixel in place.
// It must be safe to call from several goroutines at once.
type PixelFunc func(x, y int, rgba *[4]float32)

// ProcessParams configures the Process kernel.
type ProcessParams struct {
	// Fn is applied to every pixel; nil is the identity.
	Fn PixelFunc

	// SrcPremult divides source color by alpha before Fn.
	SrcPremult bool

	// DstPremult multiplies color by alpha after Fn.
	DstPremult bool

	MaskMix MaskMix
}

// Process runs the unpremultiply / transform / premultiply / mask-mix chain
// for every pixel of band. src and dst share format and depth; a nil src is
// an absent pixel everywhere, which Unpremult turns into zeros.
//
// The source pixel is the mask-mix background: where the weight is 0 the
// destination receives the source unchanged.
func Process(dst, src *image.Buffer, band image.Rect, p *ProcessParams, aborted func() bool) {
	n := dst.Components()
	maxValue := dst.Max()
	integer := dst.Depth.IsInteger()

	var ps, tmp [4]float32
	for y := band.Y1; y < band.Y2; y++ {
		if aborted() {
			return
		}
		for x := band.X1; x < band.X2; x++ {
			var in, bg []float32
			if src.Sample(x, y, ps[:]) {
				in, bg = ps[:], ps[:]
			}
			unp := Unpremult(in, dst.Format, maxValue, p.SrcPremult)
			if p.Fn != nil {
				p.Fn(x, y, &unp)
			}
			Premult(unp, dst.Format, dst.Depth, p.DstPremult, tmp[:])
			p.MaskMix.Apply(tmp[:], bg, tmp[:], x, y, n, maxValue, integer)
			dst.SetPixel(x, y, tmp[:])
		}
	}
}
