package kernel

import "github.com/NatronGitHub/openfx-supportext-sub000/internal/image"

// MaskMix describes how a computed pixel is blended back over its
// background.
//
// The zero value is not useful: use NoMix for "write the new value as is".
type MaskMix struct {
	// Mix is the weight of the new value in [0, 1].
	Mix float32

	// Masked enables the mask. When set, the weight is Mix * maskValue.
	Masked bool

	// Mask is the mask image; nil means every mask read is absent.
	Mask *image.Buffer

	// Invert uses 1 - maskValue, and turns absent mask pixels from 0 into 1.
	Invert bool
}

// NoMix writes the computed value unchanged.
var NoMix = MaskMix{Mix: 1}

// Weight returns the interpolation weight for pixel (x, y).
func (m *MaskMix) Weight(x, y int) float32 {
	if !m.Masked {
		return m.Mix
	}
	return m.Mix * m.maskValue(x, y)
}

// maskValue reads the normalized mask value at (x, y): the alpha component
// when the mask has one, the first component otherwise.
func (m *MaskMix) maskValue(x, y int) float32 {
	var px [4]float32
	if m.Mask == nil || !m.Mask.Sample(x, y, px[:]) {
		if m.Invert {
			return 1
		}
		return 0
	}
	i := max(m.Mask.Format.AlphaIndex(), 0)
	v := px[i] / m.Mask.Max()
	if m.Invert {
		return 1 - v
	}
	return v
}

// Apply writes tmp*w + bg*(1-w) to dst for the n components of a pixel,
// where w is the weight at (x, y). A nil bg is an absent background and the
// result is tmp*w. Integer depths are clamped to [0, maxValue]. dst may alias
// tmp.
func (m *MaskMix) Apply(tmp, bg, dst []float32, x, y, n int, maxValue float32, integer bool) {
	w := m.Weight(x, y)
	if bg == nil {
		for c := range n {
			dst[c] = image.ClampIfInt(tmp[c]*w, maxValue, integer)
		}
		return
	}
	for c := range n {
		dst[c] = image.ClampIfInt(tmp[c]*w+bg[c]*(1-w), maxValue, integer)
	}
}
