package kernel

import "github.com/NatronGitHub/openfx-supportext-sub000/internal/image"

// UnpremultEpsilon is the normalized alpha below which color components are
// not divided by alpha.
const UnpremultEpsilon = 1e-6

// Unpremult converts a stored pixel to normalized, unpremultiplied RGBA.
//
// px holds f.Components() values in pixel units of maxValue; a nil px is an
// absent pixel and yields all zeros. An Alpha pixel has zero color. An RGB
// pixel passes through with alpha forced to 0. For RGBA, color is divided by
// alpha only when premult is set and alpha is at least UnpremultEpsilon.
func Unpremult(px []float32, f image.Format, maxValue float32, premult bool) [4]float32 {
	var out [4]float32
	if px == nil {
		return out
	}

	switch f {
	case image.FormatAlpha:
		out[3] = px[0] / maxValue
	case image.FormatRGB:
		out[0] = px[0] / maxValue
		out[1] = px[1] / maxValue
		out[2] = px[2] / maxValue
	case image.FormatRGBA:
		a := px[3] / maxValue
		out[3] = a
		if !premult || a < UnpremultEpsilon {
			out[0] = px[0] / maxValue
			out[1] = px[1] / maxValue
			out[2] = px[2] / maxValue
			return out
		}
		out[0] = px[0] / maxValue / a
		out[1] = px[1] / maxValue / a
		out[2] = px[2] / maxValue / a
	}
	return out
}

// Premult converts normalized RGBA back to pixel units of depth d and layout
// f, writing f.Components() values to dst.
//
// Color is multiplied by alpha when premult is set and f is RGBA. Values are
// clamped to [0, max] for integer depths only.
func Premult(unp [4]float32, f image.Format, d image.Depth, premult bool, dst []float32) {
	maxValue := d.Max()
	integer := d.IsInteger()

	switch f {
	case image.FormatAlpha:
		dst[0] = image.ClampIfInt(unp[3]*maxValue, maxValue, integer)
	case image.FormatRGB:
		for c := range 3 {
			dst[c] = image.ClampIfInt(unp[c]*maxValue, maxValue, integer)
		}
	case image.FormatRGBA:
		k := float32(1)
		if premult {
			k = unp[3]
		}
		for c := range 3 {
			dst[c] = image.ClampIfInt(unp[c]*k*maxValue, maxValue, integer)
		}
		dst[3] = image.ClampIfInt(unp[3]*maxValue, maxValue, integer)
	}
}
