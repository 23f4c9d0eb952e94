package blend

// Non-separable blend operators (hue, saturation, color, luminosity).
//
// They follow the pixman float combiners: both pixels stay premultiplied and
// normalized to [0, 1], the set-saturation / set-luminosity / clip-color
// sequence runs on the triplet scaled by the other pixel's alpha, and the
// clip bound is the product of both alphas instead of 1.

// hslEpsilon treats a luminance distance below it as a gray triplet.
const hslEpsilon = 1e-6

// Lum returns the luminance of a color using BT.601 coefficients.
// Formula: Lum(r, g, b) = 0.30*r + 0.59*g + 0.11*b
func Lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

// Sat returns the saturation (max - min) of a color.
func Sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

// ClipColor pulls components outside [0, alpha] back towards the luminance
// of the triplet, preserving hue.
func ClipColor(r, g, b, alpha float32) (float32, float32, float32) {
	l := Lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)

	if n < 0 {
		if l-n < hslEpsilon {
			r, g, b = 0, 0, 0
		} else {
			r = l + (r-l)*l/(l-n)
			g = l + (g-l)*l/(l-n)
			b = l + (b-l)*l/(l-n)
		}
	}
	if x > alpha {
		if x-l < hslEpsilon {
			r, g, b = alpha, alpha, alpha
		} else {
			r = l + (r-l)*(alpha-l)/(x-l)
			g = l + (g-l)*(alpha-l)/(x-l)
			b = l + (b-l)*(alpha-l)/(x-l)
		}
	}
	return r, g, b
}

// SetLum shifts the triplet to luminance l and clips it to [0, alpha].
func SetLum(r, g, b, alpha, l float32) (float32, float32, float32) {
	d := l - Lum(r, g, b)
	return ClipColor(r+d, g+d, b+d, alpha)
}

// SetSat rescales the triplet to saturation s, keeping the ordering of its
// components. A gray triplet becomes black.
func SetSat(r, g, b, s float32) (float32, float32, float32) {
	minPtr, midPtr, maxPtr := sortRGB(&r, &g, &b)

	if *maxPtr > *minPtr {
		*midPtr = (*midPtr - *minPtr) * s / (*maxPtr - *minPtr)
		*maxPtr = s
	} else {
		*midPtr = 0
		*maxPtr = 0
	}
	*minPtr = 0

	return r, g, b
}

// sortRGB returns pointers to r, g, b sorted by value (minPtr, midPtr, maxPtr).
func sortRGB(r, g, b *float32) (minPtr, midPtr, maxPtr *float32) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

// hslMerge evaluates a non-separable operator on the RGB components of two
// premultiplied pixels and writes the composited RGB to dst.
//
// The result is (1-sa)*B + (1-da)*A + c*max, where c is the blended triplet
// in [0, sa*da].
func hslMerge(op Op, a, b []float32, alphaA, alphaB, maxValue float32, dst []float32) {
	sr, sg, sb := a[0]/maxValue, a[1]/maxValue, a[2]/maxValue
	dr, dg, db := b[0]/maxValue, b[1]/maxValue, b[2]/maxValue
	sa := alphaA / maxValue
	da := alphaB / maxValue
	sada := sa * da

	var cr, cg, cb float32
	switch op {
	case OpHue:
		cr, cg, cb = SetSat(sr*da, sg*da, sb*da, Sat(dr, dg, db)*sa)
		cr, cg, cb = SetLum(cr, cg, cb, sada, Lum(dr, dg, db)*sa)
	case OpSaturation:
		cr, cg, cb = SetSat(dr*sa, dg*sa, db*sa, Sat(sr, sg, sb)*da)
		cr, cg, cb = SetLum(cr, cg, cb, sada, Lum(dr, dg, db)*sa)
	case OpColor:
		cr, cg, cb = SetLum(sr*da, sg*da, sb*da, sada, Lum(dr, dg, db)*sa)
	case OpLuminosity:
		cr, cg, cb = SetLum(dr*sa, dg*sa, db*sa, sada, Lum(sr, sg, sb)*da)
	default:
		copy(dst[:3], a[:3])
		return
	}

	dst[0] = maxValue * ((1-sa)*dr + (1-da)*sr + cr)
	dst[1] = maxValue * ((1-sa)*dg + (1-da)*sg + cg)
	dst[2] = maxValue * ((1-sa)*db + (1-da)*sb + cb)
}
