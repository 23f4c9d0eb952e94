package blend

// MergePixel merges pixel a onto pixel b and writes n components to dst.
//
// a, b and dst hold n components in pixel units: n == 1 is a lone alpha, 3 is
// RGB (treated as opaque) and 4 is RGBA. dst may alias a or b.
//
// When alphaMasking is set, op is maskable and n == 4, the output alpha is
// the union a + b - a*b/max and op is applied to the color components only.
// Non-separable operators always produce the union alpha.
func MergePixel(op Op, alphaMasking bool, a, b, dst []float32, n int, maxValue float32) {
	alphaA, alphaB := maxValue, maxValue
	switch n {
	case 1:
		alphaA, alphaB = a[0], b[0]
	case 4:
		alphaA, alphaB = a[3], b[3]
	}
	union := alphaA + alphaB - alphaA*alphaB/maxValue

	if !op.Separable() {
		if n < 3 {
			dst[0] = union
			return
		}
		hslMerge(op, a, b, alphaA, alphaB, maxValue, dst)
		if n == 4 {
			dst[3] = union
		}
		return
	}

	fn := opTable[op].fn
	if alphaMasking && n == 4 && op.Maskable() {
		for c := range 3 {
			dst[c] = fn(a[c], b[c], alphaA, alphaB, maxValue)
		}
		dst[3] = union
		return
	}
	for c := range n {
		dst[c] = fn(a[c], b[c], alphaA, alphaB, maxValue)
	}
}
