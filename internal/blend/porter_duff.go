package blend

// Porter-Duff operators (premultiplied). These combine each component with
// the other image's alpha; alphaA and alphaB are in pixel units like the
// components, so alphaA/maxValue is the coverage of A.

// over composites A over B.
// Formula: A + B*(1 - a)
func over(a, b, alphaA, _, maxValue float32) float32 {
	return a + b*(1-alphaA/maxValue)
}

// under composites B over A.
// Formula: A*(1 - b) + B
func under(a, b, _, alphaB, maxValue float32) float32 {
	return a*(1-alphaB/maxValue) + b
}

// atop shows A where B is, and B elsewhere.
// Formula: A*b + B*(1 - a)
func atop(a, b, alphaA, alphaB, maxValue float32) float32 {
	return a*alphaB/maxValue + b*(1-alphaA/maxValue)
}

// in shows A where B is.
// Formula: A*b
func in(a, _, _, alphaB, maxValue float32) float32 {
	return a * alphaB / maxValue
}

// out shows A where B is not.
// Formula: A*(1 - b)
func out(a, _, _, alphaB, maxValue float32) float32 {
	return a * (1 - alphaB/maxValue)
}

// mask shows B where A is.
// Formula: B*a
func mask(_, b, alphaA, _, maxValue float32) float32 {
	return b * alphaA / maxValue
}

// stencil shows B where A is not.
// Formula: B*(1 - a)
func stencil(_, b, alphaA, _, maxValue float32) float32 {
	return b * (1 - alphaA/maxValue)
}

// matte is over for an unpremultiplied A.
// Formula: A*a + B*(1 - a)
func matte(a, b, alphaA, _, maxValue float32) float32 {
	return a*alphaA/maxValue + b*(1-alphaA/maxValue)
}

// xor shows A and B where they do not overlap.
// Formula: A*(1 - b) + B*(1 - a)
func xor(a, b, alphaA, alphaB, maxValue float32) float32 {
	return a*(1-alphaB/maxValue) + b*(1-alphaA/maxValue)
}

// conjointOver assumes A and B coverage overlap as much as possible.
// Formula: A if a > b, else A + B*(1 - a/b)
func conjointOver(a, b, alphaA, alphaB, _ float32) float32 {
	if alphaA > alphaB {
		return a
	}
	if alphaB <= 0 {
		return a + b
	}
	return a + b*(1-alphaA/alphaB)
}

// disjointOver assumes A and B coverage overlap as little as possible.
// Formula: A + B if a + b < 1, else A + B*(1 - a)/b
func disjointOver(a, b, alphaA, alphaB, maxValue float32) float32 {
	if alphaA+alphaB < maxValue {
		return a + b
	}
	if alphaB <= 0 {
		return a
	}
	return a + b*(maxValue-alphaA)/alphaB
}
