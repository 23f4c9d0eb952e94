package blend

import "math"

// Separable blend operators. They ignore both alphas and are applied to the
// premultiplied components directly. Formulas are written for normalized
// values (max = 1) in the doc comments.

// copyA returns A unchanged.
func copyA(a, _, _, _, _ float32) float32 {
	return a
}

// average returns the mean of A and B.
func average(a, b, _, _, _ float32) float32 {
	return (a + b) / 2
}

// plus adds A and B.
func plus(a, b, _, _, _ float32) float32 {
	return a + b
}

// minus subtracts B from A.
func minus(a, b, _, _, _ float32) float32 {
	return a - b
}

// from subtracts A from B.
func from(a, b, _, _, _ float32) float32 {
	return b - a
}

// difference returns |A - B|.
func difference(a, b, _, _, _ float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}

// lighten returns max(A, B).
func lighten(a, b, _, _, _ float32) float32 {
	return max(a, b)
}

// darken returns min(A, B).
func darken(a, b, _, _, _ float32) float32 {
	return min(a, b)
}

// multiply returns A*B. Two negative inputs return A so that out-of-range
// float data does not turn positive.
func multiply(a, b, _, _, maxValue float32) float32 {
	if a < 0 && b < 0 {
		return a
	}
	return a * b / maxValue
}

// screen returns A + B - A*B.
func screen(a, b, _, _, maxValue float32) float32 {
	return a + b - a*b/maxValue
}

// exclusion returns A + B - 2*A*B.
func exclusion(a, b, _, _, maxValue float32) float32 {
	return a + b - 2*a*b/maxValue
}

// divide returns A / B, or 0 when B <= 0.
func divide(a, b, _, _, maxValue float32) float32 {
	if b <= 0 {
		return 0
	}
	return a * maxValue / b
}

// geometric returns the harmonic-style mean 2*A*B / (A + B), or 0 when
// A + B <= 0.
func geometric(a, b, _, _, _ float32) float32 {
	if a+b <= 0 {
		return 0
	}
	return 2 * a * b / (a + b)
}

// hypot returns sqrt(A*A + B*B).
func hypot(a, b, _, _, _ float32) float32 {
	return float32(math.Hypot(float64(a), float64(b)))
}

// hardLight multiplies when A is below half intensity and screens otherwise.
// Formula: 2*A*B if A < 0.5, else 1 - 2*(1-A)*(1-B)
func hardLight(a, b, _, _, maxValue float32) float32 {
	if a < maxValue/2 {
		return 2 * a * b / maxValue
	}
	return maxValue - 2*(maxValue-a)*(maxValue-b)/maxValue
}

// overlay is hard-light with the roles of A and B exchanged.
// Formula: 2*A*B if 2B <= 1, else 1 - 2*(1-B)*(1-A)
func overlay(a, b, _, _, maxValue float32) float32 {
	an := a / maxValue
	bn := b / maxValue
	if 2*bn <= 1 {
		return maxValue * (2 * an * bn)
	}
	return maxValue * (1 - 2*(1-bn)*(1-an))
}

// softLight darkens or lightens B depending on A.
//
//	2A <= 1:            B - (1-2A)*B*(1-B)
//	2A > 1, 4B <= 1:    B + (2A-1)*(((16B-12)*B+4)*B - B)
//	2A > 1, 4B > 1:     B + (2A-1)*(sqrt(B) - B)
func softLight(a, b, _, _, maxValue float32) float32 {
	an := float64(a / maxValue)
	bn := float64(b / maxValue)
	switch {
	case 2*an <= 1:
		return maxValue * float32(bn-(1-2*an)*bn*(1-bn))
	case 4*bn <= 1:
		return maxValue * float32(bn+(2*an-1)*(((16*bn-12)*bn+4)*bn-bn))
	default:
		return maxValue * float32(bn+(2*an-1)*(math.Sqrt(bn)-bn))
	}
}

// colorDodge brightens B by the inverse of A.
// Formula: min(1, B / (1 - A)); A when A >= 1.
func colorDodge(a, b, _, _, maxValue float32) float32 {
	if a >= maxValue {
		return a
	}
	return min(maxValue, maxValue*b/(maxValue-a))
}

// colorBurn darkens B by A.
// Formula: max(0, 1 - (1 - B) / A); A when A <= 0.
func colorBurn(a, b, _, _, maxValue float32) float32 {
	if a <= 0 {
		return a
	}
	return max(0, maxValue-maxValue*(maxValue-b)/a)
}

// pinLight replaces B with A where A is more extreme.
// Formula: max(B, 2A - 1) if A >= 0.5, else min(B, 2A)
func pinLight(a, b, _, _, maxValue float32) float32 {
	half := maxValue / 2
	if a >= half {
		return max(b, (a-half)*2)
	}
	return min(b, a*2)
}

// reflect brightens A by B.
// Formula: min(1, A*A / (1 - B)); 1 when B >= 1.
func reflect(a, b, _, _, maxValue float32) float32 {
	if b >= maxValue {
		return maxValue
	}
	return min(maxValue, a*a/(maxValue-b))
}

// freeze is the inverse of reflect with the roles exchanged.
// Formula: max(0, 1 - sqrt(max(0, 1 - A)) / B); 0 when B <= 0.
func freeze(a, b, _, _, maxValue float32) float32 {
	if b <= 0 {
		return 0
	}
	an := float64(a / maxValue)
	bn := float64(b / maxValue)
	r := 1 - math.Sqrt(math.Max(0, 1-an))/bn
	return maxValue * float32(math.Max(0, r))
}

// interpolated is a cosine blend of A and B.
// Formula: 0.5 - 0.25*cos(pi*A) - 0.25*cos(pi*B)
func interpolated(a, b, _, _, maxValue float32) float32 {
	an := float64(a / maxValue)
	bn := float64(b / maxValue)
	return maxValue * float32(0.5-0.25*math.Cos(math.Pi*an)-0.25*math.Cos(math.Pi*bn))
}

// grainExtract returns B - A + 0.5.
func grainExtract(a, b, _, _, maxValue float32) float32 {
	return b - a + maxValue/2
}

// grainMerge returns B + A - 0.5.
func grainMerge(a, b, _, _, maxValue float32) float32 {
	return b + a - maxValue/2
}
