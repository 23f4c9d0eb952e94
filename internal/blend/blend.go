// Package blend implements the merge operators used to composite an image A
// onto a background B.
//
// Every operator works on premultiplied component values in pixel units,
// where max is the value of full intensity for the storage depth (255 for
// 8-bit, 65535 for 16-bit, 1 for half and float). Operators are pure and
// total: every edge of their domain is guarded by an explicit branch.
//
// Operators are classified by two properties:
//   - separable: each component is computed independently of the others;
//     non-separable operators (hue, saturation, color, luminosity) need the
//     whole RGB triplet
//   - maskable: the operator is meaningful under alpha masking, where alpha
//     is forced to the union a + b - a*b/max
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - pixman pixman-combine-float.c (non-separable modes)
package blend

import (
	"strings"

	"github.com/samber/lo"
)

// Op identifies a merge operator.
type Op uint8

const (
	OpOver          Op = iota // A + B*(1-a) [default]
	OpAtop                    // A*b + B*(1-a)
	OpAverage                 // (A + B) / 2
	OpColorBurn               // darken B to reflect A
	OpColorDodge              // brighten B to reflect A
	OpConjointOver            // A + B*(1-a/b), A if a > b
	OpCopy                    // A
	OpDifference              // |A - B|
	OpDisjointOver            // A + B if a+b < 1, else A + B*(1-a)/b
	OpDivide                  // A / B, 0 if B <= 0
	OpExclusion               // A + B - 2*A*B
	OpFreeze                  // 1 - sqrt(1-A)/B
	OpFrom                    // B - A
	OpGeometric               // 2*A*B / (A + B)
	OpGrainExtract            // B - A + 0.5
	OpGrainMerge              // B + A - 0.5
	OpHardLight               // multiply if A < 0.5, else screen
	OpHypot                   // sqrt(A*A + B*B)
	OpIn                      // A*b
	OpInterpolated            // 0.5 - 0.25*cos(pi*A) - 0.25*cos(pi*B)
	OpMask                    // B*a
	OpMatte                   // A*a + B*(1-a)
	OpLighten                 // max(A, B)
	OpDarken                  // min(A, B)
	OpMinus                   // A - B
	OpMultiply                // A*B
	OpOut                     // A*(1-b)
	OpOverlay                 // multiply if B < 0.5, else screen
	OpPinLight                // max(B, 2A-1) if A >= 0.5, else min(B, 2A)
	OpPlus                    // A + B
	OpReflect                 // A*A / (1-B)
	OpScreen                  // A + B - A*B
	OpSoftLight               // soft version of hard-light
	OpStencil                 // B*(1-a)
	OpUnder                   // A*(1-b) + B
	OpXor                     // A*(1-b) + B*(1-a)
	OpHue                     // hue of A, saturation and luminosity of B
	OpSaturation              // saturation of A, hue and luminosity of B
	OpColor                   // hue and saturation of A, luminosity of B
	OpLuminosity              // luminosity of A, hue and saturation of B

	opCount
)

// ChannelFunc computes one merged component from the A and B component
// values and the alphas of both pixels. All values are in pixel units.
type ChannelFunc func(a, b, alphaA, alphaB, maxValue float32) float32

// opInfo describes one table entry.
type opInfo struct {
	name      string
	fn        ChannelFunc // nil for non-separable operators
	maskable  bool
	separable bool
}

// opTable maps every operator to its implementation and properties.
var opTable = [opCount]opInfo{
	OpOver:          {name: "over", fn: over, separable: true},
	OpAtop:          {name: "atop", fn: atop, separable: true},
	OpAverage:       {name: "average", fn: average, separable: true, maskable: true},
	OpColorBurn:     {name: "color-burn", fn: colorBurn, separable: true, maskable: true},
	OpColorDodge:    {name: "color-dodge", fn: colorDodge, separable: true, maskable: true},
	OpConjointOver:  {name: "conjoint-over", fn: conjointOver, separable: true},
	OpCopy:          {name: "copy", fn: copyA, separable: true},
	OpDifference:    {name: "difference", fn: difference, separable: true, maskable: true},
	OpDisjointOver:  {name: "disjoint-over", fn: disjointOver, separable: true},
	OpDivide:        {name: "divide", fn: divide, separable: true, maskable: true},
	OpExclusion:     {name: "exclusion", fn: exclusion, separable: true, maskable: true},
	OpFreeze:        {name: "freeze", fn: freeze, separable: true, maskable: true},
	OpFrom:          {name: "from", fn: from, separable: true, maskable: true},
	OpGeometric:     {name: "geometric", fn: geometric, separable: true, maskable: true},
	OpGrainExtract:  {name: "grain-extract", fn: grainExtract, separable: true, maskable: true},
	OpGrainMerge:    {name: "grain-merge", fn: grainMerge, separable: true, maskable: true},
	OpHardLight:     {name: "hard-light", fn: hardLight, separable: true, maskable: true},
	OpHypot:         {name: "hypot", fn: hypot, separable: true, maskable: true},
	OpIn:            {name: "in", fn: in, separable: true},
	OpInterpolated:  {name: "interpolated", fn: interpolated, separable: true, maskable: true},
	OpMask:          {name: "mask", fn: mask, separable: true},
	OpMatte:         {name: "matte", fn: matte, separable: true},
	OpLighten:       {name: "lighten", fn: lighten, separable: true, maskable: true},
	OpDarken:        {name: "darken", fn: darken, separable: true, maskable: true},
	OpMinus:         {name: "minus", fn: minus, separable: true, maskable: true},
	OpMultiply:      {name: "multiply", fn: multiply, separable: true, maskable: true},
	OpOut:           {name: "out", fn: out, separable: true},
	OpOverlay:       {name: "overlay", fn: overlay, separable: true, maskable: true},
	OpPinLight:      {name: "pinlight", fn: pinLight, separable: true, maskable: true},
	OpPlus:          {name: "plus", fn: plus, separable: true, maskable: true},
	OpReflect:       {name: "reflect", fn: reflect, separable: true, maskable: true},
	OpScreen:        {name: "screen", fn: screen, separable: true, maskable: true},
	OpSoftLight:     {name: "soft-light", fn: softLight, separable: true, maskable: true},
	OpStencil:       {name: "stencil", fn: stencil, separable: true},
	OpUnder:         {name: "under", fn: under, separable: true},
	OpXor:           {name: "xor", fn: xor, separable: true},
	OpHue:           {name: "hue", maskable: true},
	OpSaturation:    {name: "saturation", maskable: true},
	OpColor:         {name: "color", maskable: true},
	OpLuminosity:    {name: "luminosity", maskable: true},
}

// aliases are accepted by ParseOp in addition to the canonical names.
var aliases = map[string]Op{
	"max":       OpLighten,
	"min":       OpDarken,
	"pin-light": OpPinLight,
}

var byName = lo.SliceToMap(All(), func(op Op) (string, Op) {
	return op.String(), op
})

// All returns every operator in enum order.
func All() []Op {
	ops := make([]Op, opCount)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// Names returns the canonical name of every operator in enum order.
func Names() []string {
	return lo.Map(All(), func(op Op, _ int) string {
		return op.String()
	})
}

// ParseOp looks an operator up by name. Matching ignores case and surrounding
// space; "max", "min" and "pin-light" are accepted as aliases.
func ParseOp(name string) (Op, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if op, ok := byName[key]; ok {
		return op, true
	}
	op, ok := aliases[key]
	return op, ok
}

// IsValid returns true if op is a known operator.
func (op Op) IsValid() bool {
	return op < opCount
}

// String returns the canonical operator name, or "unknown".
func (op Op) String() string {
	if !op.IsValid() {
		return "unknown"
	}
	return opTable[op].name
}

// Separable reports whether op computes each component independently.
func (op Op) Separable() bool {
	return op.IsValid() && opTable[op].separable
}

// Maskable reports whether op is meaningful under alpha masking. The
// Porter-Duff operators and copy already define the output alpha and are
// not maskable.
func (op Op) Maskable() bool {
	return op.IsValid() && opTable[op].maskable
}

// Func returns the per-component function of a separable operator, or nil.
func (op Op) Func() ChannelFunc {
	if !op.IsValid() {
		return nil
	}
	return opTable[op].fn
}

// Merge evaluates a separable operator on one component. Non-separable and
// unknown operators return a unchanged; use MergePixel for those.
func Merge(op Op, a, b, alphaA, alphaB, maxValue float32) float32 {
	fn := op.Func()
	if fn == nil {
		return a
	}
	return fn(a, b, alphaA, alphaB, maxValue)
}
