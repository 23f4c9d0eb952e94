package supportext

import (
	"github.com/NatronGitHub/openfx-supportext-sub000/internal/blend"
	"github.com/NatronGitHub/openfx-supportext-sub000/internal/image"
	"github.com/NatronGitHub/openfx-supportext-sub000/internal/kernel"
	"github.com/NatronGitHub/openfx-supportext-sub000/internal/parallel"
)

// Image types re-exported from internal/image.
type (
	// Buffer is a caller-owned pixel buffer descriptor.
	Buffer = image.Buffer

	// Rect is an integer half-open rectangle [X1,X2) x [Y1,Y2).
	Rect = image.Rect

	// Format is the channel layout of a pixel.
	Format = image.Format

	// Depth is the storage type of one component.
	Depth = image.Depth

	// BoundaryMode selects how reads outside a buffer's bounds resolve.
	BoundaryMode = image.BoundaryMode
)

// Pixel formats.
const (
	FormatNone  = image.FormatNone
	FormatAlpha = image.FormatAlpha
	FormatRGB   = image.FormatRGB
	FormatRGBA  = image.FormatRGBA
)

// Component depths.
const (
	DepthNone   = image.DepthNone
	DepthUByte  = image.DepthUByte
	DepthUShort = image.DepthUShort
	DepthHalf   = image.DepthHalf
	DepthFloat  = image.DepthFloat
)

// Boundary modes.
const (
	BoundaryBlack    = image.BoundaryBlack
	BoundaryClamp    = image.BoundaryClamp
	BoundaryPeriodic = image.BoundaryPeriodic
)

// R returns the rectangle [x1,x2) x [y1,y2).
func R(x1, y1, x2, y2 int) Rect { return image.R(x1, y1, x2, y2) }

// NewBuffer allocates a tightly packed buffer covering bounds.
func NewBuffer(bounds Rect, f Format, d Depth) *Buffer { return image.NewBuffer(bounds, f, d) }

// Abort is a cooperative cancellation flag polled once per output row.
type Abort = parallel.Abort

// PixelFunc transforms one normalized, unpremultiplied RGBA pixel in place.
// It is called concurrently from several bands.
type PixelFunc = kernel.PixelFunc

// Op is a merge operator.
type Op = blend.Op

// Merge operators.
const (
	OpOver         = blend.OpOver
	OpAtop         = blend.OpAtop
	OpAverage      = blend.OpAverage
	OpColorBurn    = blend.OpColorBurn
	OpColorDodge   = blend.OpColorDodge
	OpConjointOver = blend.OpConjointOver
	OpCopy         = blend.OpCopy
	OpDifference   = blend.OpDifference
	OpDisjointOver = blend.OpDisjointOver
	OpDivide       = blend.OpDivide
	OpExclusion    = blend.OpExclusion
	OpFreeze       = blend.OpFreeze
	OpFrom         = blend.OpFrom
	OpGeometric    = blend.OpGeometric
	OpGrainExtract = blend.OpGrainExtract
	OpGrainMerge   = blend.OpGrainMerge
	OpHardLight    = blend.OpHardLight
	OpHypot        = blend.OpHypot
	OpIn           = blend.OpIn
	OpInterpolated = blend.OpInterpolated
	OpMask         = blend.OpMask
	OpMatte        = blend.OpMatte
	OpLighten      = blend.OpLighten
	OpDarken       = blend.OpDarken
	OpMinus        = blend.OpMinus
	OpMultiply     = blend.OpMultiply
	OpOut          = blend.OpOut
	OpOverlay      = blend.OpOverlay
	OpPinLight     = blend.OpPinLight
	OpPlus         = blend.OpPlus
	OpReflect      = blend.OpReflect
	OpScreen       = blend.OpScreen
	OpSoftLight    = blend.OpSoftLight
	OpStencil      = blend.OpStencil
	OpUnder        = blend.OpUnder
	OpXor          = blend.OpXor
	OpHue          = blend.OpHue
	OpSaturation   = blend.OpSaturation
	OpColor        = blend.OpColor
	OpLuminosity   = blend.OpLuminosity
)

// ParseOp returns the operator named name.
func ParseOp(name string) (Op, bool) { return blend.ParseOp(name) }

// Ops returns every operator in declaration order.
func Ops() []Op { return blend.All() }

// Names returns the names of every merge operator in declaration order.
func Names() []string { return blend.Names() }
