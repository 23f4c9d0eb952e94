// Package image provides the pixel buffer view and boundary addressing used
// by the processing kernels.
//
// A Buffer describes host-owned pixel memory: a byte slice, a half-open
// bounds rectangle, a component layout, a bit depth and a row stride. All
// access goes through bounds-checked helpers instead of raw offsets.
package image

// Format is the component layout of a pixel.
type Format uint8

const (
	// FormatNone is the zero value and is never valid.
	FormatNone Format = iota

	// FormatAlpha is a single alpha component.
	FormatAlpha

	// FormatRGB is three colour components without alpha.
	FormatRGB

	// FormatRGBA is three colour components followed by alpha.
	FormatRGBA

	formatCount
)

// Components returns the number of components per pixel, or 0 for an
// unknown format.
func (f Format) Components() int {
	switch f {
	case FormatAlpha:
		return 1
	case FormatRGB:
		return 3
	case FormatRGBA:
		return 4
	default:
		return 0
	}
}

// HasAlpha reports whether the format carries an alpha component.
func (f Format) HasAlpha() bool {
	return f == FormatAlpha || f == FormatRGBA
}

// AlphaIndex returns the component index of alpha, or -1.
func (f Format) AlphaIndex() int {
	switch f {
	case FormatAlpha:
		return 0
	case FormatRGBA:
		return 3
	default:
		return -1
	}
}

// IsValid returns true if the format is a known layout.
func (f Format) IsValid() bool {
	return f > FormatNone && f < formatCount
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatAlpha:
		return "Alpha"
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

// Depth is the storage type of one component.
type Depth uint8

const (
	// DepthNone is the zero value and is never valid.
	DepthNone Depth = iota

	// DepthUByte is 8-bit unsigned integer, max 255.
	DepthUByte

	// DepthUShort is 16-bit unsigned integer, max 65535.
	DepthUShort

	// DepthHalf is IEEE 754 binary16, nominal max 1.
	DepthHalf

	// DepthFloat is IEEE 754 binary32, nominal max 1.
	DepthFloat

	depthCount
)

// DepthInfo contains metadata about a component depth.
type DepthInfo struct {
	// Bytes is the storage size of one component.
	Bytes int

	// Max is the value that represents full intensity.
	Max float32

	// Integer indicates that stored values are rounded and clamped to [0, Max].
	Integer bool
}

var depthInfoTable = [depthCount]DepthInfo{
	DepthUByte:  {Bytes: 1, Max: 255, Integer: true},
	DepthUShort: {Bytes: 2, Max: 65535, Integer: true},
	DepthHalf:   {Bytes: 2, Max: 1},
	DepthFloat:  {Bytes: 4, Max: 1},
}

// Info returns the DepthInfo for this depth.
func (d Depth) Info() DepthInfo {
	if d >= depthCount {
		return DepthInfo{}
	}
	return depthInfoTable[d]
}

// Bytes returns the number of bytes per component.
func (d Depth) Bytes() int {
	return d.Info().Bytes
}

// Max returns the full-intensity value for this depth.
func (d Depth) Max() float32 {
	return d.Info().Max
}

// IsInteger reports whether values of this depth are clamped on store.
func (d Depth) IsInteger() bool {
	return d.Info().Integer
}

// IsValid returns true if the depth is a known storage type.
func (d Depth) IsValid() bool {
	return d > DepthNone && d < depthCount
}

// String returns a string representation of the depth.
func (d Depth) String() string {
	switch d {
	case DepthUByte:
		return "UByte"
	case DepthUShort:
		return "UShort"
	case DepthHalf:
		return "Half"
	case DepthFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// PixelBytes returns the number of bytes one pixel of format f at depth d
// occupies.
func PixelBytes(f Format, d Depth) int {
	return f.Components() * d.Bytes()
}
