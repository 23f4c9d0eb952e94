package image

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/x448/float16"
)

// Common errors for buffer validation.
var (
	// ErrUnsupportedFormat is returned when the component layout or depth is
	// not one of the supported combinations.
	ErrUnsupportedFormat = errors.New("image: unsupported pixel format or depth")

	// ErrInvalidBounds is returned when the bounds rectangle is inverted.
	ErrInvalidBounds = errors.New("image: invalid bounds")

	// ErrInvalidStride is returned when the row stride is less than the row size.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when the data slice cannot hold the bounds.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// Buffer is a borrowed view over host-owned pixel memory.
//
// Pixel (x, y) of Bounds starts at byte (y-Bounds.Y1)*RowBytes +
// (x-Bounds.X1)*PixelBytes. Components are stored little-endian in R, G, B, A
// order. The kernels never grow, shrink or retain Data.
//
// Thread safety: concurrent reads are safe. Concurrent writes are safe only
// to disjoint rows.
type Buffer struct {
	Data     []byte
	Bounds   Rect
	Format   Format
	Depth    Depth
	RowBytes int
	Boundary BoundaryMode
}

// NewBuffer allocates a tightly packed buffer covering bounds. It is a
// convenience for callers and tests; the kernels never call it.
func NewBuffer(bounds Rect, format Format, depth Depth) *Buffer {
	rowBytes := bounds.Width() * PixelBytes(format, depth)
	return &Buffer{
		Data:     make([]byte, rowBytes*bounds.Height()),
		Bounds:   bounds,
		Format:   format,
		Depth:    depth,
		RowBytes: rowBytes,
	}
}

// Validate checks that the descriptor is internally consistent.
func (b *Buffer) Validate() error {
	if !b.Format.IsValid() || !b.Depth.IsValid() {
		return fmt.Errorf("%w: %v/%v", ErrUnsupportedFormat, b.Format, b.Depth)
	}
	if b.Bounds.X2 < b.Bounds.X1 || b.Bounds.Y2 < b.Bounds.Y1 {
		return fmt.Errorf("%w: %v", ErrInvalidBounds, b.Bounds)
	}
	rowSize := b.Bounds.Width() * b.PixelBytes()
	if b.RowBytes < rowSize {
		return fmt.Errorf("%w: %d < %d", ErrInvalidStride, b.RowBytes, rowSize)
	}
	if h := b.Bounds.Height(); h > 0 && rowSize > 0 {
		need := (h-1)*b.RowBytes + rowSize
		if len(b.Data) < need {
			return fmt.Errorf("%w: %d < %d", ErrDataTooSmall, len(b.Data), need)
		}
	}
	return nil
}

// Components returns the number of components per pixel.
func (b *Buffer) Components() int {
	return b.Format.Components()
}

// PixelBytes returns the number of bytes per pixel.
func (b *Buffer) PixelBytes() int {
	return PixelBytes(b.Format, b.Depth)
}

// Max returns the full-intensity component value.
func (b *Buffer) Max() float32 {
	return b.Depth.Max()
}

// PixelOffset returns the byte offset of pixel (x, y) in Data.
// Returns false if the pixel is outside Bounds.
func (b *Buffer) PixelOffset(x, y int) (int, bool) {
	if !b.Bounds.Contains(x, y) {
		return 0, false
	}
	return (y-b.Bounds.Y1)*b.RowBytes + (x-b.Bounds.X1)*b.PixelBytes(), true
}

// Span returns the bytes of row y covering columns [x1, x2).
// Returns nil if the segment is not fully inside Bounds or is empty.
func (b *Buffer) Span(y, x1, x2 int) []byte {
	if x1 >= x2 || x1 < b.Bounds.X1 || x2 > b.Bounds.X2 || y < b.Bounds.Y1 || y >= b.Bounds.Y2 {
		return nil
	}
	pb := b.PixelBytes()
	start := (y-b.Bounds.Y1)*b.RowBytes + (x1-b.Bounds.X1)*pb
	return b.Data[start : start+(x2-x1)*pb]
}

// Pixel reads pixel (x, y) into px in component units (0..Max for integer
// depths). px must hold at least Components values.
// Returns false, leaving px untouched, if the pixel is outside Bounds.
func (b *Buffer) Pixel(x, y int, px []float32) bool {
	off, ok := b.PixelOffset(x, y)
	if !ok {
		return false
	}
	n := b.Components()
	size := b.Depth.Bytes()
	for c := range n {
		px[c] = loadComponent(b.Data[off+c*size:], b.Depth)
	}
	return true
}

// Sample reads pixel (x, y) after resolving it through the buffer's
// boundary mode. When the read resolves to none, or b is nil, the first
// Components (or all of px for a nil buffer) values are zeroed and Sample
// returns false.
func (b *Buffer) Sample(x, y int, px []float32) bool {
	if b == nil {
		clear(px)
		return false
	}
	rx, ry, ok := Resolve(x, y, b.Bounds, b.Boundary)
	if !ok {
		clear(px[:b.Components()])
		return false
	}
	return b.Pixel(rx, ry, px)
}

// SetPixel writes px to pixel (x, y). Integer depths round and clamp to
// [0, Max]; Half and Float store values unclamped.
// Returns false if the pixel is outside Bounds.
func (b *Buffer) SetPixel(x, y int, px []float32) bool {
	off, ok := b.PixelOffset(x, y)
	if !ok {
		return false
	}
	n := b.Components()
	size := b.Depth.Bytes()
	for c := range n {
		storeComponent(b.Data[off+c*size:], b.Depth, px[c])
	}
	return true
}

// loadComponent decodes one component from the front of p.
func loadComponent(p []byte, d Depth) float32 {
	switch d {
	case DepthUByte:
		return float32(p[0])
	case DepthUShort:
		return float32(binary.LittleEndian.Uint16(p))
	case DepthHalf:
		return float16.Frombits(binary.LittleEndian.Uint16(p)).Float32()
	case DepthFloat:
		return math.Float32frombits(binary.LittleEndian.Uint32(p))
	default:
		return 0
	}
}

// storeComponent encodes v to the front of p.
func storeComponent(p []byte, d Depth, v float32) {
	switch d {
	case DepthUByte:
		p[0] = uint8(ClampRound(v, 255))
	case DepthUShort:
		binary.LittleEndian.PutUint16(p, uint16(ClampRound(v, 65535)))
	case DepthHalf:
		binary.LittleEndian.PutUint16(p, float16.Fromfloat32(v).Bits())
	case DepthFloat:
		binary.LittleEndian.PutUint32(p, math.Float32bits(v))
	}
}

// ClampRound rounds v to the nearest integer and clamps it to [0, hi].
// NaN maps to 0.
func ClampRound(v, hi float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v >= hi {
		return hi
	}
	return float32(math.Round(float64(v)))
}

// ClampIfInt clamps v to [0, hi] when integer is true and returns v
// unchanged otherwise.
func ClampIfInt(v, hi float32, integer bool) float32 {
	if !integer {
		return v
	}
	if !(v > 0) {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
