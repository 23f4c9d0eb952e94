package kernel

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/NatronGitHub/openfx-supportext-sub000/internal/image"
)

// TestCopy_BlackOutsideSource: 8-bit RGBA source [0,4)^2 copied into an
// [0,8)^2 window leaves every pixel outside [0,4)^2 at exactly zero.
func TestCopy_BlackOutsideSource(t *testing.T) {
	src := image.NewBuffer(image.R(0, 0, 4, 4), image.FormatRGBA, image.DepthUByte)
	gradient(src)
	dst := image.NewBuffer(image.R(0, 0, 8, 8), image.FormatRGBA, image.DepthUByte)
	for i := range dst.Data {
		dst.Data[i] = 0xAB
	}

	Copy(dst, src, dst.Bounds, never)

	for y := range 8 {
		for x := range 8 {
			got := pixelAt(t, dst, x, y)
			if x < 4 && y < 4 {
				if diff := cmp.Diff(pixelAt(t, src, x, y), got); diff != "" {
					t.Fatalf("(%d,%d) inside mismatch:\n%s", x, y, diff)
				}
				continue
			}
			if diff := cmp.Diff([]float32{0, 0, 0, 0}, got); diff != "" {
				t.Fatalf("(%d,%d) outside not black:\n%s", x, y, diff)
			}
		}
	}
}

func TestCopy_Clamp(t *testing.T) {
	src := image.NewBuffer(image.R(2, 2, 5, 4), image.FormatRGB, image.DepthUShort)
	gradient(src)
	src.Boundary = image.BoundaryClamp
	dst := image.NewBuffer(image.R(0, 0, 8, 7), image.FormatRGB, image.DepthUShort)

	Copy(dst, src, dst.Bounds, never)

	for y := range 7 {
		for x := range 8 {
			sx := min(max(x, 2), 4)
			sy := min(max(y, 2), 3)
			if diff := cmp.Diff(pixelAt(t, src, sx, sy), pixelAt(t, dst, x, y)); diff != "" {
				t.Fatalf("(%d,%d) != src(%d,%d):\n%s", x, y, sx, sy, diff)
			}
		}
	}
}

func TestCopy_Periodic(t *testing.T) {
	src := image.NewBuffer(image.R(0, 0, 3, 2), image.FormatRGBA, image.DepthFloat)
	gradient(src)
	src.Boundary = image.BoundaryPeriodic
	dst := image.NewBuffer(image.R(-4, -3, 7, 5), image.FormatRGBA, image.DepthFloat)

	Copy(dst, src, dst.Bounds, never)

	for y := -3; y < 5; y++ {
		for x := -4; x < 7; x++ {
			sx := ((x % 3) + 3) % 3
			sy := ((y % 2) + 2) % 2
			if diff := cmp.Diff(pixelAt(t, src, sx, sy), pixelAt(t, dst, x, y)); diff != "" {
				t.Fatalf("(%d,%d) != src(%d,%d):\n%s", x, y, sx, sy, diff)
			}
		}
	}
}

func TestCopy_NoHorizontalOverlap(t *testing.T) {
	src := image.NewBuffer(image.R(10, 0, 12, 2), image.FormatAlpha, image.DepthUByte)
	gradient(src)
	dst := image.NewBuffer(image.R(0, 0, 4, 2), image.FormatAlpha, image.DepthUByte)

	src.Boundary = image.BoundaryClamp
	Copy(dst, src, dst.Bounds, never)
	for x := range 4 {
		if got, want := pixelAt(t, dst, x, 1)[0], pixelAt(t, src, 10, 1)[0]; got != want {
			t.Errorf("clamp (%d,1) = %v, want %v", x, got, want)
		}
	}

	src.Boundary = image.BoundaryBlack
	Copy(dst, src, dst.Bounds, never)
	if !bytes.Equal(dst.Data, make([]byte, len(dst.Data))) {
		t.Error("black copy without overlap left data")
	}
}

func TestCopy_BandOnly(t *testing.T) {
	src := image.NewBuffer(image.R(0, 0, 6, 6), image.FormatRGBA, image.DepthUByte)
	gradient(src)
	dst := image.NewBuffer(image.R(0, 0, 6, 6), image.FormatRGBA, image.DepthUByte)

	band := image.R(1, 2, 5, 4)
	Copy(dst, src, band, never)

	for y := range 6 {
		for x := range 6 {
			got := pixelAt(t, dst, x, y)
			if band.Contains(x, y) {
				if diff := cmp.Diff(pixelAt(t, src, x, y), got); diff != "" {
					t.Fatalf("(%d,%d) in band mismatch:\n%s", x, y, diff)
				}
			} else if got[3] != 0 {
				t.Fatalf("(%d,%d) outside band was written", x, y)
			}
		}
	}
}

func TestCopy_NilSourceFillsBlack(t *testing.T) {
	dst := image.NewBuffer(image.R(0, 0, 3, 3), image.FormatRGB, image.DepthHalf)
	for i := range dst.Data {
		dst.Data[i] = 0x3c
	}
	Copy(dst, nil, dst.Bounds, never)
	if !bytes.Equal(dst.Data, make([]byte, len(dst.Data))) {
		t.Error("nil source did not fill black")
	}
}

func TestCopy_AbortStopsRows(t *testing.T) {
	src := image.NewBuffer(image.R(0, 0, 4, 4), image.FormatAlpha, image.DepthUByte)
	gradient(src)
	dst := image.NewBuffer(image.R(0, 0, 4, 4), image.FormatAlpha, image.DepthUByte)

	rows := 0
	Copy(dst, src, dst.Bounds, func() bool {
		rows++
		return rows > 2
	})

	for y := range 4 {
		written := dst.Span(y, 0, 4)[0] != 0
		if y < 2 && !written {
			t.Errorf("row %d not written before abort", y)
		}
		if y >= 2 && written {
			t.Errorf("row %d written after abort", y)
		}
	}
}

func TestFillBlack(t *testing.T) {
	dst := image.NewBuffer(image.R(0, 0, 4, 4), image.FormatRGBA, image.DepthUShort)
	for i := range dst.Data {
		dst.Data[i] = 0xff
	}
	FillBlack(dst, image.R(0, 1, 4, 3), never)
	for y := range 4 {
		zero := bytes.Equal(dst.Span(y, 0, 4), make([]byte, 4*8))
		if (y == 1 || y == 2) != zero {
			t.Errorf("row %d zero=%v", y, zero)
		}
	}
}

func BenchmarkCopy(b *testing.B) {
	src := image.NewBuffer(image.R(0, 0, 1920, 1080), image.FormatRGBA, image.DepthUByte)
	dst := image.NewBuffer(image.R(-64, -64, 1984, 1144), image.FormatRGBA, image.DepthUByte)
	src.Boundary = image.BoundaryClamp
	b.ResetTimer()
	for range b.N {
		Copy(dst, src, dst.Bounds, never)
	}
}
