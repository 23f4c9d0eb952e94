package kernel

import "github.com/NatronGitHub/openfx-supportext-sub000/internal/image"

// FillBlack writes zero to every byte of every pixel of band in dst.
func FillBlack(dst *image.Buffer, band image.Rect, aborted func() bool) {
	for y := band.Y1; y < band.Y2; y++ {
		if aborted() {
			return
		}
		clear(dst.Span(y, band.X1, band.X2))
	}
}

// Copy copies src into band of dst. src and dst must share format and depth.
//
// Each destination row is resolved through src's boundary mode. The columns
// that fall inside src are copied with a single block copy; columns left and
// right of src are zero under BoundaryBlack and the replicated or wrapped
// edge pixel under BoundaryClamp and BoundaryPeriodic. A nil src fills the
// band with black.
func Copy(dst, src *image.Buffer, band image.Rect, aborted func() bool) {
	if src == nil {
		FillBlack(dst, band, aborted)
		return
	}

	pb := dst.PixelBytes()

	// Columns of band that lie inside src. When band and src do not overlap
	// horizontally every column goes through the left edge loop.
	ix1 := max(band.X1, src.Bounds.X1)
	ix2 := min(band.X2, src.Bounds.X2)
	if ix2 <= ix1 {
		ix1, ix2 = band.X2, band.X2
	}

	for y := band.Y1; y < band.Y2; y++ {
		if aborted() {
			return
		}
		row := dst.Span(y, band.X1, band.X2)

		sy, ok := image.ResolveY(y, src.Bounds, src.Boundary)
		if !ok {
			clear(row)
			continue
		}

		left := row[:(ix1-band.X1)*pb]
		right := row[(ix2-band.X1)*pb:]
		if ix2 > ix1 {
			copy(row[(ix1-band.X1)*pb:(ix2-band.X1)*pb], src.Span(sy, ix1, ix2))
		}

		if src.Boundary == image.BoundaryBlack {
			clear(left)
			clear(right)
			continue
		}
		copyEdge(left, src, sy, band.X1, pb)
		copyEdge(right, src, sy, ix2, pb)
	}
}

// copyEdge fills seg, which starts at column x0, pixel by pixel with the
// src pixels resolved from each column.
func copyEdge(seg []byte, src *image.Buffer, sy, x0, pb int) {
	for i := 0; i < len(seg); i += pb {
		sx, ok := image.ResolveX(x0+i/pb, src.Bounds, src.Boundary)
		if !ok {
			clear(seg[i : i+pb])
			continue
		}
		copy(seg[i:i+pb], src.Span(sy, sx, sx+1))
	}
}
