package supportext

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/NatronGitHub/openfx-supportext-sub000/internal/kernel"
)

// ToImage converts b to an image.Image with the same bounds.
//
// 8-bit RGBA and Alpha buffers map to *image.RGBA and *image.Alpha with a
// row copy. Other Alpha buffers become *image.Alpha16 and everything else
// *image.RGBA64. RGBA buffers are taken as premultiplied, as image/color
// expects; RGB buffers are opaque.
func ToImage(b *Buffer) (image.Image, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if err := validate("buffer", b); err != nil {
		return nil, err
	}

	r := image.Rect(b.Bounds.X1, b.Bounds.Y1, b.Bounds.X2, b.Bounds.Y2)
	scale := 1 / b.Max()
	px := make([]float32, b.Components())

	switch {
	case b.Format == FormatRGBA && b.Depth == DepthUByte:
		img := image.NewRGBA(r)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			copy(img.Pix[img.PixOffset(r.Min.X, y):], b.Span(y, r.Min.X, r.Max.X))
		}
		return img, nil

	case b.Format == FormatAlpha && b.Depth == DepthUByte:
		img := image.NewAlpha(r)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			copy(img.Pix[img.PixOffset(r.Min.X, y):], b.Span(y, r.Min.X, r.Max.X))
		}
		return img, nil

	case b.Format == FormatAlpha:
		img := image.NewAlpha16(r)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				b.Pixel(x, y, px)
				img.SetAlpha16(x, y, color.Alpha16{A: to16(px[0] * scale)})
			}
		}
		return img, nil
	}

	img := image.NewRGBA64(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.Pixel(x, y, px)
			img.SetRGBA64(x, y, toRGBA64(px, b.Format, scale))
		}
	}
	return img, nil
}

// toRGBA64 converts one RGB or RGBA pixel. Color is limited to alpha so the
// result stays a valid premultiplied color.
func toRGBA64(px []float32, f Format, scale float32) color.RGBA64 {
	a := uint16(0xffff)
	if f == FormatRGBA {
		a = to16(px[3] * scale)
	}
	return color.RGBA64{
		R: min(to16(px[0]*scale), a),
		G: min(to16(px[1]*scale), a),
		B: min(to16(px[2]*scale), a),
		A: a,
	}
}

// to16 rounds a normalized value to a 16-bit component. NaN maps to 0.
func to16(v float32) uint16 {
	v = v*0xffff + 0.5
	if !(v > 0) {
		return 0
	}
	if v >= 0xffff {
		return 0xffff
	}
	return uint16(v)
}

// FromImage converts img to a new Buffer with the given format and depth.
//
// The image is first drawn into a premultiplied RGBA64 image with
// golang.org/x/image/draw, so any image.Image is accepted. RGBA buffers
// receive premultiplied color, RGB buffers the color composited on black and
// Alpha buffers the alpha only. An *image.RGBA converted to 8-bit RGBA is
// copied row by row.
func FromImage(img image.Image, f Format, d Depth) (*Buffer, error) {
	if !f.IsValid() || !d.IsValid() {
		return nil, fmt.Errorf("%w: %v/%v", ErrUnsupportedFormat, f, d)
	}

	r := img.Bounds()
	b := NewBuffer(R(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y), f, d)

	if src, ok := img.(*image.RGBA); ok && f == FormatRGBA && d == DepthUByte {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			copy(b.Span(y, r.Min.X, r.Max.X), src.Pix[src.PixOffset(r.Min.X, y):])
		}
		return b, nil
	}

	rgba := image.NewRGBA64(r)
	xdraw.Draw(rgba, r, img, r.Min, xdraw.Src)

	// Premult with straight color and full alpha stores the normalized
	// channels unchanged and only scales them to the target depth.
	var unp [4]float32
	px := make([]float32, f.Components())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := rgba.RGBA64At(x, y)
			unp = [4]float32{
				float32(c.R) / 0xffff,
				float32(c.G) / 0xffff,
				float32(c.B) / 0xffff,
				float32(c.A) / 0xffff,
			}
			kernel.Premult(unp, f, d, false, px)
			b.SetPixel(x, y, px)
		}
	}
	return b, nil
}

// Scale resamples img to w x h pixels with Catmull-Rom filtering. The result
// has its origin at (0, 0).
func Scale(img image.Image, w, h int) *image.RGBA64 {
	dst := image.NewRGBA64(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
