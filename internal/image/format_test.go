package image

import "testing"

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format     Format
		components int
		hasAlpha   bool
		alphaIndex int
		valid      bool
		name       string
	}{
		{FormatNone, 0, false, -1, false, "Unknown"},
		{FormatAlpha, 1, true, 0, true, "Alpha"},
		{FormatRGB, 3, false, -1, true, "RGB"},
		{FormatRGBA, 4, true, 3, true, "RGBA"},
		{Format(200), 0, false, -1, false, "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.Components(); got != tt.components {
				t.Errorf("Components() = %d, want %d", got, tt.components)
			}
			if got := tt.format.HasAlpha(); got != tt.hasAlpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.hasAlpha)
			}
			if got := tt.format.AlphaIndex(); got != tt.alphaIndex {
				t.Errorf("AlphaIndex() = %d, want %d", got, tt.alphaIndex)
			}
			if got := tt.format.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestDepthInfo(t *testing.T) {
	tests := []struct {
		depth   Depth
		bytes   int
		max     float32
		integer bool
		name    string
	}{
		{DepthUByte, 1, 255, true, "UByte"},
		{DepthUShort, 2, 65535, true, "UShort"},
		{DepthHalf, 2, 1, false, "Half"},
		{DepthFloat, 4, 1, false, "Float"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.depth.IsValid() {
				t.Fatal("IsValid() = false")
			}
			if got := tt.depth.Bytes(); got != tt.bytes {
				t.Errorf("Bytes() = %d, want %d", got, tt.bytes)
			}
			if got := tt.depth.Max(); got != tt.max {
				t.Errorf("Max() = %v, want %v", got, tt.max)
			}
			if got := tt.depth.IsInteger(); got != tt.integer {
				t.Errorf("IsInteger() = %v, want %v", got, tt.integer)
			}
			if got := tt.depth.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}

	if DepthNone.IsValid() || Depth(77).IsValid() {
		t.Error("invalid depths reported valid")
	}
	if got := Depth(77).Bytes(); got != 0 {
		t.Errorf("unknown depth Bytes() = %d", got)
	}
}

func TestPixelBytes(t *testing.T) {
	if got := PixelBytes(FormatRGBA, DepthFloat); got != 16 {
		t.Errorf("PixelBytes(RGBA, Float) = %d, want 16", got)
	}
	if got := PixelBytes(FormatRGB, DepthHalf); got != 6 {
		t.Errorf("PixelBytes(RGB, Half) = %d, want 6", got)
	}
	if got := PixelBytes(FormatAlpha, DepthUByte); got != 1 {
		t.Errorf("PixelBytes(Alpha, UByte) = %d, want 1", got)
	}
}

func TestRect(t *testing.T) {
	r := R(1, 2, 5, 4)
	if r.Width() != 4 || r.Height() != 2 || r.Area() != 8 {
		t.Errorf("size = %dx%d area %d", r.Width(), r.Height(), r.Area())
	}
	if r.Empty() {
		t.Error("Empty() = true")
	}
	if !r.Contains(1, 2) || r.Contains(5, 2) || r.Contains(1, 4) {
		t.Error("Contains is not half-open")
	}
	if !r.ContainsRect(R(2, 2, 5, 3)) || r.ContainsRect(R(0, 2, 3, 3)) {
		t.Error("ContainsRect mismatch")
	}
	if !r.ContainsRect(R(5, 4, 5, 4)) {
		t.Error("empty corner rect should be contained")
	}
	if got := r.Intersect(R(3, 0, 10, 3)); got != R(3, 2, 5, 3) {
		t.Errorf("Intersect = %v", got)
	}
	if got := r.Intersect(R(10, 10, 12, 12)); !got.Empty() {
		t.Errorf("disjoint Intersect = %v", got)
	}
	if R(3, 3, 1, 1).Width() != 0 {
		t.Error("inverted Width should be 0")
	}
	if s := r.String(); s != "[1,5)x[2,4)" {
		t.Errorf("String() = %q", s)
	}
}
