package blend

import (
	"slices"
	"testing"
)

func TestOpTableComplete(t *testing.T) {
	seen := make(map[string]bool)
	for _, op := range All() {
		info := opTable[op]
		if info.name == "" {
			t.Errorf("op %d has no name", op)
		}
		if seen[info.name] {
			t.Errorf("duplicate name %q", info.name)
		}
		seen[info.name] = true
		if info.separable != (info.fn != nil) {
			t.Errorf("%v: separable=%v but fn set=%v", op, info.separable, info.fn != nil)
		}
	}
	if len(All()) != 40 {
		t.Errorf("len(All()) = %d, want 40", len(All()))
	}
}

func TestOpProperties(t *testing.T) {
	notMaskable := []Op{
		OpAtop, OpConjointOver, OpCopy, OpDisjointOver, OpIn, OpMask,
		OpMatte, OpOut, OpOver, OpStencil, OpUnder, OpXor,
	}
	nonSeparable := []Op{OpHue, OpSaturation, OpColor, OpLuminosity}

	for _, op := range All() {
		wantMaskable := !slices.Contains(notMaskable, op)
		if op.Maskable() != wantMaskable {
			t.Errorf("%v.Maskable() = %v, want %v", op, op.Maskable(), wantMaskable)
		}
		wantSeparable := !slices.Contains(nonSeparable, op)
		if op.Separable() != wantSeparable {
			t.Errorf("%v.Separable() = %v, want %v", op, op.Separable(), wantSeparable)
		}
	}

	bad := Op(200)
	if bad.IsValid() || bad.Separable() || bad.Maskable() || bad.Func() != nil {
		t.Error("unknown op reports properties")
	}
	if bad.String() != "unknown" {
		t.Errorf("unknown String() = %q", bad.String())
	}
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		in   string
		want Op
		ok   bool
	}{
		{"over", OpOver, true},
		{" Soft-Light ", OpSoftLight, true},
		{"color-dodge", OpColorDodge, true},
		{"max", OpLighten, true},
		{"min", OpDarken, true},
		{"pin-light", OpPinLight, true},
		{"luminosity", OpLuminosity, true},
		{"nope", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseOp(tt.in)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("ParseOp(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}

	for _, op := range All() {
		got, ok := ParseOp(op.String())
		if !ok || got != op {
			t.Errorf("ParseOp(%q) round trip = %v", op.String(), got)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(All()) {
		t.Fatalf("len(Names()) = %d", len(names))
	}
	if names[0] != "over" {
		t.Errorf("Names()[0] = %q, want over", names[0])
	}
}

func TestMerge_NonSeparableReturnsA(t *testing.T) {
	if got := Merge(OpHue, 0.3, 0.9, 1, 1, 1); got != 0.3 {
		t.Errorf("Merge(hue) = %v, want A", got)
	}
}
