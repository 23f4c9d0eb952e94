package supportext

import (
	"runtime"
	"testing"

	"github.com/NatronGitHub/openfx-supportext-sub000/internal/parallel"
)

func TestNewEngineDefault(t *testing.T) {
	e := NewEngine()
	defer e.Close()

	if got, want := e.MaxWorkers(), runtime.GOMAXPROCS(0); got != want {
		t.Errorf("MaxWorkers() = %d, want %d", got, want)
	}
	if e.grain != 0 {
		t.Errorf("grain = %d, want 0 (parallel.MinPixelsPerWorker)", e.grain)
	}
}

func TestNewEngineWithOptions(t *testing.T) {
	e := NewEngine(WithMaxWorkers(3), WithMinPixelsPerWorker(100))
	defer e.Close()

	if e.MaxWorkers() != 3 {
		t.Errorf("MaxWorkers() = %d, want 3", e.MaxWorkers())
	}
	if e.grain != 100 {
		t.Errorf("grain = %d, want 100", e.grain)
	}
	// 1000 pixels at 100 per worker would want 10, capped at 3.
	if got := parallel.WorkerCountWith(1000, e.maxWorkers, e.grain); got != 3 {
		t.Errorf("worker count = %d, want 3", got)
	}
}

func TestRenderOptions(t *testing.T) {
	mask := NewBuffer(R(0, 0, 1, 1), FormatAlpha, DepthUByte)
	var abort Abort

	tests := []struct {
		name  string
		opts  []RenderOption
		check func(t *testing.T, o renderOptions)
	}{
		{"defaults", nil, func(t *testing.T, o renderOptions) {
			if o.mix != 1 || !o.premultiplied || o.masked || o.alphaMasking || o.workers != 0 || o.abort != nil {
				t.Errorf("unexpected defaults: %+v", o)
			}
		}},
		{"mix clamped high", []RenderOption{WithMix(3)}, func(t *testing.T, o renderOptions) {
			if o.mix != 1 {
				t.Errorf("mix = %v, want 1", o.mix)
			}
		}},
		{"mix clamped low", []RenderOption{WithMix(-0.5)}, func(t *testing.T, o renderOptions) {
			if o.mix != 0 {
				t.Errorf("mix = %v, want 0", o.mix)
			}
		}},
		{"mask", []RenderOption{WithMask(mask, true)}, func(t *testing.T, o renderOptions) {
			if !o.masked || o.mask != mask || !o.invert {
				t.Errorf("mask not applied: %+v", o)
			}
		}},
		{"nil mask disables masking", []RenderOption{WithMask(mask, false), WithMask(nil, true)}, func(t *testing.T, o renderOptions) {
			if o.masked {
				t.Error("nil mask left masking enabled")
			}
		}},
		{"flags", []RenderOption{WithAlphaMasking(true), WithPremultiplied(false), WithWorkers(5), WithAbort(&abort)}, func(t *testing.T, o renderOptions) {
			if !o.alphaMasking || o.premultiplied || o.workers != 5 || o.abort != &abort {
				t.Errorf("flags not applied: %+v", o)
			}
		}},
		{"last option wins", []RenderOption{WithMix(0.25), WithMix(0.75)}, func(t *testing.T, o renderOptions) {
			if o.mix != 0.75 {
				t.Errorf("mix = %v, want 0.75", o.mix)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, renderOpts(tt.opts))
		})
	}
}

func TestMaskMixFromOptions(t *testing.T) {
	mask := NewBuffer(R(0, 0, 1, 1), FormatAlpha, DepthUByte)
	o := renderOpts([]RenderOption{WithMask(mask, true), WithMix(0.5)})
	mm := o.maskMix()
	if mm.Mix != 0.5 || !mm.Masked || mm.Mask != mask || !mm.Invert {
		t.Errorf("maskMix() = %+v", mm)
	}
}
