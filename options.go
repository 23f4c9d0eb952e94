package supportext

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// One worker per CPU (default)
//	e := supportext.NewEngine()
//
//	// At most four bands per call, split more eagerly
//	e := supportext.NewEngine(
//	    supportext.WithMaxWorkers(4),
//	    supportext.WithMinPixelsPerWorker(1024),
//	)
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	maxWorkers int
	grain      int
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		maxWorkers: 0, // GOMAXPROCS
		grain:      0, // parallel.MinPixelsPerWorker
	}
}

// WithMaxWorkers sets the number of pool goroutines, which is also the
// ceiling on bands per render call. n <= 0 uses runtime.GOMAXPROCS(0).
func WithMaxWorkers(n int) EngineOption {
	return func(o *engineOptions) {
		o.maxWorkers = n
	}
}

// WithMinPixelsPerWorker sets how many window pixels justify one more
// band. n <= 0 restores the default.
func WithMinPixelsPerWorker(n int) EngineOption {
	return func(o *engineOptions) {
		o.grain = n
	}
}

// RenderOption configures a single render call.
//
// Example:
//
//	err := e.Merge(ctx, dst, a, b, window, supportext.OpMultiply,
//	    supportext.WithMask(matte, false),
//	    supportext.WithMix(0.75),
//	    supportext.WithAbort(&abort),
//	)
type RenderOption func(*renderOptions)

// renderOptions holds per-call configuration.
type renderOptions struct {
	abort         *Abort
	mask          *Buffer
	masked        bool
	invert        bool
	mix           float32
	alphaMasking  bool
	premultiplied bool
	workers       int
}

// defaultRenderOptions returns the per-call defaults: no mask, full mix,
// premultiplied RGBA and a heuristic worker count.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		mix:           1,
		premultiplied: true,
	}
}

// WithAbort makes the call poll a once per output row. When a is set the
// bands stop early and the call returns with later rows unspecified.
func WithAbort(a *Abort) RenderOption {
	return func(o *renderOptions) {
		o.abort = a
	}
}

// WithMask blends the result over its background by the mask's alpha (or
// first component when the mask has no alpha). Pixels outside the mask read
// as 0, or 1 when invert is set. A nil mask disables masking.
func WithMask(mask *Buffer, invert bool) RenderOption {
	return func(o *renderOptions) {
		o.mask = mask
		o.masked = mask != nil
		o.invert = invert
	}
}

// WithMix sets the weight of the result against its background. Values
// are clamped to [0, 1].
func WithMix(mix float32) RenderOption {
	return func(o *renderOptions) {
		o.mix = min(max(mix, 0), 1)
	}
}

// WithAlphaMasking makes maskable merge operators write the union alpha
// a + b - a*b and apply only to color.
func WithAlphaMasking(on bool) RenderOption {
	return func(o *renderOptions) {
		o.alphaMasking = on
	}
}

// WithPremultiplied declares whether RGBA buffers passed to Process hold
// premultiplied color. Default true.
func WithPremultiplied(on bool) RenderOption {
	return func(o *renderOptions) {
		o.premultiplied = on
	}
}

// WithWorkers forces the number of bands for this call instead of the
// area heuristic. n <= 0 restores the heuristic.
func WithWorkers(n int) RenderOption {
	return func(o *renderOptions) {
		o.workers = n
	}
}
