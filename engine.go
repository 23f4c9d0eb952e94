package supportext

import (
	"context"
	"errors"
	"fmt"

	"github.com/NatronGitHub/openfx-supportext-sub000/internal/image"
	"github.com/NatronGitHub/openfx-supportext-sub000/internal/kernel"
	"github.com/NatronGitHub/openfx-supportext-sub000/internal/parallel"
)

// Engine runs pixel kernels over render windows on a shared worker pool.
//
// Every render call validates its buffers, splits the window into row bands,
// runs one kernel task per band and returns when all bands are done. Bands
// write disjoint destination rows and only read from sources, so kernels
// take no locks.
//
// Thread safety: Engine is safe for concurrent use. Calls that target the
// same destination rows must not overlap.
type Engine struct {
	pool       *parallel.WorkerPool
	maxWorkers int
	grain      int
}

// NewEngine creates an engine and starts its worker pool.
// Call Close to stop the workers.
func NewEngine(opts ...EngineOption) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pool := parallel.NewWorkerPool(o.maxWorkers)
	return &Engine{
		pool:       pool,
		maxWorkers: pool.Workers(),
		grain:      o.grain,
	}
}

// Close stops the worker pool. Render calls after Close return ErrClosed.
// Close is safe to call multiple times.
func (e *Engine) Close() {
	e.pool.Close()
}

// MaxWorkers returns the pool size, the ceiling on bands per call.
func (e *Engine) MaxWorkers() int {
	return e.maxWorkers
}

// Fill writes black (all bytes zero) to every pixel of window in dst.
// Mask and mix options are ignored.
func (e *Engine) Fill(ctx context.Context, dst *Buffer, window Rect, opts ...RenderOption) error {
	o := renderOpts(opts)
	if err := checkDestination(dst, window); err != nil {
		return err
	}
	return e.fill(ctx, dst, window, &o)
}

func (e *Engine) fill(ctx context.Context, dst *Buffer, window Rect, o *renderOptions) error {
	return e.run(ctx, "fill", window, o, func(band Rect, aborted func() bool) {
		kernel.FillBlack(dst, band, aborted)
	})
}

// Copy copies src into window of dst, resolving reads outside src through
// src.Boundary. A nil src fills the window with black. Mask and mix options
// are ignored.
func (e *Engine) Copy(ctx context.Context, dst, src *Buffer, window Rect, opts ...RenderOption) error {
	o := renderOpts(opts)
	if err := checkDestination(dst, window); err != nil {
		return err
	}
	if err := checkSource("source", src, dst); err != nil {
		return err
	}
	return e.run(ctx, "copy", window, &o, func(band Rect, aborted func() bool) {
		kernel.Copy(dst, src, band, aborted)
	})
}

// Premultiply multiplies the color of straight-alpha src by its alpha and
// writes the result to window of dst, mask-mixed over the source pixel.
// A nil src fills the window with black.
func (e *Engine) Premultiply(ctx context.Context, dst, src *Buffer, window Rect, opts ...RenderOption) error {
	o := renderOpts(opts)
	return e.process(ctx, "premultiply", dst, src, window, &kernel.ProcessParams{DstPremult: true}, &o)
}

// Unpremultiply divides the color of premultiplied src by its alpha and
// writes the result to window of dst, mask-mixed over the source pixel.
// Pixels with alpha below kernel.UnpremultEpsilon keep their color.
// A nil src fills the window with black.
func (e *Engine) Unpremultiply(ctx context.Context, dst, src *Buffer, window Rect, opts ...RenderOption) error {
	o := renderOpts(opts)
	return e.process(ctx, "unpremultiply", dst, src, window, &kernel.ProcessParams{SrcPremult: true}, &o)
}

// Process applies fn to every pixel of window. fn receives normalized,
// unpremultiplied RGBA and may change it in place; the result is
// premultiplied again (see WithPremultiplied) and mask-mixed over the source
// pixel. A nil fn copies through the same chain. A nil src fills the window
// with black.
func (e *Engine) Process(ctx context.Context, dst, src *Buffer, window Rect, fn PixelFunc, opts ...RenderOption) error {
	o := renderOpts(opts)
	p := &kernel.ProcessParams{
		Fn:         fn,
		SrcPremult: o.premultiplied,
		DstPremult: o.premultiplied,
	}
	return e.process(ctx, "process", dst, src, window, p, &o)
}

func (e *Engine) process(ctx context.Context, name string, dst, src *Buffer, window Rect, p *kernel.ProcessParams, o *renderOptions) error {
	if err := checkDestination(dst, window); err != nil {
		return err
	}
	if err := checkSource("source", src, dst); err != nil {
		return err
	}
	if err := checkMask(o); err != nil {
		return err
	}
	if src == nil {
		return e.fill(ctx, dst, window, o)
	}

	p.MaskMix = o.maskMix()
	return e.run(ctx, name, window, o, func(band Rect, aborted func() bool) {
		kernel.Process(dst, src, band, p, aborted)
	})
}

// Merge composites a onto b with op and writes window of dst. Each input is
// read through its own boundary mode; a nil input is transparent black. The
// result is mask-mixed over the b pixel.
func (e *Engine) Merge(ctx context.Context, dst, a, b *Buffer, window Rect, op Op, opts ...RenderOption) error {
	o := renderOpts(opts)
	if err := checkDestination(dst, window); err != nil {
		return err
	}
	if !op.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidOp, op)
	}
	if err := checkSource("A", a, dst); err != nil {
		return err
	}
	if err := checkSource("B", b, dst); err != nil {
		return err
	}
	if err := checkMask(&o); err != nil {
		return err
	}

	p := &kernel.MergeParams{
		Op:           op,
		AlphaMasking: o.alphaMasking,
		MaskMix:      o.maskMix(),
	}
	return e.run(ctx, "merge "+op.String(), window, &o, func(band Rect, aborted func() bool) {
		kernel.Merge(dst, a, b, band, p, aborted)
	})
}

// run partitions window and runs fn once per band on the pool.
//
// A set Abort flag is not an error: the call returns nil with the skipped
// rows left as they were. A done ctx returns ctx.Err().
func (e *Engine) run(ctx context.Context, name string, window Rect, o *renderOptions, fn func(band Rect, aborted func() bool)) error {
	if window.Empty() {
		return nil
	}

	workers := o.workers
	if workers <= 0 {
		workers = parallel.WorkerCountWith(window.Area(), e.maxWorkers, e.grain)
	}
	bands := parallel.Partition(window, workers)
	aborted := parallel.Check(ctx, o.abort)

	log := Logger()
	log.Debug("supportext: render",
		"op", name,
		"window", window,
		"bands", len(bands),
		"workers", workers)

	if !e.pool.RunBands(bands, func(band image.Rect) { fn(band, aborted) }) {
		return ErrClosed
	}

	if aborted() {
		log.Warn("supportext: render aborted", "op", name, "window", window)
		if ctx != nil {
			return ctx.Err()
		}
	}
	return nil
}

func renderOpts(opts []RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *renderOptions) maskMix() kernel.MaskMix {
	return kernel.MaskMix{
		Mix:    o.mix,
		Masked: o.masked,
		Mask:   o.mask,
		Invert: o.invert,
	}
}

// checkDestination validates dst and window, in that order.
func checkDestination(dst *Buffer, window Rect) error {
	if dst == nil {
		return ErrNilDestination
	}
	if err := validate("destination", dst); err != nil {
		return err
	}
	if !dst.Bounds.ContainsRect(window) {
		return fmt.Errorf("%w: window %v, bounds %v", ErrWindowOutOfBounds, window, dst.Bounds)
	}
	return nil
}

// checkSource validates an optional source against dst.
func checkSource(name string, src, dst *Buffer) error {
	if src == nil {
		return nil
	}
	if err := validate(name, src); err != nil {
		return err
	}
	if src.Format != dst.Format || src.Depth != dst.Depth {
		return fmt.Errorf("%w: %s is %v/%v, destination is %v/%v",
			ErrFormatMismatch, name, src.Format, src.Depth, dst.Format, dst.Depth)
	}
	return nil
}

// checkMask validates the mask of o, if any. Masks may have any format.
func checkMask(o *renderOptions) error {
	if !o.masked {
		return nil
	}
	return validate("mask", o.mask)
}

// validate runs Buffer.Validate and sorts the error into the package
// taxonomy: format errors pass through, layout errors wrap ErrInvalidBuffer.
func validate(name string, b *Buffer) error {
	err := b.Validate()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, image.ErrUnsupportedFormat):
		return fmt.Errorf("%s: %w", name, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrInvalidBuffer, name, err)
	}
}
