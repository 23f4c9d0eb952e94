// Package supportext is a tiled, multi-threaded pixel-processing core for
// image-processing plug-ins.
//
// # Overview
//
// An Engine runs per-pixel kernels over a render window of a caller-owned
// destination buffer. The window is cut into horizontal bands, one per
// worker, and each band is processed on a shared worker pool. The call
// returns once every band is done.
//
// Reads outside a source's bounds are resolved through the source's
// BoundaryMode: black (zeros), clamp (nearest edge pixel) or periodic
// (wrap around).
//
// # Quick Start
//
//	e := supportext.NewEngine()
//	defer e.Close()
//
//	dst := supportext.NewBuffer(supportext.R(0, 0, 640, 480), supportext.FormatRGBA, supportext.DepthUByte)
//	err := e.Merge(ctx, dst, a, b, dst.Bounds, supportext.OpScreen,
//	    supportext.WithMix(0.5))
//
// # Buffers
//
// A Buffer describes memory the caller owns: Data, Bounds, Format, Depth,
// RowBytes and Boundary. The engine never keeps a reference after a call
// returns. A nil source buffer is absent: copies fall back to black and
// merges read it as transparent black.
//
// # Cancellation
//
// Band tasks poll an Abort flag and the call's context once per output row.
// An aborted call returns nil with the remaining rows left unspecified;
// partial output is not rolled back.
//
// # Operators
//
// Merge takes one of the Op constants (over, screen, multiply, hue, ...).
// ParseOp and Op.String convert between operators and their names.
package supportext
