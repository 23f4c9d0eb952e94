// Package kernel implements the per-band pixel kernels run by the engine.
//
// Every kernel processes exactly one band of the render window, writes only
// the destination rows of that band and reads sources through the boundary
// addressing of package image. Kernels poll an abort check once per output
// row and return as soon as it reports true; rows after that point are left
// as they were.
//
// Kernels cannot fail. Format and depth compatibility is validated by the
// caller before any band is scheduled.
package kernel
