package parallel

import (
	"context"
	"sync/atomic"
)

// Abort is a cooperative cancellation flag shared between a host and the
// band tasks of a render call. Tasks poll it once per output row.
//
// The zero value is ready to use and not set. Abort is safe for concurrent
// use.
type Abort struct {
	flag atomic.Bool
}

// Set requests that running tasks stop at their next row.
func (a *Abort) Set() {
	a.flag.Store(true)
}

// Reset clears the flag.
func (a *Abort) Reset() {
	a.flag.Store(false)
}

// Aborted reports whether Set was called. A nil *Abort is never set.
func (a *Abort) Aborted() bool {
	return a != nil && a.flag.Load()
}

// Check returns the per-row poll used by kernels: true once either the flag
// is set or ctx is done. ctx may be nil.
func Check(ctx context.Context, a *Abort) func() bool {
	if ctx == nil || ctx.Done() == nil {
		if a == nil {
			return never
		}
		return a.Aborted
	}
	done := ctx.Done()
	return func() bool {
		if a.Aborted() {
			return true
		}
		select {
		case <-done:
			return true
		default:
			return false
		}
	}
}

func never() bool { return false }
