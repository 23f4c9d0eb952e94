// Package parallel provides the row-band scheduler for the processing kernels.
//
// A render window is split into horizontal bands of whole rows. Each band is
// processed by one task on a WorkerPool; tasks write disjoint destination
// rows and only read shared sources, so they need no synchronization. The
// caller blocks until every task has returned.
//
//   - Partition splits a window into bands
//   - WorkerCount sizes the fan-out from the window area
//   - Abort is the shared cooperative cancellation flag
package parallel

import "github.com/NatronGitHub/openfx-supportext-sub000/internal/image"

// Partition splits window into bands of ceil(height/workers) rows each; the
// last band takes whatever rows remain. Columns are never split.
//
// Every row of window appears in exactly one band and each band has at least
// one row. An empty window yields nil. workers < 1 is treated as 1.
func Partition(window image.Rect, workers int) []image.Rect {
	if window.Empty() {
		return nil
	}
	workers = max(workers, 1)

	height := window.Height()
	rows := (height + workers - 1) / workers

	bands := make([]image.Rect, 0, (height+rows-1)/rows)
	for y := window.Y1; y < window.Y2; y += rows {
		bands = append(bands, image.Rect{
			X1: window.X1,
			Y1: y,
			X2: window.X2,
			Y2: min(y+rows, window.Y2),
		})
	}
	return bands
}
