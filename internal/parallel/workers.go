package parallel

import "runtime"

// MinPixelsPerWorker is the default number of pixels below which adding
// another worker costs more in scheduling than it saves.
const MinPixelsPerWorker = 4096

// WorkerCount returns how many bands to process pixels with.
//
// One worker is planned per MinPixelsPerWorker pixels, capped by ceiling.
// A ceiling <= 0 means runtime.GOMAXPROCS(0). The result is at least 1.
func WorkerCount(pixels, ceiling int) int {
	return WorkerCountWith(pixels, ceiling, MinPixelsPerWorker)
}

// WorkerCountWith is WorkerCount with an explicit pixels-per-worker grain.
// A grain <= 0 uses MinPixelsPerWorker.
func WorkerCountWith(pixels, ceiling, grain int) int {
	if ceiling <= 0 {
		ceiling = runtime.GOMAXPROCS(0)
	}
	if grain <= 0 {
		grain = MinPixelsPerWorker
	}
	n := pixels / grain
	return max(1, min(n, ceiling))
}
