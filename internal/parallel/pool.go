package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/NatronGitHub/openfx-supportext-sub000/internal/image"
)

// WorkerPool is a fixed set of goroutines that execute band tasks.
//
// Each worker owns a queue and steals from the others when its own queue is
// empty, which keeps uneven bands (the short last band, bands with more
// out-of-bounds reads) from leaving workers idle.
//
// Thread safety: WorkerPool is safe for concurrent use. Several render calls
// may share one pool.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds per-worker task queues.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	mine := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(mine)
			return

		case task := <-mine:
			task()

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(mine)
				return
			case task := <-mine:
				task()
			}
		}
	}
}

// drain executes everything left in a queue.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			task()
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll runs every task and waits for all of them to return.
// Returns false without running anything if the pool is closed.
func (p *WorkerPool) ExecuteAll(tasks []func()) bool {
	if !p.running.Load() {
		return false
	}
	if len(tasks) == 0 {
		return true
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))

	for i, fn := range tasks {
		wrapped := func() {
			defer wg.Done()
			fn()
		}

		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			// Closing: run on the caller so the call still completes.
			wrapped()
		}
	}

	wg.Wait()
	return true
}

// RunBands runs fn once per band, in parallel, and waits for all of them.
// A single band runs on the calling goroutine.
func (p *WorkerPool) RunBands(bands []image.Rect, fn func(band image.Rect)) bool {
	if !p.running.Load() {
		return false
	}
	if len(bands) == 1 {
		fn(bands[0])
		return true
	}

	tasks := make([]func(), len(bands))
	for i, band := range bands {
		tasks[i] = func() { fn(band) }
	}
	return p.ExecuteAll(tasks)
}

// Close stops accepting work, lets queued tasks finish and stops all
// workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
