package sigscan

import (
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Executor is a work-stealing pool of goroutines used by the parallel
// Scan variants. Each worker owns a deque (queue.go); a worker with an
// empty deque steals from the back of another worker's deque before
// going idle. Tasks are submitted round-robin across workers.
type Executor struct {
	ID  string
	log zerolog.Logger

	queues []*workQueue
	next   uint64
	nextMu sync.Mutex

	mu            sync.Mutex
	cond          *sync.Cond
	stopping      bool
	activeWorkers int
	wg            sync.WaitGroup

	closeOnce sync.Once
}

// NewExecutor starts an Executor with n worker goroutines (minimum 1).
// Callers that construct an Executor directly (rather than using
// Default) own its lifetime and must call Close when done.
func NewExecutor(n int) *Executor {
	if n < 1 {
		n = 1
	}
	ex := &Executor{
		ID:     uuid.New().String(),
		log:    *defaultLogger.Load(),
		queues: make([]*workQueue, n),
	}
	ex.cond = sync.NewCond(&ex.mu)
	for i := range ex.queues {
		ex.queues[i] = newWorkQueue()
	}
	ex.wg.Add(n)
	for i := 0; i < n; i++ {
		go ex.workerLoop(i)
	}
	ex.log.Debug().Str("executor", ex.ID).Int("workers", n).Msg("executor started")
	return ex
}

// WithLogger sets the logger the Executor uses for lifecycle events.
func (ex *Executor) WithLogger(logger zerolog.Logger) *Executor {
	ex.log = logger
	return ex
}

var (
	defaultExecutor     *Executor
	defaultExecutorOnce sync.Once
)

// Default returns the process-wide Executor, lazily created with
// runtime.GOMAXPROCS(0) workers on first use. It is never closed by
// package code; callers that need a bounded lifetime should use
// NewExecutor instead.
func Default() *Executor {
	defaultExecutorOnce.Do(func() {
		n := runtime.GOMAXPROCS(0)
		defaultExecutor = NewExecutor(n)
	})
	return defaultExecutor
}

// Close signals every worker to stop once its queue (and every other
// worker's queue) is drained, and waits for them to exit. Close is
// idempotent; calling it more than once is a no-op after the first.
func (ex *Executor) Close() error {
	ex.closeOnce.Do(func() {
		ex.mu.Lock()
		ex.stopping = true
		ex.cond.Broadcast()
		ex.mu.Unlock()
		ex.wg.Wait()
		ex.log.Debug().Str("executor", ex.ID).Msg("executor closed")
	})
	return nil
}

// submit hands fn to the next worker in round-robin order and wakes a
// worker that might be able to run or steal it. Only one waiter is
// signaled when fewer workers than the pool size are currently
// running a task, since that means at least one worker is idle and
// waiting on cond; once every worker is active, a newly submitted task
// can only be picked up once a worker finishes its current one and
// checks the queues itself, so waking anyone would be a no-op and
// submit skips the call entirely.
func (ex *Executor) submit(fn func()) error {
	ex.mu.Lock()
	if ex.stopping {
		ex.mu.Unlock()
		return ErrExecutorClosed
	}
	ex.mu.Unlock()

	ex.nextMu.Lock()
	idx := int(ex.next % uint64(len(ex.queues)))
	ex.next++
	ex.nextMu.Unlock()

	ex.mu.Lock()
	ex.queues[idx].pushFront(fn)
	if ex.activeWorkers < len(ex.queues) {
		ex.cond.Signal()
	}
	ex.mu.Unlock()
	return nil
}

func (ex *Executor) workerLoop(i int) {
	defer ex.wg.Done()
	own := ex.queues[i]
	for {
		if fn, ok := own.popFront(); ok {
			ex.runTask(fn)
			continue
		}
		if fn, ok := ex.stealFrom(i); ok {
			ex.runTask(fn)
			continue
		}
		if !ex.waitForWork() {
			return
		}
	}
}

// runTask marks the calling worker active for the duration of fn, so
// submit can tell how many workers are currently busy versus waiting on
// cond.
func (ex *Executor) runTask(fn func()) {
	ex.mu.Lock()
	ex.activeWorkers++
	ex.mu.Unlock()
	fn()
	ex.mu.Lock()
	ex.activeWorkers--
	ex.mu.Unlock()
}

func (ex *Executor) stealFrom(owner int) (func(), bool) {
	for j := 0; j < len(ex.queues); j++ {
		if j == owner {
			continue
		}
		if fn, ok := ex.queues[j].stealBack(); ok {
			return fn, true
		}
	}
	return nil, false
}

// waitForWork blocks until either some queue is non-empty or the
// executor is stopping. It returns false once the caller should exit
// because the executor is stopping and every queue is, as of the
// check, empty.
func (ex *Executor) waitForWork() bool {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	for !ex.stopping && ex.allQueuesEmptyLocked() {
		ex.cond.Wait()
	}
	return !(ex.stopping && ex.allQueuesEmptyLocked())
}

func (ex *Executor) allQueuesEmptyLocked() bool {
	for _, q := range ex.queues {
		if !q.empty() {
			return false
		}
	}
	return true
}

// ScanParallel scans m using the default Executor.
func (p *CompiledPattern) ScanParallel(m MemoryRange) (uint64, bool) {
	return p.ScanParallelWith(Default(), m)
}

// ScanManyParallel scans ranges using the default Executor, returning
// the lowest matching address across all of them.
func (p *CompiledPattern) ScanManyParallel(ranges []MemoryRange) (uint64, bool) {
	return p.ScanManyParallelWith(Default(), ranges)
}

// ScanParallelWith splits m into overlapping chunks and scans them
// concurrently on ex, returning the lowest matching address. Once any
// chunk finds a match, the shared cancellation token lets in-flight and
// not-yet-started chunk scans return early; a cancelled chunk that starts
// below the best match found so far is scanned again in full, and every
// submitted chunk is waited on, so the lowest address is always the one
// returned.
func (p *CompiledPattern) ScanParallelWith(ex *Executor, m MemoryRange) (uint64, bool) {
	return p.ScanManyParallelWith(ex, []MemoryRange{m})
}

// ScanManyParallelWith is ScanParallelWith generalized to many ranges:
// every chunk of every range is scanned concurrently on ex, and the
// lowest address among all matches is returned.
func (p *CompiledPattern) ScanManyParallelWith(ex *Executor, ranges []MemoryRange) (uint64, bool) {
	return p.scanManyParallelWithChunkSize(ex, ranges, chunkSize)
}

// scanManyParallelWithChunkSize is ScanManyParallelWith with the chunk
// size broken out, so tests can exercise chunk-boundary straddling
// without a 256KiB buffer.
func (p *CompiledPattern) scanManyParallelWithChunkSize(ex *Executor, ranges []MemoryRange, size int) (uint64, bool) {
	if p.Len() == 0 || len(ranges) == 0 {
		return 0, false
	}

	cancel := newCancelToken()
	var (
		mu       sync.Mutex
		bestAddr uint64
		found    bool
		wg       sync.WaitGroup
	)

	for _, m := range ranges {
		for _, chunk := range chunksForSize(m.Data, p.Len(), size) {
			base, chunk := m.Base, chunk
			wg.Add(1)
			task := func() {
				defer wg.Done()
				off, ok := p.kernel(p, chunk.Data, cancel)
				if !ok && cancel.isSet() {
					// Cancelled by a hit elsewhere. Unless that hit is at or
					// below this chunk's start, this chunk may still hold a
					// lower match, so scan it again without cancellation.
					mu.Lock()
					lower := found && bestAddr <= base+chunk.Base
					mu.Unlock()
					if !lower {
						off, ok = p.kernel(p, chunk.Data, newCancelToken())
					}
				}
				if !ok {
					return
				}
				addr := base + chunk.Base + uint64(off)
				mu.Lock()
				if !found || addr < bestAddr {
					bestAddr, found = addr, true
				}
				mu.Unlock()
				cancel.set()
			}
			if err := ex.submit(task); err != nil {
				wg.Done()
			}
		}
	}

	wg.Wait()
	return bestAddr, found
}
