package sigscan

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestExecutorSimpleTask(t *testing.T) {
	ex := NewExecutor(2)
	defer ex.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	var ran atomic.Bool
	if err := ex.submit(func() {
		ran.Store(true)
		wg.Done()
	}); err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	wg.Wait()
	if !ran.Load() {
		t.Fatal("task did not run")
	}
}

func TestExecutorMultipleTasks(t *testing.T) {
	ex := NewExecutor(4)
	defer ex.Close()

	const total = 101
	var wg sync.WaitGroup
	var completed atomic.Int64
	wg.Add(total)
	for i := 0; i < total; i++ {
		if err := ex.submit(func() {
			completed.Add(1)
			wg.Done()
		}); err != nil {
			t.Fatalf("submit returned error: %v", err)
		}
	}
	wg.Wait()
	if completed.Load() != total {
		t.Fatalf("completed = %d, want %d", completed.Load(), total)
	}
}

// TestExecutorWorkStealing keeps one worker busy with a single
// long-running task while the rest of the pool drains everything else,
// exercising the steal-from-the-back path (queue.go).
func TestExecutorWorkStealing(t *testing.T) {
	ex := NewExecutor(4)
	defer ex.Close()

	var wg sync.WaitGroup
	var completed atomic.Int64

	wg.Add(1)
	if err := ex.submit(func() {
		time.Sleep(50 * time.Millisecond)
		completed.Add(1)
		wg.Done()
	}); err != nil {
		t.Fatalf("submit returned error: %v", err)
	}

	const rest = 60
	wg.Add(rest)
	for i := 0; i < rest; i++ {
		if err := ex.submit(func() {
			completed.Add(1)
			wg.Done()
		}); err != nil {
			t.Fatalf("submit returned error: %v", err)
		}
	}

	wg.Wait()
	if completed.Load() != rest+1 {
		t.Fatalf("completed = %d, want %d", completed.Load(), rest+1)
	}
}

func TestExecutorCloseIsIdempotent(t *testing.T) {
	ex := NewExecutor(2)
	if err := ex.Close(); err != nil {
		t.Fatalf("first Close returned error: %v", err)
	}
	if err := ex.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
}

func TestExecutorRejectsAfterClose(t *testing.T) {
	ex := NewExecutor(2)
	ex.Close()
	if err := ex.submit(func() {}); err == nil {
		t.Fatal("submit after Close returned nil error, want ErrExecutorClosed")
	}
}

func TestDefaultExecutorIsSingleton(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Fatal("Default() returned different instances")
	}
}

func TestScanParallelMatchesSerial(t *testing.T) {
	p, err := Compile("48 8B ?? ?? ?? ?? 8B")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	data := fillBuffer(8192, 4096, []byte{0x48, 0x8B, 0x01, 0x02, 0x03, 0x04, 0x8B})
	m := MemoryRange{Base: 0x2000, Data: data}

	serial, okSerial := p.Scan(m)
	parallel, okParallel := p.ScanParallel(m)
	if okSerial != okParallel || serial != parallel {
		t.Fatalf("serial=(%d,%v) parallel=(%d,%v), want equal", serial, okSerial, parallel, okParallel)
	}
}

func TestScanManyParallelReturnsLowestAddress(t *testing.T) {
	p, err := Compile("AA BB")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	r1 := MemoryRange{Base: 1000, Data: fillBuffer(64, 10, []byte{0xAA, 0xBB})}
	r2 := MemoryRange{Base: 0, Data: fillBuffer(64, 20, []byte{0xAA, 0xBB})}

	addr, ok := p.ScanManyParallel([]MemoryRange{r1, r2})
	if !ok || addr != 20 {
		t.Fatalf("ScanManyParallel = (%d, %v), want (20, true)", addr, ok)
	}
}
