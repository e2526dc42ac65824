// internal/pool/pool_test.go
package pool

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/nicekhan23/battery/internal/command"
)

func openPool(t *testing.T, capacity int) *Pool {
	t.Helper()
	p := New(Config{Capacity: capacity})
	if err := p.Open(); err != nil {
		t.Fatalf("Open() err=%v", err)
	}
	return p
}

func TestLifecycle_GuardsBeforeOpen(t *testing.T) {
	p := New(Config{})

	cmd := command.NewEmergency()
	if err := p.Submit(&cmd); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Submit before Open err=%v, want ErrNotInitialized", err)
	}
	if _, err := p.TakeNext(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("TakeNext before Open err=%v, want ErrNotInitialized", err)
	}
	if err := p.Close(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Close before Open err=%v, want ErrNotInitialized", err)
	}
	if p.ActiveCount() != 0 || p.FreeCount() != 0 {
		t.Fatalf("counts on closed pool: active=%d free=%d, want 0/0",
			p.ActiveCount(), p.FreeCount())
	}
}

func TestLifecycle_DoubleOpenDoubleClose(t *testing.T) {
	p := openPool(t, 4)

	if err := p.Open(); !errors.Is(err, ErrAlreadyOpen) {
		t.Fatalf("second Open err=%v, want ErrAlreadyOpen", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() err=%v", err)
	}
	if err := p.Close(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("second Close err=%v, want ErrNotInitialized", err)
	}
}

func TestLifecycle_ReusableAfterClose(t *testing.T) {
	p := openPool(t, 2)

	cmd := command.NewEmergency()
	if err := p.Submit(&cmd); err != nil {
		t.Fatalf("Submit() err=%v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() err=%v", err)
	}

	// Reopen: resident commands were discarded, full capacity is back.
	if err := p.Open(); err != nil {
		t.Fatalf("reopen err=%v", err)
	}
	if p.ActiveCount() != 0 || p.FreeCount() != 2 {
		t.Fatalf("after reopen: active=%d free=%d, want 0/2",
			p.ActiveCount(), p.FreeCount())
	}
}

func TestOpen_BadCapacity(t *testing.T) {
	p := New(Config{Capacity: -1})
	if err := p.Open(); !errors.Is(err, ErrResourceExhausted) {
		t.Fatalf("Open(-1) err=%v, want ErrResourceExhausted", err)
	}
	// Still closed after a failed Open.
	cmd := command.NewEmergency()
	if err := p.Submit(&cmd); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Submit after failed Open err=%v, want ErrNotInitialized", err)
	}
}

func TestOpen_DefaultCapacity(t *testing.T) {
	p := New(Config{})
	if err := p.Open(); err != nil {
		t.Fatalf("Open() err=%v", err)
	}
	if p.FreeCount() != DefaultCapacity {
		t.Fatalf("FreeCount()=%d, want %d", p.FreeCount(), DefaultCapacity)
	}
}

func TestSubmit_ClosedPoolGuardWinsOverValidation(t *testing.T) {
	p := New(Config{Capacity: 4})

	// Before the first Open, the lifecycle guard outranks validation:
	// even commands that would be rejected report ErrNotInitialized.
	bad := command.NewSetParams(90, 80, 60)
	if err := p.Submit(&bad); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Submit(invalid) on closed pool err=%v, want ErrNotInitialized", err)
	}
	if err := p.Submit(nil); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Submit(nil) on closed pool err=%v, want ErrNotInitialized", err)
	}

	// Same after an open/close cycle.
	if err := p.Open(); err != nil {
		t.Fatalf("Open() err=%v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() err=%v", err)
	}
	if err := p.Submit(&bad); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Submit(invalid) after Close err=%v, want ErrNotInitialized", err)
	}
	if err := p.Submit(nil); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Submit(nil) after Close err=%v, want ErrNotInitialized", err)
	}
}

func TestSubmit_NilAndInvalid(t *testing.T) {
	p := openPool(t, 4)

	err := p.Submit(nil)
	var verr *command.ValidationError
	if !errors.As(err, &verr) || verr.Reason != command.ReasonNullInput {
		t.Fatalf("Submit(nil) err=%v, want null_input", err)
	}

	bad := command.NewSetParams(90, 80, 60)
	if err := p.Submit(&bad); err == nil {
		t.Fatalf("Submit(min>max) err=nil, want validation error")
	}

	// Rejected commands leave the pool untouched.
	if p.ActiveCount() != 0 || p.FreeCount() != 4 {
		t.Fatalf("after rejections: active=%d free=%d, want 0/4",
			p.ActiveCount(), p.FreeCount())
	}
}

func TestFIFO_Order(t *testing.T) {
	p := openPool(t, 8)

	want := []command.Command{
		command.NewSetParams(10, 90, 120),
		command.NewOnOff(1, 3),
		command.NewEmergency(),
		command.NewOnOff(0, 3),
		command.NewSetParams(0, 100, 240),
	}
	for i := range want {
		if err := p.Submit(&want[i]); err != nil {
			t.Fatalf("Submit(#%d) err=%v", i, err)
		}
	}

	for i, w := range want {
		got, err := p.TakeNext()
		if err != nil {
			t.Fatalf("TakeNext(#%d) err=%v", i, err)
		}
		if got != w {
			t.Fatalf("TakeNext(#%d)=%+v, want %+v", i, got, w)
		}
	}
	if _, err := p.TakeNext(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("TakeNext on drained pool err=%v, want ErrEmpty", err)
	}
}

func TestFullEmptyBoundary(t *testing.T) {
	const capacity = 5
	p := openPool(t, capacity)

	for i := 0; i < capacity; i++ {
		cmd := command.NewOnOff(1, uint8(i%8))
		if err := p.Submit(&cmd); err != nil {
			t.Fatalf("Submit(#%d) err=%v", i, err)
		}
	}

	extra := command.NewEmergency()
	if err := p.Submit(&extra); !errors.Is(err, ErrPoolFull) {
		t.Fatalf("Submit on full pool err=%v, want ErrPoolFull", err)
	}
	if p.ActiveCount() != capacity || p.FreeCount() != 0 {
		t.Fatalf("full pool: active=%d free=%d", p.ActiveCount(), p.FreeCount())
	}

	// One take frees exactly one slot.
	if _, err := p.TakeNext(); err != nil {
		t.Fatalf("TakeNext() err=%v", err)
	}
	if err := p.Submit(&extra); err != nil {
		t.Fatalf("Submit after one take err=%v", err)
	}

	for p.ActiveCount() > 0 {
		if _, err := p.TakeNext(); err != nil {
			t.Fatalf("drain err=%v", err)
		}
	}
	if _, err := p.TakeNext(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("TakeNext on empty pool err=%v, want ErrEmpty", err)
	}
}

func TestCapacityInvariant_SlotRecycling(t *testing.T) {
	const capacity = 3
	p := openPool(t, capacity)

	// Churn well past capacity so every slot id is recycled repeatedly.
	for i := 0; i < capacity*10; i++ {
		cmd := command.NewSetParams(uint8(i%50), uint8(50+i%50), uint8(1+i%240))
		if err := p.Submit(&cmd); err != nil {
			t.Fatalf("Submit(#%d) err=%v", i, err)
		}
		if got := p.ActiveCount() + p.FreeCount(); got != capacity {
			t.Fatalf("invariant broken after submit #%d: %d != %d", i, got, capacity)
		}
		got, err := p.TakeNext()
		if err != nil {
			t.Fatalf("TakeNext(#%d) err=%v", i, err)
		}
		if got != cmd {
			t.Fatalf("round trip #%d: got %+v, want %+v", i, got, cmd)
		}
		if got := p.ActiveCount() + p.FreeCount(); got != capacity {
			t.Fatalf("invariant broken after take #%d: %d != %d", i, got, capacity)
		}
	}
}

func TestRoundTrip_FieldForField(t *testing.T) {
	p := openPool(t, 4)

	in := command.NewSetParams(15, 85, 90)
	if err := p.Submit(&in); err != nil {
		t.Fatalf("Submit() err=%v", err)
	}
	out, err := p.TakeNext()
	if err != nil {
		t.Fatalf("TakeNext() err=%v", err)
	}
	if out.Type != command.TypeSetParams ||
		out.SetParams.MinLevel != 15 ||
		out.SetParams.MaxLevel != 85 ||
		out.SetParams.MaxTime != 90 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

// countingObserver tallies events; safe for concurrent pools.
type countingObserver struct {
	NopObserver
	mu       sync.Mutex
	admitted int
	taken    int
	rejected int
	full     int
	opened   int
	closed   int
	dropped  int
}

func (o *countingObserver) PoolOpened(int) {
	o.mu.Lock()
	o.opened++
	o.mu.Unlock()
}

func (o *countingObserver) PoolClosed(dropped int) {
	o.mu.Lock()
	o.closed++
	o.dropped = dropped
	o.mu.Unlock()
}

func (o *countingObserver) CommandRejected(command.Command, error) {
	o.mu.Lock()
	o.rejected++
	o.mu.Unlock()
}

func (o *countingObserver) CommandAdmitted(command.Command, int) {
	o.mu.Lock()
	o.admitted++
	o.mu.Unlock()
}

func (o *countingObserver) CommandTaken(command.Command, int) {
	o.mu.Lock()
	o.taken++
	o.mu.Unlock()
}

func (o *countingObserver) PoolFull() {
	o.mu.Lock()
	o.full++
	o.mu.Unlock()
}

func TestObserver_Events(t *testing.T) {
	obs := &countingObserver{}
	p := New(Config{Capacity: 2, Observer: obs})
	if err := p.Open(); err != nil {
		t.Fatalf("Open() err=%v", err)
	}

	good := command.NewEmergency()
	bad := command.NewOnOff(2, 0)
	p.Submit(&good)
	p.Submit(&good)
	p.Submit(&good) // pool full
	p.Submit(&bad)  // rejected
	p.TakeNext()
	p.Close() // one command still resident

	if obs.opened != 1 || obs.closed != 1 {
		t.Fatalf("opened=%d closed=%d, want 1/1", obs.opened, obs.closed)
	}
	if obs.admitted != 2 || obs.taken != 1 || obs.rejected != 1 || obs.full != 1 {
		t.Fatalf("admitted=%d taken=%d rejected=%d full=%d, want 2/1/1/1",
			obs.admitted, obs.taken, obs.rejected, obs.full)
	}
	if obs.dropped != 1 {
		t.Fatalf("dropped=%d, want 1", obs.dropped)
	}
}

func TestConcurrent_ProducersAndConsumer(t *testing.T) {
	const (
		capacity  = 16
		producers = 8
		perWorker = 500
	)
	p := openPool(t, capacity)

	var submitted atomic.Int64
	var finished atomic.Bool

	var wg sync.WaitGroup
	for w := 0; w < producers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				cmd := command.NewOnOff(uint8(i%2), uint8(worker%8))
				err := p.Submit(&cmd)
				switch {
				case err == nil:
					submitted.Add(1)
				case errors.Is(err, ErrPoolFull):
					// Expected backpressure; drop and move on.
				default:
					t.Errorf("Submit err=%v", err)
					return
				}
			}
		}(w)
	}
	go func() {
		wg.Wait()
		finished.Store(true)
	}()

	// Single consumer drains concurrently until the producers are done
	// and the pool is empty.
	var taken int64
	for {
		_, err := p.TakeNext()
		switch {
		case err == nil:
			taken++
		case errors.Is(err, ErrEmpty):
			if finished.Load() && p.ActiveCount() == 0 {
				if taken != submitted.Load() {
					t.Fatalf("taken=%d, submitted=%d; admitted commands were lost or duplicated",
						taken, submitted.Load())
				}
				if p.ActiveCount()+p.FreeCount() != capacity {
					t.Fatalf("invariant broken: active=%d free=%d",
						p.ActiveCount(), p.FreeCount())
				}
				return
			}
			runtime.Gosched()
		default:
			t.Fatalf("TakeNext err=%v", err)
		}
		if n := p.ActiveCount(); n > capacity {
			t.Fatalf("ActiveCount()=%d exceeds capacity %d", n, capacity)
		}
	}
}
