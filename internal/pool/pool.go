// internal/pool/pool.go
package pool

import (
	"errors"
	"sync"

	"github.com/nicekhan23/battery/internal/command"
)

// DefaultCapacity matches the charger firmware's command pool size.
const DefaultCapacity = 32

var (
	ErrNotInitialized    = errors.New("pool: not initialized")
	ErrAlreadyOpen       = errors.New("pool: already open")
	ErrResourceExhausted = errors.New("pool: slot allocation failed")
	ErrPoolFull          = errors.New("pool: no free slots")
	ErrEmpty             = errors.New("pool: no active commands")
)

// Config carries pool construction options.
type Config struct {
	Capacity int      // slot count; DefaultCapacity when zero
	Observer Observer // optional event sink
}

// slot is one fixed storage cell for a single command value.
// Membership in active/unused is tracked by the id queues, never by the
// slot itself.
type slot struct {
	cmd command.Command
}

// Pool is a bounded dual-pool command queue.
//
// A fixed array of slots is partitioned between two id queues: unused
// (free capacity) and active (admitted commands in FIFO order). Submit
// moves an id unused->active, TakeNext moves it active->unused. Each id
// lives in exactly one queue at any instant, so len(active)+len(unused)
// equals capacity for the whole open lifetime. Nothing allocates after
// Open.
//
// One mutex covers the entire state. The operations are O(1) index moves
// plus one value copy, so a coarse critical section costs nothing
// measurable and keeps the partition invariant trivially atomic.
type Pool struct {
	mu   sync.Mutex
	open bool

	capacity int
	obs      Observer

	slots  []slot
	active *idQueue // admitted, not yet taken; head is the oldest submit
	unused *idQueue // free slot ids; freed ids append at the tail
}

// New returns a closed pool. Open allocates the slots.
func New(cfg Config) *Pool {
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	obs := cfg.Observer
	if obs == nil {
		obs = NopObserver{}
	}
	return &Pool{capacity: cfg.Capacity, obs: obs}
}

// Open allocates the slot array and both id queues and marks the pool
// usable. A closed pool can be opened again.
func (p *Pool) Open() error {
	p.mu.Lock()
	if p.open {
		p.mu.Unlock()
		return ErrAlreadyOpen
	}
	if p.capacity <= 0 {
		p.mu.Unlock()
		return ErrResourceExhausted
	}

	p.slots = make([]slot, p.capacity)
	p.active = newIDQueue(p.capacity)
	p.unused = newIDQueue(p.capacity)
	for id := 0; id < p.capacity; id++ {
		p.unused.push(id)
	}
	p.open = true
	capacity := p.capacity
	p.mu.Unlock()

	p.obs.PoolOpened(capacity)
	return nil
}

// Close releases the slot storage and marks the pool closed. Commands
// still resident are discarded, matching the charger firmware's teardown;
// the observer is told how many.
func (p *Pool) Close() error {
	p.mu.Lock()
	if !p.open {
		p.mu.Unlock()
		return ErrNotInitialized
	}
	dropped := p.active.len()
	p.slots = nil
	p.active = nil
	p.unused = nil
	p.open = false
	p.mu.Unlock()

	p.obs.PoolClosed(dropped)
	return nil
}

// Submit validates cmd and admits it into the pool. The command value is
// copied; the caller keeps ownership of cmd.
//
// The lifecycle guard is checked first, so a closed pool reports
// ErrNotInitialized even for commands that would also fail validation.
// Validation itself runs between the two lock sections, keeping invalid
// commands out of contention with the consumer.
func (p *Pool) Submit(cmd *command.Command) error {
	p.mu.Lock()
	open := p.open
	p.mu.Unlock()
	if !open {
		return ErrNotInitialized
	}

	if cmd == nil {
		err := &command.ValidationError{Reason: command.ReasonNullInput}
		p.obs.CommandRejected(command.Command{}, err)
		return err
	}
	if err := command.Validate(*cmd); err != nil {
		p.obs.CommandRejected(*cmd, err)
		return err
	}

	p.mu.Lock()
	if !p.open {
		// Closed while validating.
		p.mu.Unlock()
		return ErrNotInitialized
	}
	id, ok := p.unused.pop()
	if !ok {
		p.mu.Unlock()
		p.obs.PoolFull()
		return ErrPoolFull
	}
	p.slots[id].cmd = *cmd
	p.active.push(id)
	active := p.active.len()
	p.mu.Unlock()

	p.obs.CommandAdmitted(*cmd, active)
	return nil
}

// TakeNext removes and returns the oldest admitted command. ErrEmpty is
// the normal idle result for a polling consumer, distinct from
// ErrNotInitialized.
func (p *Pool) TakeNext() (command.Command, error) {
	p.mu.Lock()
	if !p.open {
		p.mu.Unlock()
		return command.Command{}, ErrNotInitialized
	}
	id, ok := p.active.pop()
	if !ok {
		p.mu.Unlock()
		p.obs.PoolEmpty()
		return command.Command{}, ErrEmpty
	}
	cmd := p.slots[id].cmd
	p.slots[id] = slot{}
	p.unused.push(id)
	active := p.active.len()
	p.mu.Unlock()

	p.obs.CommandTaken(cmd, active)
	return cmd, nil
}

// ActiveCount reports the number of admitted, not-yet-taken commands.
// Returns 0 on a closed pool; counts are read-only introspection and
// degrade instead of erroring.
func (p *Pool) ActiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return 0
	}
	return p.active.len()
}

// FreeCount reports the number of free slots. Returns 0 on a closed pool.
func (p *Pool) FreeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return 0
	}
	return p.unused.len()
}

// Capacity reports the configured slot count.
func (p *Pool) Capacity() int {
	return p.capacity
}
