// internal/pool/observer.go
package pool

import "github.com/nicekhan23/battery/internal/command"

// Observer receives pool lifecycle and command events. Calls happen after
// the state transition completes and outside the pool lock; an observer
// must never be required for correctness. Implementations should not
// block for long.
type Observer interface {
	PoolOpened(capacity int)
	PoolClosed(dropped int)
	CommandRejected(cmd command.Command, err error)
	CommandAdmitted(cmd command.Command, active int)
	CommandTaken(cmd command.Command, active int)
	PoolFull()
	PoolEmpty()
}

// NopObserver ignores every event. Embed it to implement a partial
// Observer.
type NopObserver struct{}

func (NopObserver) PoolOpened(int)                         {}
func (NopObserver) PoolClosed(int)                         {}
func (NopObserver) CommandRejected(command.Command, error) {}
func (NopObserver) CommandAdmitted(command.Command, int)   {}
func (NopObserver) CommandTaken(command.Command, int)      {}
func (NopObserver) PoolFull()                              {}
func (NopObserver) PoolEmpty()                             {}
