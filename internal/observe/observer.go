// internal/observe/observer.go
package observe

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/nicekhan23/battery/internal/command"
	"github.com/nicekhan23/battery/internal/pool"
)

// LogObserver mirrors pool events into the structured log. It is purely
// diagnostic: nothing here ever reaches back into the pool.
type LogObserver struct {
	Log zerolog.Logger
}

var _ pool.Observer = LogObserver{}

func (o LogObserver) PoolOpened(capacity int) {
	o.Log.Info().Int("capacity", capacity).Msg("command pool opened")
}

func (o LogObserver) PoolClosed(dropped int) {
	o.Log.Info().Int("dropped", dropped).Msg("command pool closed")
}

func (o LogObserver) CommandRejected(cmd command.Command, err error) {
	// A nil submission carries no command; logging the zero Type would
	// show a phantom 0x00 command.
	var verr *command.ValidationError
	if errors.As(err, &verr) && verr.Reason == command.ReasonNullInput {
		o.Log.Warn().Err(err).Msg("command rejected")
		return
	}
	o.Log.Warn().Stringer("type", cmd.Type).Err(err).Msg("command rejected")
}

func (o LogObserver) CommandAdmitted(cmd command.Command, active int) {
	o.Log.Info().Stringer("type", cmd.Type).Int("active", active).Msg("command admitted")
}

func (o LogObserver) CommandTaken(cmd command.Command, active int) {
	o.Log.Debug().Stringer("type", cmd.Type).Int("active", active).Msg("command taken")
}

func (o LogObserver) PoolFull() {
	o.Log.Warn().Msg("command pool full")
}

func (o LogObserver) PoolEmpty() {
	o.Log.Trace().Msg("command pool empty")
}
