// internal/command/validate.go
package command

import "fmt"

// Reason classifies why a command was rejected.
type Reason string

const (
	ReasonOutOfRange        Reason = "out_of_range"
	ReasonInconsistentRange Reason = "inconsistent_range"
	ReasonUnknownType       Reason = "unknown_type"
	ReasonNullInput         Reason = "null_input"
)

// ValidationError reports a command that may not enter the pool.
type ValidationError struct {
	Reason Reason
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("command: invalid (%s)", e.Reason)
	}
	return fmt.Sprintf("command: invalid (%s): %s", e.Reason, e.Detail)
}

// Validate decides whether cmd may enter the pool.
// Pure function of its input: no locking, no side effects.
func Validate(cmd Command) error {
	switch cmd.Type {
	case TypeSetParams:
		p := cmd.SetParams
		if p.MinLevel > 100 {
			return &ValidationError{
				Reason: ReasonOutOfRange,
				Detail: fmt.Sprintf("min_level=%d exceeds 100", p.MinLevel),
			}
		}
		if p.MaxLevel > 100 {
			return &ValidationError{
				Reason: ReasonOutOfRange,
				Detail: fmt.Sprintf("max_level=%d exceeds 100", p.MaxLevel),
			}
		}
		if p.MaxTime == 0 || p.MaxTime > 240 {
			return &ValidationError{
				Reason: ReasonOutOfRange,
				Detail: fmt.Sprintf("max_time=%d outside 1-240", p.MaxTime),
			}
		}
		if p.MinLevel > p.MaxLevel {
			return &ValidationError{
				Reason: ReasonInconsistentRange,
				Detail: fmt.Sprintf("min_level=%d above max_level=%d", p.MinLevel, p.MaxLevel),
			}
		}
		return nil

	case TypeOnOff:
		o := cmd.OnOff
		if o.Enabled != 0 && o.Enabled != 1 {
			return &ValidationError{
				Reason: ReasonOutOfRange,
				Detail: fmt.Sprintf("on_off=%d is not 0 or 1", o.Enabled),
			}
		}
		if o.Channel > 7 {
			return &ValidationError{
				Reason: ReasonOutOfRange,
				Detail: fmt.Sprintf("channel=%d exceeds 7", o.Channel),
			}
		}
		return nil

	case TypeEmergency:
		// No payload to check.
		return nil

	default:
		return &ValidationError{
			Reason: ReasonUnknownType,
			Detail: fmt.Sprintf("command type 0x%x", uint8(cmd.Type)),
		}
	}
}
