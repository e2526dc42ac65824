// internal/command/command.go
package command

import "fmt"

// Type identifies a charger command.
type Type uint8

// Command codes understood by the charger firmware.
const (
	TypeSetParams Type = 0x63 // set charging parameters
	TypeOnOff     Type = 0x64 // switch a channel on or off
	TypeEmergency Type = 0x65 // emergency stop, no payload
)

func (t Type) String() string {
	switch t {
	case TypeSetParams:
		return "set_params"
	case TypeOnOff:
		return "on_off"
	case TypeEmergency:
		return "emergency"
	default:
		return fmt.Sprintf("unknown(0x%x)", uint8(t))
	}
}

// SetParams holds the charging limits applied to every channel.
type SetParams struct {
	MinLevel uint8 // battery percentage, 0-100
	MaxLevel uint8 // battery percentage, 0-100
	MaxTime  uint8 // charging time in minutes, 1-240
}

// OnOff switches a single charger channel.
type OnOff struct {
	Enabled uint8 // 0=off, 1=on
	Channel uint8 // channel number, 0-7
}

// Command is one device command. The payload field selected by Type is the
// only one that carries meaning; Emergency has no payload at all.
// Commands are plain values and compare with ==.
type Command struct {
	Type      Type
	SetParams SetParams
	OnOff     OnOff
}

// NewSetParams builds a SET_PARAMS command. The result is unvalidated.
func NewSetParams(minLevel, maxLevel, maxTime uint8) Command {
	return Command{
		Type: TypeSetParams,
		SetParams: SetParams{
			MinLevel: minLevel,
			MaxLevel: maxLevel,
			MaxTime:  maxTime,
		},
	}
}

// NewOnOff builds an ON_OFF command. The result is unvalidated.
func NewOnOff(enabled, channel uint8) Command {
	return Command{
		Type: TypeOnOff,
		OnOff: OnOff{
			Enabled: enabled,
			Channel: channel,
		},
	}
}

// NewEmergency builds an EMERGENCY command. Always valid.
func NewEmergency() Command {
	return Command{Type: TypeEmergency}
}
