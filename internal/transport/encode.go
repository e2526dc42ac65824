// internal/transport/encode.go
package transport

import "github.com/nicekhan23/battery/internal/command"

// FrameSize is the fixed length of an encoded command frame.
const FrameSize = 4

// Encode serializes cmd into the charger's fixed frame: the command code
// byte followed by the payload bytes, zero-padded. Emergency carries no
// payload, so its frame is the code plus padding.
func Encode(cmd command.Command) []byte {
	frame := make([]byte, FrameSize)
	frame[0] = byte(cmd.Type)

	switch cmd.Type {
	case command.TypeSetParams:
		frame[1] = cmd.SetParams.MinLevel
		frame[2] = cmd.SetParams.MaxLevel
		frame[3] = cmd.SetParams.MaxTime
	case command.TypeOnOff:
		frame[1] = cmd.OnOff.Enabled
		frame[2] = cmd.OnOff.Channel
	}

	return frame
}
