// internal/transport/transport.go
package transport

import "github.com/nicekhan23/battery/internal/command"

// Transport delivers commands to the charger hardware. The admission pool
// never calls it; a consumer loop forwards taken commands here.
type Transport interface {
	Send(cmd command.Command) error
	Close() error
}

// frameWriter is the exact contract the transport needs from a link
// client. IMPORTANT: there must be NO other version of this interface
// anywhere.
type frameWriter interface {
	WriteFrame(frame []byte) error
	Close() error
}

// linkTransport encodes commands and hands the frames to a link client.
type linkTransport struct {
	w frameWriter
}

func (t *linkTransport) Send(cmd command.Command) error {
	return t.w.WriteFrame(Encode(cmd))
}

func (t *linkTransport) Close() error {
	return t.w.Close()
}
