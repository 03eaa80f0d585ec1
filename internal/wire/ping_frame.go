package wire

import "github.com/grizzly-go/grizzly/internal/protocol"

// A PingFrame is a PING frame
type PingFrame struct {
	Ack        bool
	OpaqueData uint64
}

func (f *PingFrame) Type() protocol.FrameType { return protocol.FrameTypePing }
