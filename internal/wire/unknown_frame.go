package wire

import "github.com/grizzly-go/grizzly/internal/protocol"

// An UnknownFrame is a frame of a type this implementation doesn't know.
// The engine skips its payload but keeps it around for diagnostics.
type UnknownFrame struct {
	FrameType protocol.FrameType
	StreamID  protocol.StreamID
	Payload   []byte
}

func (f *UnknownFrame) Type() protocol.FrameType { return f.FrameType }

// Length returns the payload length.
func (f *UnknownFrame) Length() protocol.ByteCount { return protocol.ByteCount(len(f.Payload)) }
