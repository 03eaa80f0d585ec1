package wire

import "github.com/grizzly-go/grizzly/internal/protocol"

// A DataFrame is a DATA frame
type DataFrame struct {
	StreamID  protocol.StreamID
	EndStream bool
	Data      []byte
}

func (f *DataFrame) Type() protocol.FrameType { return protocol.FrameTypeData }

// Length returns the payload length.
func (f *DataFrame) Length() protocol.ByteCount { return protocol.ByteCount(len(f.Data)) }
