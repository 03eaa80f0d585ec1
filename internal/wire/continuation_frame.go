package wire

import "github.com/grizzly-go/grizzly/internal/protocol"

// A ContinuationFrame is a CONTINUATION frame
type ContinuationFrame struct {
	StreamID            protocol.StreamID
	EndHeaders          bool
	HeaderBlockFragment []byte
}

func (f *ContinuationFrame) Type() protocol.FrameType { return protocol.FrameTypeContinuation }

// Length returns the payload length.
func (f *ContinuationFrame) Length() protocol.ByteCount {
	return protocol.ByteCount(len(f.HeaderBlockFragment))
}
