package wire

import "github.com/grizzly-go/grizzly/internal/protocol"

// A PushPromiseFrame is a PUSH_PROMISE frame
type PushPromiseFrame struct {
	StreamID            protocol.StreamID
	PromisedStreamID    protocol.StreamID
	EndHeaders          bool
	HeaderBlockFragment []byte
}

func (f *PushPromiseFrame) Type() protocol.FrameType { return protocol.FrameTypePushPromise }

// Length returns the payload length.
func (f *PushPromiseFrame) Length() protocol.ByteCount {
	return protocol.ByteCount(len(f.HeaderBlockFragment))
}
