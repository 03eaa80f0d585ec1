package wire

import "github.com/grizzly-go/grizzly/internal/protocol"

// A HeadersFrame is a HEADERS frame.
// The header block fragment is the still-compressed HPACK payload.
type HeadersFrame struct {
	StreamID            protocol.StreamID
	StreamDependency    protocol.StreamID
	Exclusive           bool
	Prioritized         bool
	Weight              uint8
	EndStream           bool
	EndHeaders          bool
	HeaderBlockFragment []byte
}

func (f *HeadersFrame) Type() protocol.FrameType { return protocol.FrameTypeHeaders }

// Length returns the payload length.
func (f *HeadersFrame) Length() protocol.ByteCount {
	return protocol.ByteCount(len(f.HeaderBlockFragment))
}
