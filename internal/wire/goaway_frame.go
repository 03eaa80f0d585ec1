package wire

import "github.com/grizzly-go/grizzly/internal/protocol"

// A GoAwayFrame is a GOAWAY frame.
// DebugData is nil when the peer supplied no additional debug data.
type GoAwayFrame struct {
	StreamID     protocol.StreamID // always 0 on the wire
	LastStreamID protocol.StreamID
	ErrorCode    protocol.ErrCode
	DebugData    []byte
}

func (f *GoAwayFrame) Type() protocol.FrameType { return protocol.FrameTypeGoAway }
