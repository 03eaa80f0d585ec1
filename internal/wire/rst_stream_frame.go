package wire

import "github.com/grizzly-go/grizzly/internal/protocol"

// A RstStreamFrame is a RST_STREAM frame
type RstStreamFrame struct {
	StreamID  protocol.StreamID
	ErrorCode protocol.ErrCode
}

func (f *RstStreamFrame) Type() protocol.FrameType { return protocol.FrameTypeRstStream }
