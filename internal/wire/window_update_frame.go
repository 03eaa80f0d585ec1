package wire

import "github.com/grizzly-go/grizzly/internal/protocol"

// A WindowUpdateFrame is a WINDOW_UPDATE frame
type WindowUpdateFrame struct {
	StreamID            protocol.StreamID
	WindowSizeIncrement uint32
}

func (f *WindowUpdateFrame) Type() protocol.FrameType { return protocol.FrameTypeWindowUpdate }
