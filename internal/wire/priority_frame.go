package wire

import "github.com/grizzly-go/grizzly/internal/protocol"

// A PriorityFrame is a PRIORITY frame
type PriorityFrame struct {
	StreamID         protocol.StreamID
	StreamDependency protocol.StreamID
	Exclusive        bool
	Weight           uint8
}

func (f *PriorityFrame) Type() protocol.FrameType { return protocol.FrameTypePriority }
