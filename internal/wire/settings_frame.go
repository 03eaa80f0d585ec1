package wire

import "github.com/grizzly-go/grizzly/internal/protocol"

// A Setting is one identifier / value pair of a SETTINGS frame.
type Setting struct {
	ID    protocol.SettingID
	Value uint32
}

// A SettingsFrame is a SETTINGS frame.
// Settings keep the order they were declared in on the wire.
type SettingsFrame struct {
	Ack      bool
	Settings []Setting
}

func (f *SettingsFrame) Type() protocol.FrameType { return protocol.FrameTypeSettings }
