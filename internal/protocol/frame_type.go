package protocol

import "fmt"

// A FrameType is the type code of an HTTP/2 frame.
// https://www.rfc-editor.org/rfc/rfc7540#section-6
type FrameType uint8

const (
	FrameTypeData         FrameType = 0x0
	FrameTypeHeaders      FrameType = 0x1
	FrameTypePriority     FrameType = 0x2
	FrameTypeRstStream    FrameType = 0x3
	FrameTypeSettings     FrameType = 0x4
	FrameTypePushPromise  FrameType = 0x5
	FrameTypePing         FrameType = 0x6
	FrameTypeGoAway       FrameType = 0x7
	FrameTypeWindowUpdate FrameType = 0x8
	FrameTypeContinuation FrameType = 0x9
)

// String returns the IETF registered name for t if available.
func (t FrameType) String() string {
	switch t {
	case FrameTypeData:
		return "DATA"
	case FrameTypeHeaders:
		return "HEADERS"
	case FrameTypePriority:
		return "PRIORITY"
	case FrameTypeRstStream:
		return "RST_STREAM"
	case FrameTypeSettings:
		return "SETTINGS"
	case FrameTypePushPromise:
		return "PUSH_PROMISE"
	case FrameTypePing:
		return "PING"
	case FrameTypeGoAway:
		return "GOAWAY"
	case FrameTypeWindowUpdate:
		return "WINDOW_UPDATE"
	case FrameTypeContinuation:
		return "CONTINUATION"
	default:
		return fmt.Sprintf("HTTP/2 frame type 0x%x", uint8(t))
	}
}
