// Package wire contains the decoded representations of HTTP/2 frames.
package wire

import "github.com/grizzly-go/grizzly/internal/protocol"

// A Frame is one decoded HTTP/2 frame.
// Frames are immutable values; the engine decodes them once and only
// reads them afterwards.
type Frame interface {
	Type() protocol.FrameType
}
