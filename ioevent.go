package grizzly

// An IOEvent is a kind of I/O readiness reported by the transport.
type IOEvent uint8

const (
	// IOEventNone is the zero event. No processor handles it.
	IOEventNone IOEvent = iota
	// IOEventAccept occurs when a server-side connection was accepted
	IOEventAccept
	// IOEventConnect occurs when a client-side connect completed
	IOEventConnect
	// IOEventRead occurs when the connection is ready to be read from
	IOEventRead
	// IOEventWrite occurs when the connection is ready to be written to
	IOEventWrite
	// IOEventClose occurs when the connection was closed
	IOEventClose
)

func (e IOEvent) String() string {
	switch e {
	case IOEventNone:
		return "NONE"
	case IOEventAccept:
		return "ACCEPT"
	case IOEventConnect:
		return "CONNECT"
	case IOEventRead:
		return "READ"
	case IOEventWrite:
		return "WRITE"
	case IOEventClose:
		return "CLOSE"
	default:
		panic("unknown IO event")
	}
}
