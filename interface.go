// Package grizzly provides the connection-facing abstractions of the
// engine: connections, I/O events, and the processors handling them.
package grizzly

import (
	"context"
	"fmt"
	"net"
)

// A Processor handles I/O events occurring on a connection.
type Processor interface {
	// IsInterested reports whether the processor wants to handle
	// events of the given kind.
	IsInterested(IOEvent) bool
	// Process handles a single I/O event on the given connection.
	Process(context.Context, IOEvent, Connection) error
}

// A ProcessorSelector resolves the Processor responsible for an I/O
// event on a connection. It returns nil if no processor can currently
// handle the event; the event loop decides what to do in that case.
type ProcessorSelector interface {
	Select(IOEvent, Connection) Processor
}

// A Connection is a bound transport endpoint. The processor and
// selector bindings are owned by the transport; this package only ever
// reads them. The connection's string representation is used as its
// identity in diagnostic output.
type Connection interface {
	fmt.Stringer

	// Processor returns the processor bound to the connection, if any.
	Processor() Processor
	// ProcessorSelector returns the selection strategy bound to the
	// connection, if any.
	ProcessorSelector() ProcessorSelector

	LocalAddr() net.Addr
	RemoteAddr() net.Addr
}
