package grizzly

// The DefaultProcessorSelector resolves events using the connection's
// own processor preferences. The processor bound to the connection is
// checked first: if it is interested in the event, it keeps handling
// it. Otherwise selection is delegated to the connection's own
// ProcessorSelector, so that a different strategy (e.g. protocol
// negotiation) can run before a processor is pinned.
type DefaultProcessorSelector struct{}

var _ ProcessorSelector = DefaultProcessorSelector{}

// Select returns the processor responsible for handling ev on conn, or
// nil if no processor can currently handle it. It never modifies the
// connection's bindings; repeated calls on an unchanged connection
// return the same result.
func (DefaultProcessorSelector) Select(ev IOEvent, conn Connection) Processor {
	if p := conn.Processor(); p != nil && p.IsInterested(ev) {
		return p
	}
	if s := conn.ProcessorSelector(); s != nil {
		return s.Select(ev, conn)
	}
	return nil
}
