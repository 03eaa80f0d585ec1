// Package http2 contains the HTTP/2-facing parts of the engine:
// sessions and the diagnostic tracing of their frames.
package http2

import (
	"fmt"
	"sync"

	"golang.org/x/net/http2/hpack"

	"github.com/grizzly-go/grizzly"
	"github.com/grizzly-go/grizzly/internal/wire"
)

const initialHeaderTableSize = 4096

// A FrameTracer observes every frame sent and received on a session.
// Implementations must be safe for concurrent use across sessions.
type FrameTracer interface {
	SentFrame(wire.Frame)
	ReceivedFrame(wire.Frame)
	SessionOpened()
	SessionClosed()
}

// A Session is one multiplexed HTTP/2 session over a connection.
type Session struct {
	conn grizzly.Connection

	netLog *NetLogger
	tracer FrameTracer // optional

	// HPACK state is directional: header blocks we receive and header
	// blocks we send are compressed against separate dynamic tables.
	recvMutex   sync.Mutex
	recvDecoder *hpack.Decoder
	sentMutex   sync.Mutex
	sentDecoder *hpack.Decoder
}

// A SessionOption configures a Session.
type SessionOption func(*Session)

// WithNetLogger sets the diagnostic frame logger.
func WithNetLogger(nl *NetLogger) SessionOption {
	return func(s *Session) { s.netLog = nl }
}

// WithFrameTracer registers a tracer observing every frame on the
// session.
func WithFrameTracer(t FrameTracer) SessionOption {
	return func(s *Session) { s.tracer = t }
}

// NewSession creates a session running over conn.
func NewSession(conn grizzly.Connection, opts ...SessionOption) *Session {
	s := &Session{conn: conn}
	for _, opt := range opts {
		opt(s)
	}
	if s.netLog == nil {
		s.netLog = NewNetLogger(DefaultSink)
	}
	s.recvDecoder = hpack.NewDecoder(initialHeaderTableSize, nil)
	s.sentDecoder = hpack.NewDecoder(initialHeaderTableSize, nil)
	return s
}

// Connection returns the connection the session runs over.
func (s *Session) Connection() grizzly.Connection { return s.conn }

func (s *Session) String() string { return s.conn.String() }

// Open records the start of the session.
func (s *Session) Open() error {
	if s.tracer != nil {
		s.tracer.SessionOpened()
	}
	return s.netLog.LogSessionOpen(s)
}

// Close records the end of the session.
func (s *Session) Close() error {
	if s.tracer != nil {
		s.tracer.SessionClosed()
	}
	return s.netLog.LogSessionClose(s)
}

// FrameSent traces a frame transmitted on the session.
func (s *Session) FrameSent(f wire.Frame) error {
	if f == nil {
		return &ArgumentError{Name: "frame"}
	}
	if s.tracer != nil {
		s.tracer.SentFrame(f)
	}
	return s.trace(ContextTransmit, f)
}

// FrameReceived traces a frame received on the session.
func (s *Session) FrameReceived(f wire.Frame) error {
	if f == nil {
		return &ArgumentError{Name: "frame"}
	}
	if s.tracer != nil {
		s.tracer.ReceivedFrame(f)
	}
	return s.trace(ContextReceive, f)
}

func (s *Session) trace(ctx Context, f wire.Frame) error {
	switch f := f.(type) {
	case *wire.HeadersFrame:
		headers, err := s.decodeHeaderBlock(ctx, f.HeaderBlockFragment)
		if err != nil {
			return err
		}
		return s.netLog.LogHeaders(ctx, s, f, headers)
	case *wire.PushPromiseFrame:
		headers, err := s.decodeHeaderBlock(ctx, f.HeaderBlockFragment)
		if err != nil {
			return err
		}
		return s.netLog.LogPushPromise(ctx, s, f, headers)
	default:
		return s.netLog.Log(ctx, s, f)
	}
}

// decodeHeaderBlock decompresses one complete header block.
// It always runs, even when tracing is disabled: HPACK requires every
// header block to pass through the dynamic table to keep the
// compression state of the session consistent.
func (s *Session) decodeHeaderBlock(ctx Context, block []byte) (map[string]string, error) {
	var dec *hpack.Decoder
	switch ctx {
	case ContextReceive:
		s.recvMutex.Lock()
		defer s.recvMutex.Unlock()
		dec = s.recvDecoder
	case ContextTransmit:
		s.sentMutex.Lock()
		defer s.sentMutex.Unlock()
		dec = s.sentDecoder
	default:
		panic("unknown trace context")
	}
	fields, err := dec.DecodeFull(block)
	if err != nil {
		return nil, fmt.Errorf("decoding header block: %w", err)
	}
	headers := make(map[string]string, len(fields))
	for _, f := range fields {
		headers[f.Name] = f.Value
	}
	return headers, nil
}
