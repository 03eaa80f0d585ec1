package http2

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grizzly-go/grizzly/internal/utils"
	"github.com/grizzly-go/grizzly/internal/wire"
)

// A Sink receives fully formatted trace records.
// Enabled must be cheap: it is checked once per traced frame.
// Implementations must be safe for concurrent use.
type Sink interface {
	Enabled() bool
	Logf(format string, args ...any)
}

// DefaultSink routes trace records to the debug level of the default
// logger.
var DefaultSink Sink = loggerSink{}

type loggerSink struct{}

func (loggerSink) Enabled() bool                   { return utils.DefaultLogger.Debug() }
func (loggerSink) Logf(format string, args ...any) { utils.DefaultLogger.Debugf(format, args...) }

// An ArgumentError is returned when a required argument of a tracing
// call is missing. It indicates a bug at the instrumentation call site,
// not a runtime condition to recover from.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string { return e.Name + " must not be nil" }

// Context says in which direction a traced frame traveled.
type Context uint8

const (
	// ContextTransmit marks frames sent to the peer.
	ContextTransmit Context = iota
	// ContextReceive marks frames received from the peer.
	ContextReceive
)

func (c Context) prefix() string {
	switch c {
	case ContextTransmit:
		return "SEND_"
	case ContextReceive:
		return "RECV_"
	default:
		panic("unknown trace context")
	}
}

const (
	eventContinuation = "CONTINUATION"
	eventData         = "DATA"
	eventGoAway       = "GOAWAY"
	eventHeaders      = "HEADERS"
	eventPing         = "PING"
	eventPriority     = "PRIORITY"
	eventPushPromise  = "PUSH_PROMISE"
	eventRst          = "RST"
	eventSettings     = "SETTINGS"
	eventUnknown      = "UNKNOWN"
	eventWindowUpdate = "WINDOW_UPDATE"
)

// The record formats are a compatibility contract with existing log
// consumers: field order matters, and the PING record's unquoted keys
// are deliberate.
const (
	continuationFormat = `{ "session":"%s", "event":"%s", "stream":"%d", "len":"%d" }`
	dataFormat         = `{ "session":"%s", "event":"%s", "stream":"%d", "fin":"%t", "len":"%d" }`
	goAwayFormat       = `{ "session":"%s", "event":"%s", "stream":"%d", "last-stream":"%d", "error-code":"%d", "detail":"%s" }`
	headersFormat      = `{ "session":"%s", "event":"%s", "stream":"%d", "parent-stream":"%d", "prioritized":"%t", "exclusive":"%t", "weight":"%d", "fin":"%t", "len":"%d", "headers":%s }`
	pingFormat         = `{ session="%s", event="%s", is-ack="%t", opaque-data="%d" }`
	priorityFormat     = `{ "session":"%s", "event":"%s", "stream":"%d", "parent-stream":"%d", "exclusive":"%t", "weight":"%d" }`
	pushPromiseFormat  = `{ "session":"%s", "event":"%s", "stream":"%d", "promised-stream":"%d", "len":"%d", "headers":%s }`
	rstFormat          = `{ "session":"%s", "event":"%s", "stream":"%d", "error-code":"%d" }`
	settingsFormat     = `{ "session":"%s", "event":"%s", "settings":{%s} }`
	unknownFormat      = `{ "session":"%s", "event":"%s", "frame-type":"%d", "len":"%d" }`
	windowUpdateFormat = `{ "session":"%s", "event":"%s", "delta":"%d" }`
	sessionOpenFormat  = `{ "session":"%s", "event":"SESSION_OPEN" }`
	sessionCloseFormat = `{ "session":"%s", "event":"SESSION_CLOSE" }`

	noDetailAvailable = "None Available"
)

// A NetLogger renders one diagnostic record per traced frame event.
// When the sink is disabled, tracing costs a single gate check and no
// formatting work is done. All methods are safe for concurrent use.
type NetLogger struct {
	sink Sink
}

// NewNetLogger creates a NetLogger emitting records to sink.
func NewNetLogger(sink Sink) *NetLogger { return &NetLogger{sink: sink} }

// IsActive reports whether trace records are currently emitted.
func (nl *NetLogger) IsActive() bool { return nl.sink.Enabled() }

// Log traces a single frame event. Every frame kind produces exactly
// one record. HEADERS and PUSH_PROMISE frames carry a header block
// that is decoded outside this component; traced through Log, their
// header object renders empty. Use LogHeaders and LogPushPromise to
// include the decoded headers.
func (nl *NetLogger) Log(ctx Context, s *Session, frame wire.Frame) error {
	if err := validateParams(s, frame); err != nil {
		return err
	}
	switch f := frame.(type) {
	case *wire.ContinuationFrame:
		nl.logContinuation(ctx, s, f)
	case *wire.DataFrame:
		nl.logData(ctx, s, f)
	case *wire.GoAwayFrame:
		nl.logGoAway(ctx, s, f)
	case *wire.HeadersFrame:
		nl.logHeaders(ctx, s, f, nil)
	case *wire.PingFrame:
		nl.logPing(ctx, s, f)
	case *wire.PriorityFrame:
		nl.logPriority(ctx, s, f)
	case *wire.PushPromiseFrame:
		nl.logPushPromise(ctx, s, f, nil)
	case *wire.RstStreamFrame:
		nl.logRstStream(ctx, s, f)
	case *wire.SettingsFrame:
		nl.logSettings(ctx, s, f)
	case *wire.WindowUpdateFrame:
		nl.logWindowUpdate(ctx, s, f)
	case *wire.UnknownFrame:
		nl.logUnknown(ctx, s, f)
	default:
		// a frame type the tracer doesn't know still gets a record
		nl.logUnknown(ctx, s, &wire.UnknownFrame{FrameType: frame.Type()})
	}
	return nil
}

// LogHeaders traces a HEADERS frame together with its decoded header
// fields.
func (nl *NetLogger) LogHeaders(ctx Context, s *Session, f *wire.HeadersFrame, headers map[string]string) error {
	if s == nil {
		return &ArgumentError{Name: "session"}
	}
	if f == nil {
		return &ArgumentError{Name: "frame"}
	}
	nl.logHeaders(ctx, s, f, headers)
	return nil
}

// LogPushPromise traces a PUSH_PROMISE frame together with its decoded
// header fields.
func (nl *NetLogger) LogPushPromise(ctx Context, s *Session, f *wire.PushPromiseFrame, headers map[string]string) error {
	if s == nil {
		return &ArgumentError{Name: "session"}
	}
	if f == nil {
		return &ArgumentError{Name: "frame"}
	}
	nl.logPushPromise(ctx, s, f, headers)
	return nil
}

// LogSessionOpen traces the start of a session.
func (nl *NetLogger) LogSessionOpen(s *Session) error {
	return nl.logSessionEvent(sessionOpenFormat, s)
}

// LogSessionClose traces the end of a session.
func (nl *NetLogger) LogSessionClose(s *Session) error {
	return nl.logSessionEvent(sessionCloseFormat, s)
}

func (nl *NetLogger) logSessionEvent(format string, s *Session) error {
	if s == nil {
		return &ArgumentError{Name: "session"}
	}
	if nl.IsActive() {
		nl.sink.Logf(format, escape(s.Connection().String()))
	}
	return nil
}

func (nl *NetLogger) logContinuation(ctx Context, s *Session, f *wire.ContinuationFrame) {
	if nl.IsActive() {
		nl.sink.Logf(continuationFormat,
			escape(s.Connection().String()), ctx.prefix()+eventContinuation, f.StreamID, f.Length())
	}
}

func (nl *NetLogger) logData(ctx Context, s *Session, f *wire.DataFrame) {
	if nl.IsActive() {
		nl.sink.Logf(dataFormat,
			escape(s.Connection().String()), ctx.prefix()+eventData, f.StreamID, f.EndStream, f.Length())
	}
}

func (nl *NetLogger) logGoAway(ctx Context, s *Session, f *wire.GoAwayFrame) {
	if nl.IsActive() {
		detail := noDetailAvailable
		if f.DebugData != nil {
			detail = escape(string(f.DebugData))
		}
		nl.sink.Logf(goAwayFormat,
			escape(s.Connection().String()), ctx.prefix()+eventGoAway, f.StreamID, f.LastStreamID, f.ErrorCode, detail)
	}
}

func (nl *NetLogger) logHeaders(ctx Context, s *Session, f *wire.HeadersFrame, headers map[string]string) {
	if nl.IsActive() {
		nl.sink.Logf(headersFormat,
			escape(s.Connection().String()), ctx.prefix()+eventHeaders, f.StreamID, f.StreamDependency,
			f.Prioritized, f.Exclusive, f.Weight, f.EndStream, f.Length(), headersJSON(headers))
	}
}

func (nl *NetLogger) logPing(ctx Context, s *Session, f *wire.PingFrame) {
	if nl.IsActive() {
		nl.sink.Logf(pingFormat,
			escape(s.Connection().String()), ctx.prefix()+eventPing, f.Ack, f.OpaqueData)
	}
}

func (nl *NetLogger) logPriority(ctx Context, s *Session, f *wire.PriorityFrame) {
	if nl.IsActive() {
		nl.sink.Logf(priorityFormat,
			escape(s.Connection().String()), ctx.prefix()+eventPriority, f.StreamID, f.StreamDependency,
			f.Exclusive, f.Weight)
	}
}

func (nl *NetLogger) logPushPromise(ctx Context, s *Session, f *wire.PushPromiseFrame, headers map[string]string) {
	if nl.IsActive() {
		nl.sink.Logf(pushPromiseFormat,
			escape(s.Connection().String()), ctx.prefix()+eventPushPromise, f.StreamID, f.PromisedStreamID,
			f.Length(), headersJSON(headers))
	}
}

func (nl *NetLogger) logRstStream(ctx Context, s *Session, f *wire.RstStreamFrame) {
	if nl.IsActive() {
		nl.sink.Logf(rstFormat,
			escape(s.Connection().String()), ctx.prefix()+eventRst, f.StreamID, f.ErrorCode)
	}
}

func (nl *NetLogger) logSettings(ctx Context, s *Session, f *wire.SettingsFrame) {
	if nl.IsActive() {
		var sb strings.Builder
		for i, setting := range f.Settings {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, `"%s": "%d"`, setting.ID, setting.Value)
		}
		nl.sink.Logf(settingsFormat,
			escape(s.Connection().String()), ctx.prefix()+eventSettings, sb.String())
	}
}

func (nl *NetLogger) logWindowUpdate(ctx Context, s *Session, f *wire.WindowUpdateFrame) {
	if nl.IsActive() {
		nl.sink.Logf(windowUpdateFormat,
			escape(s.Connection().String()), ctx.prefix()+eventWindowUpdate, f.WindowSizeIncrement)
	}
}

func (nl *NetLogger) logUnknown(ctx Context, s *Session, f *wire.UnknownFrame) {
	if nl.IsActive() {
		nl.sink.Logf(unknownFormat,
			escape(s.Connection().String()), ctx.prefix()+eventUnknown, f.FrameType, f.Length())
	}
}

func validateParams(s *Session, frame wire.Frame) error {
	if s == nil {
		return &ArgumentError{Name: "session"}
	}
	if frame == nil {
		return &ArgumentError{Name: "frame"}
	}
	return nil
}

// headersJSON renders decoded header fields as a single-level JSON
// object. Keys are sorted: Go randomizes map iteration, and trace
// records need to be comparable across runs.
func headersJSON(headers map[string]string) string {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)
	var sb strings.Builder
	sb.Grow(64)
	sb.WriteString("{ ")
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('"')
		sb.WriteString(escape(name))
		sb.WriteString(`":"`)
		sb.WriteString(escape(headers[name]))
		sb.WriteByte('"')
	}
	sb.WriteString(" }")
	return sb.String()
}

// escape backslash-escapes the characters that would break the quoted
// fields of a record: double quotes and backslashes. A connection's
// string representation is the usual source of either.
func escape(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
