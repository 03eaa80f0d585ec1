package http2

import (
	"fmt"
	"net"
	"testing"

	"github.com/grizzly-go/grizzly"
	"github.com/grizzly-go/grizzly/internal/wire"

	"github.com/stretchr/testify/require"
)

type testConn struct{ id string }

var _ grizzly.Connection = &testConn{}

func (c *testConn) String() string                               { return c.id }
func (c *testConn) Processor() grizzly.Processor                 { return nil }
func (c *testConn) ProcessorSelector() grizzly.ProcessorSelector { return nil }
func (c *testConn) LocalAddr() net.Addr                          { return nil }
func (c *testConn) RemoteAddr() net.Addr                         { return nil }

// recordingSink captures formatted records and counts gate checks.
type recordingSink struct {
	enabled      bool
	enabledCalls int
	records      []string
}

var _ Sink = &recordingSink{}

func (s *recordingSink) Enabled() bool { s.enabledCalls++; return s.enabled }
func (s *recordingSink) Logf(format string, args ...any) {
	s.records = append(s.records, fmt.Sprintf(format, args...))
}

func newTestNetLogger() (*NetLogger, *recordingSink, *Session) {
	sink := &recordingSink{enabled: true}
	nl := NewNetLogger(sink)
	sess := NewSession(&testConn{id: "conn-1"}, WithNetLogger(nl))
	return nl, sink, sess
}

func TestNetLogDataFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.Log(ContextReceive, sess, &wire.DataFrame{
		StreamID:  7,
		EndStream: true,
		Data:      make([]byte, 128),
	}))
	require.Equal(t,
		[]string{`{ "session":"conn-1", "event":"RECV_DATA", "stream":"7", "fin":"true", "len":"128" }`},
		sink.records,
	)
}

func TestNetLogContinuationFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.Log(ContextReceive, sess, &wire.ContinuationFrame{
		StreamID:            5,
		HeaderBlockFragment: []byte{1, 2, 3},
	}))
	require.Equal(t,
		[]string{`{ "session":"conn-1", "event":"RECV_CONTINUATION", "stream":"5", "len":"3" }`},
		sink.records,
	)
}

func TestNetLogGoAwayFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.Log(ContextTransmit, sess, &wire.GoAwayFrame{
		LastStreamID: 41,
		ErrorCode:    11, // ENHANCE_YOUR_CALM
		DebugData:    []byte("going away"),
	}))
	require.Equal(t,
		[]string{`{ "session":"conn-1", "event":"SEND_GOAWAY", "stream":"0", "last-stream":"41", "error-code":"11", "detail":"going away" }`},
		sink.records,
	)
}

func TestNetLogGoAwayFrameWithoutDebugData(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.Log(ContextReceive, sess, &wire.GoAwayFrame{LastStreamID: 7}))
	require.Len(t, sink.records, 1)
	require.Contains(t, sink.records[0], `"detail":"None Available"`)
}

func TestNetLogHeadersFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.LogHeaders(ContextReceive, sess, &wire.HeadersFrame{
		StreamID:            5,
		StreamDependency:    3,
		Prioritized:         true,
		Weight:              16,
		HeaderBlockFragment: make([]byte, 10),
	}, map[string]string{":path": "/", ":method": "GET"}))
	require.Equal(t,
		[]string{`{ "session":"conn-1", "event":"RECV_HEADERS", "stream":"5", "parent-stream":"3", "prioritized":"true", "exclusive":"false", "weight":"16", "fin":"false", "len":"10", "headers":{ ":method":"GET", ":path":"/" } }`},
		sink.records,
	)
}

func TestNetLogHeadersFrameThroughGenericEntryPoint(t *testing.T) {
	// without the decoded headers the header object renders empty
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.Log(ContextReceive, sess, &wire.HeadersFrame{StreamID: 5}))
	require.Len(t, sink.records, 1)
	require.Contains(t, sink.records[0], `"event":"RECV_HEADERS"`)
	require.Contains(t, sink.records[0], `"headers":{  }`)
}

func TestNetLogPingFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.Log(ContextReceive, sess, &wire.PingFrame{OpaqueData: 12345}))
	require.Equal(t,
		[]string{`{ session="conn-1", event="RECV_PING", is-ack="false", opaque-data="12345" }`},
		sink.records,
	)
}

func TestNetLogPriorityFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.Log(ContextTransmit, sess, &wire.PriorityFrame{
		StreamID:         9,
		StreamDependency: 7,
		Exclusive:        true,
		Weight:           255,
	}))
	require.Equal(t,
		[]string{`{ "session":"conn-1", "event":"SEND_PRIORITY", "stream":"9", "parent-stream":"7", "exclusive":"true", "weight":"255" }`},
		sink.records,
	)
}

func TestNetLogPushPromiseFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.LogPushPromise(ContextTransmit, sess, &wire.PushPromiseFrame{
		StreamID:            3,
		PromisedStreamID:    4,
		HeaderBlockFragment: []byte{1, 2},
	}, map[string]string{":path": "/style.css"}))
	require.Equal(t,
		[]string{`{ "session":"conn-1", "event":"SEND_PUSH_PROMISE", "stream":"3", "promised-stream":"4", "len":"2", "headers":{ ":path":"/style.css" } }`},
		sink.records,
	)
}

func TestNetLogRstStreamFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.Log(ContextReceive, sess, &wire.RstStreamFrame{
		StreamID:  3,
		ErrorCode: 8, // CANCEL
	}))
	require.Equal(t,
		[]string{`{ "session":"conn-1", "event":"RECV_RST", "stream":"3", "error-code":"8" }`},
		sink.records,
	)
}

func TestNetLogSettingsFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	// settings render in declared order, not in identifier order
	require.NoError(t, nl.Log(ContextTransmit, sess, &wire.SettingsFrame{
		Settings: []wire.Setting{
			{ID: 4, Value: 65535}, // SETTINGS_INITIAL_WINDOW_SIZE
			{ID: 3, Value: 100},   // SETTINGS_MAX_CONCURRENT_STREAMS
		},
	}))
	require.Equal(t,
		[]string{`{ "session":"conn-1", "event":"SEND_SETTINGS", "settings":{"SETTINGS_INITIAL_WINDOW_SIZE": "65535", "SETTINGS_MAX_CONCURRENT_STREAMS": "100"} }`},
		sink.records,
	)
}

func TestNetLogEmptySettingsFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.Log(ContextTransmit, sess, &wire.SettingsFrame{}))
	require.Equal(t,
		[]string{`{ "session":"conn-1", "event":"SEND_SETTINGS", "settings":{} }`},
		sink.records,
	)
}

func TestNetLogWindowUpdateFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.Log(ContextReceive, sess, &wire.WindowUpdateFrame{WindowSizeIncrement: 32768}))
	require.Equal(t,
		[]string{`{ "session":"conn-1", "event":"RECV_WINDOW_UPDATE", "delta":"32768" }`},
		sink.records,
	)
}

func TestNetLogUnknownFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.Log(ContextReceive, sess, &wire.UnknownFrame{
		FrameType: 42,
		Payload:   []byte{1, 2, 3, 4},
	}))
	require.Equal(t,
		[]string{`{ "session":"conn-1", "event":"RECV_UNKNOWN", "frame-type":"42", "len":"4" }`},
		sink.records,
	)
}

func TestNetLogSessionEvents(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	require.NoError(t, nl.LogSessionOpen(sess))
	require.NoError(t, nl.LogSessionClose(sess))
	require.Equal(t, []string{
		`{ "session":"conn-1", "event":"SESSION_OPEN" }`,
		`{ "session":"conn-1", "event":"SESSION_CLOSE" }`,
	}, sink.records)
}

func TestNetLogDispatchIsExhaustive(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	frames := []wire.Frame{
		&wire.ContinuationFrame{},
		&wire.DataFrame{},
		&wire.GoAwayFrame{},
		&wire.HeadersFrame{},
		&wire.PingFrame{},
		&wire.PriorityFrame{},
		&wire.PushPromiseFrame{},
		&wire.RstStreamFrame{},
		&wire.SettingsFrame{},
		&wire.WindowUpdateFrame{},
		&wire.UnknownFrame{FrameType: 0xff},
	}
	for _, f := range frames {
		require.NoError(t, nl.Log(ContextReceive, sess, f))
	}
	require.Len(t, sink.records, len(frames))
}

func TestNetLogInactive(t *testing.T) {
	sink := &recordingSink{enabled: false}
	nl := NewNetLogger(sink)
	sess := NewSession(&testConn{id: "conn-1"}, WithNetLogger(nl))

	require.False(t, nl.IsActive())
	sink.enabledCalls = 0
	require.NoError(t, nl.Log(ContextReceive, sess, &wire.DataFrame{StreamID: 1}))
	require.NoError(t, nl.LogHeaders(ContextReceive, sess, &wire.HeadersFrame{}, map[string]string{"k": "v"}))
	require.NoError(t, nl.LogSessionOpen(sess))
	require.Empty(t, sink.records)
	// tracing while disabled costs exactly one gate check per call
	require.Equal(t, 3, sink.enabledCalls)
}

func TestNetLogNilSession(t *testing.T) {
	nl, sink, _ := newTestNetLogger()
	err := nl.Log(ContextReceive, nil, &wire.DataFrame{})
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, "session", argErr.Name)
	require.EqualError(t, err, "session must not be nil")
	require.Empty(t, sink.records)
}

func TestNetLogNilFrame(t *testing.T) {
	nl, sink, sess := newTestNetLogger()
	for _, err := range []error{
		nl.Log(ContextReceive, sess, nil),
		nl.LogHeaders(ContextReceive, sess, nil, nil),
		nl.LogPushPromise(ContextReceive, sess, nil, nil),
	} {
		var argErr *ArgumentError
		require.ErrorAs(t, err, &argErr)
		require.Equal(t, "frame", argErr.Name)
	}
	require.Empty(t, sink.records)
}

func TestNetLogPreconditionsRunBeforeActivityCheck(t *testing.T) {
	sink := &recordingSink{enabled: false}
	nl := NewNetLogger(sink)
	require.Error(t, nl.Log(ContextReceive, nil, &wire.DataFrame{}))
	require.Error(t, nl.LogSessionOpen(nil))
	// the gate was never consulted
	require.Zero(t, sink.enabledCalls)
}

func TestEscape(t *testing.T) {
	require.Equal(t, "conn-1", escape("conn-1"))
	require.Equal(t, `conn \"a\"`, escape(`conn "a"`))
	require.Equal(t, `a\\b`, escape(`a\b`))
	require.Equal(t, "it's fine", escape("it's fine"))
}

func TestNetLogEscapesSessionIdentity(t *testing.T) {
	sink := &recordingSink{enabled: true}
	nl := NewNetLogger(sink)
	sess := NewSession(&testConn{id: `conn "x"`}, WithNetLogger(nl))
	require.NoError(t, nl.Log(ContextReceive, sess, &wire.PriorityFrame{}))
	require.Contains(t, sink.records[0], `"session":"conn \"x\""`)
}

func TestHeadersJSON(t *testing.T) {
	require.Equal(t, "{  }", headersJSON(nil))
	require.Equal(t, `{ "a":"1" }`, headersJSON(map[string]string{"a": "1"}))
	require.Equal(t,
		`{ "a":"1", "b":"2", "c":"3" }`,
		headersJSON(map[string]string{"c": "3", "a": "1", "b": "2"}),
	)
}
