package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/grizzly-go/grizzly/internal/wire"
)

func TestFrameCounters(t *testing.T) {
	tracer := NewFrameTracerWithRegisterer(prometheus.NewRegistry())

	dataSentBefore := testutil.ToFloat64(framesSent.WithLabelValues("DATA"))
	pingReceivedBefore := testutil.ToFloat64(framesReceived.WithLabelValues("PING"))

	tracer.SentFrame(&wire.DataFrame{StreamID: 1})
	tracer.SentFrame(&wire.DataFrame{StreamID: 3})
	tracer.ReceivedFrame(&wire.PingFrame{})

	require.Equal(t, dataSentBefore+2, testutil.ToFloat64(framesSent.WithLabelValues("DATA")))
	require.Equal(t, pingReceivedBefore+1, testutil.ToFloat64(framesReceived.WithLabelValues("PING")))
}

func TestUnknownFrameCountedByRawType(t *testing.T) {
	tracer := NewFrameTracerWithRegisterer(prometheus.NewRegistry())

	before := testutil.ToFloat64(framesReceived.WithLabelValues("HTTP/2 frame type 0x2a"))
	tracer.ReceivedFrame(&wire.UnknownFrame{FrameType: 0x2a})
	require.Equal(t, before+1, testutil.ToFloat64(framesReceived.WithLabelValues("HTTP/2 frame type 0x2a")))
}

func TestSessionCounters(t *testing.T) {
	tracer := NewFrameTracerWithRegisterer(prometheus.NewRegistry())

	openedBefore := testutil.ToFloat64(sessionsOpened)
	closedBefore := testutil.ToFloat64(sessionsClosed)

	tracer.SessionOpened()
	tracer.SessionOpened()
	tracer.SessionClosed()

	require.Equal(t, openedBefore+2, testutil.ToFloat64(sessionsOpened))
	require.Equal(t, closedBefore+1, testutil.ToFloat64(sessionsClosed))
}
