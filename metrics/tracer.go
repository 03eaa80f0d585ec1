// Package metrics provides Prometheus instrumentation for HTTP/2
// sessions.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/grizzly-go/grizzly/http2"
	"github.com/grizzly-go/grizzly/internal/wire"
)

const metricNamespace = "grizzly"

var (
	framesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "http2_frames_sent_total",
			Help:      "HTTP/2 frames sent",
		},
		[]string{"frame_type"},
	)
	framesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "http2_frames_received_total",
			Help:      "HTTP/2 frames received",
		},
		[]string{"frame_type"},
	)
	sessionsOpened = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "http2_sessions_opened_total",
			Help:      "HTTP/2 sessions opened",
		},
	)
	sessionsClosed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "http2_sessions_closed_total",
			Help:      "HTTP/2 sessions closed",
		},
	)
)

// NewFrameTracer creates a tracer using the default Prometheus
// registerer. The tracer can be set on a session with
// http2.WithFrameTracer.
func NewFrameTracer() http2.FrameTracer {
	return NewFrameTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewFrameTracerWithRegisterer creates a tracer using a given
// Prometheus registerer.
func NewFrameTracerWithRegisterer(registerer prometheus.Registerer) http2.FrameTracer {
	for _, c := range [...]prometheus.Collector{
		framesSent,
		framesReceived,
		sessionsOpened,
		sessionsClosed,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}
	return &frameTracer{}
}

type frameTracer struct{}

var _ http2.FrameTracer = &frameTracer{}

func (t *frameTracer) SentFrame(f wire.Frame) {
	framesSent.WithLabelValues(f.Type().String()).Inc()
}

func (t *frameTracer) ReceivedFrame(f wire.Frame) {
	framesReceived.WithLabelValues(f.Type().String()).Inc()
}

func (t *frameTracer) SessionOpened() { sessionsOpened.Inc() }
func (t *frameTracer) SessionClosed() { sessionsClosed.Inc() }
