// Package netlogwriter exports trace records to a file-like sink as a
// stream of JSON events, one per line. A Writer can be plugged into the
// http2 NetLogger as its sink.
package netlogwriter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/francoispqt/gojay"
)

const eventChanSize = 50

type event struct {
	RelativeTime time.Duration
	Record       string
}

var _ gojay.MarshalerJSONObject = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("time", float64(e.RelativeTime.Nanoseconds())/1e6)
	enc.StringKey("record", e.Record)
}

// A Writer asynchronously encodes trace records to an io.WriteCloser.
// Records are buffered in a channel and encoded by a dedicated
// goroutine, keeping the frame processing path free of I/O.
type Writer struct {
	w io.WriteCloser

	referenceTime time.Time
	events        chan event
	encodeErr     error
	runStopped    chan struct{}
	closeOnce     sync.Once
}

// NewWriter creates a Writer exporting to w.
// Run must be called for records to be encoded.
func NewWriter(w io.WriteCloser) *Writer {
	return &Writer{
		w:             w,
		referenceTime: time.Now(),
		events:        make(chan event, eventChanSize),
		runStopped:    make(chan struct{}),
	}
}

// Enabled reports whether the writer accepts records. It always does.
func (w *Writer) Enabled() bool { return true }

// Logf queues one formatted trace record.
// It must not be called after Close.
func (w *Writer) Logf(format string, args ...any) {
	w.events <- event{
		RelativeTime: time.Since(w.referenceTime),
		Record:       fmt.Sprintf(format, args...),
	}
}

// Run encodes queued records until Close is called.
func (w *Writer) Run() {
	defer close(w.runStopped)
	enc := gojay.NewEncoder(w.w)
	for ev := range w.events {
		if w.encodeErr != nil { // if encoding failed, just continue draining the event channel
			continue
		}
		if err := enc.Encode(ev); err != nil {
			w.encodeErr = err
			continue
		}
		if _, err := w.w.Write([]byte{'\n'}); err != nil {
			w.encodeErr = err
		}
	}
}

// Close flushes all queued records and closes the underlying writer.
func (w *Writer) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.events)
		<-w.runStopped
		err = w.encodeErr
		if cerr := w.w.Close(); err == nil {
			err = cerr
		}
	})
	return err
}
