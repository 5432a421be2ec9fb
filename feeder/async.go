package feeder

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// AsyncFeeder is a channel-backed feeder for cooperative, goroutine-driven
// refill. A producer goroutine calls Send to hand over byte slabs and Close
// once there is nothing more to send; a consumer goroutine (typically the
// same one driving Parser.NextEvent) calls FillBuf to suspend until the next
// slab arrives.
//
// This is the Go-idiomatic equivalent of a suspending "fill_buf": the
// suspension point is ordinary goroutine blocking on a channel receive, not
// a callback or an async/await state machine. The parser engine itself knows
// nothing about any of this -- FillBuf is only ever called by the caller's
// own refill loop, never by the engine.
type AsyncFeeder struct {
	ch          chan []byte
	buf         []byte
	pos         int
	closed      bool
	bytesFed    int64
	parsedBytes int64
}

// NewAsyncFeeder creates an AsyncFeeder whose internal channel can hold up
// to capacity pending slabs before Send blocks.
func NewAsyncFeeder(capacity int) *AsyncFeeder {
	if capacity <= 0 {
		capacity = 1
	}
	return &AsyncFeeder{ch: make(chan []byte, capacity)}
}

// Send hands a slab of bytes to the feeder, suspending until there is room
// in the channel or ctx is cancelled. It must not be called after Close.
func (f *AsyncFeeder) Send(ctx context.Context, chunk []byte) error {
	if len(chunk) == 0 {
		return nil
	}
	select {
	case f.ch <- chunk:
		f.bytesFed += int64(len(chunk))
		log.WithFields(log.Fields{
			"bytes_fed": f.bytesFed,
		}).Debug("async feeder accepted a chunk")
		return nil
	case <-ctx.Done():
		log.WithError(ctx.Err()).WithFields(log.Fields{
			"bytes_fed": f.bytesFed,
		}).Warn("async feeder send cancelled")
		return ctx.Err()
	}
}

// Close signals that no more slabs will be sent. It must be called exactly
// once, from the producer side, after the final Send.
func (f *AsyncFeeder) Close() {
	close(f.ch)
}

// FillBuf suspends until the next slab is available, the channel is closed,
// or ctx is cancelled. Call it whenever HasInput is false and IsDone is
// false.
func (f *AsyncFeeder) FillBuf(ctx context.Context) error {
	select {
	case chunk, ok := <-f.ch:
		if !ok {
			f.closed = true
			f.buf = nil
			f.pos = 0
			log.WithFields(log.Fields{
				"parsed_bytes": f.parsedBytes,
			}).Debug("async feeder drained: producer closed")
			return nil
		}
		f.buf = chunk
		f.pos = 0
		f.parsedBytes += int64(len(chunk))
		log.WithFields(log.Fields{
			"parsed_bytes": f.parsedBytes,
		}).Debug("async feeder filled buffer")
		return nil
	case <-ctx.Done():
		log.WithError(ctx.Err()).WithFields(log.Fields{
			"parsed_bytes": f.parsedBytes,
		}).Warn("async feeder fill cancelled")
		return ctx.Err()
	}
}

func (f *AsyncFeeder) HasInput() bool {
	return f.pos < len(f.buf)
}

func (f *AsyncFeeder) IsDone() bool {
	return f.closed && !f.HasInput()
}

func (f *AsyncFeeder) NextInput() (byte, bool) {
	if f.pos >= len(f.buf) {
		return 0, false
	}
	b := f.buf[f.pos]
	f.pos++
	return b, true
}
