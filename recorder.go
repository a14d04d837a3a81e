package irdump

import (
	"errors"
	"time"
)

// ErrBufSize is returned when a Recorder is asked for a zero or negative
// capture buffer.
var ErrBufSize = errors.New("capture buffer size must be at least 1")

// PairHandler consumes mark/space duration pairs from an IR receiver.
// Recorder, Dumper and the protocol decoder state machines all implement
// it; Adapt bridges it to irtrx.RxStateMachine.
type PairHandler interface {
	HandlePair(mark, space time.Duration)
}

// Recorder accumulates mark/space pairs into a bounded tick-domain buffer
// and emits a Capture snapshot whenever a long space marks the end of a
// frame. Calls into Handler never alias the live buffer, so a capture can
// be rendered while the next frame is already being recorded.
type Recorder struct {
	// Handler is called with a completed Capture once per frame.
	Handler func(Capture)

	// FrameGap is the space duration that terminates a frame.
	FrameGap time.Duration

	buf      []uint16
	n        int
	overflow bool
	gap      uint16
}

// DefaultFrameGap is the longest space found inside a frame by any
// protocol in common use, with margin.
const DefaultFrameGap = 15 * time.Millisecond

// NewRecorder returns a Recorder with a bufSize-entry capture buffer.
// The buffer is allocated once, here; running out of memory at this point
// should halt the program rather than limp along with a nil buffer.
func NewRecorder(handler func(Capture), bufSize int) (*Recorder, error) {
	if bufSize < 1 {
		return nil, ErrBufSize
	}
	return &Recorder{
		Handler:  handler,
		FrameGap: DefaultFrameGap,
		buf:      make([]uint16, bufSize),
	}, nil
}

// HandlePair records one mark/space pair. A space of at least FrameGap
// ends the frame: the mark is recorded, the capture is handed off, and
// the space becomes the leading-gap entry of the next frame.
func (r *Recorder) HandlePair(mark, space time.Duration) {
	if r.n == 0 {
		r.push(r.gap)
	}
	r.push(r.ticks(mark))
	if space >= r.FrameGap {
		r.gap = r.ticks(space)
		r.Flush()
		return
	}
	r.push(r.ticks(space))
}

// Flush force-finalizes the frame being recorded, if any, handing it to
// Handler. HandlePair calls it on every frame gap; calling it directly is
// only needed when the pair stream ends without one.
func (r *Recorder) Flush() {
	if r.n == 0 {
		return
	}
	c := Capture{
		Raw:      make([]uint16, r.n),
		Overflow: r.overflow,
		BufSize:  len(r.buf),
	}
	copy(c.Raw, r.buf[:r.n])
	r.n = 0
	r.overflow = false
	if r.Handler != nil {
		r.Handler(c)
	}
}

// push appends one tick count, flagging overflow instead of writing past
// the buffer. An overflowed capture is still delivered, flagged, rather
// than silently truncated and trusted.
func (r *Recorder) push(t uint16) {
	if r.n == len(r.buf) {
		r.overflow = true
		return
	}
	r.buf[r.n] = t
	r.n++
}

// ticks converts a duration to timer ticks, saturating at the largest
// storable count.
func (r *Recorder) ticks(d time.Duration) uint16 {
	t := uint64(d/time.Microsecond) / uint64(TickUS)
	if t > MaxPulse {
		return MaxPulse
	}
	return uint16(t)
}
