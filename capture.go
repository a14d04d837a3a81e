package irdump

// Summary holds the protocol-level interpretation of a capture, produced
// by a decoder such as the nec package. Address and Command are zero when
// the protocol doesn't carry them.
type Summary struct {
	Protocol Protocol
	Repeat   bool
	Value    uint64
	Bits     int
	Address  uint32
	Command  uint32
}

// Capture is one recorded pulse train. Raw holds alternating mark/space
// durations in timer ticks; Raw[0] is the gap preceding the frame and is
// only a timestamp reference, never rendered. Odd indices are marks, even
// indices are spaces.
//
// A Capture is a snapshot: it never aliases the recorder's live buffer,
// so it can be held and rendered at leisure.
type Capture struct {
	Raw []uint16

	// Overflow is set when the frame was longer than the capture
	// buffer. Everything recorded is still rendered, but the results
	// shouldn't be trusted.
	Overflow bool

	// BufSize is the capacity of the buffer the capture was recorded
	// into, named in the overflow warning.
	BufSize int

	// Summary is the decoded interpretation, if any decoder recognized
	// the frame. Nil otherwise.
	Summary *Summary
}

// Len returns the number of timing entries, including the leading gap.
func (c Capture) Len() int {
	return len(c.Raw)
}

// RawData is a sequence of microsecond durations in the shape DumpCode
// emits: alternating mark/space values starting with a mark, with
// over-long durations already split. It exists so a dumped literal can be
// pasted back into a program and replayed; see MarshalFrame.
type RawData []uint16
