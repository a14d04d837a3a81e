package irdump

import (
	"io"
	"time"
)

// Dumper ties a Recorder and the most recent decoded Summary to an output
// sink. Each completed capture is written as an info block, a timing
// table, and a rawData literal, separated from the next by a blank line.
//
// Dumper implements PairHandler; feed it the same pair stream as the
// protocol decoders, and point the decoders' summary callbacks at
// HandleSummary, e.g.:
//
//	d, _ := irdump.NewDumper(machine.Serial, irdump.DefaultBufSize)
//	sm := nec.NewStateMachine(d.HandleSummary)
//	rx := irtrx.NewRxDevice(pin, irdump.Adapt(d, sm))
//	rx.StartInverted()
type Dumper struct {
	out     io.Writer
	rec     *Recorder
	summary *Summary
}

// NewDumper returns a Dumper writing to out, recording into a
// bufSize-entry capture buffer.
func NewDumper(out io.Writer, bufSize int) (*Dumper, error) {
	d := &Dumper{out: out}
	rec, err := NewRecorder(d.dump, bufSize)
	if err != nil {
		return nil, err
	}
	d.rec = rec
	return d, nil
}

// HandlePair feeds one mark/space pair to the underlying Recorder.
func (d *Dumper) HandlePair(mark, space time.Duration) {
	d.rec.HandlePair(mark, space)
}

// HandleSummary records a decoded summary to attach to the capture
// currently being recorded. Decoders finish a frame before the recorder
// sees the frame gap, so the summary is simply the latest one seen.
func (d *Dumper) HandleSummary(s Summary) {
	d.summary = &s
}

// Recorder exposes the underlying recorder, e.g. to adjust FrameGap or
// to Flush a truncated pair stream.
func (d *Dumper) Recorder() *Recorder {
	return d.rec
}

func (d *Dumper) dump(c Capture) {
	c.Summary = d.summary
	d.summary = nil
	DumpInfo(d.out, c)
	DumpTiming(d.out, c)
	DumpCode(d.out, c)
	io.WriteString(d.out, "\n")
}
