//go:build tinygo || baremetal

package irdump

import (
	"time"

	"github.com/sparques/irtrx"
)

// Adapt bridges PairHandlers to the irtrx receive side. The returned
// state machine fans each TimePair out to every handler, so a Dumper and
// any number of protocol decoders can share one receiver:
//
//	rx := irtrx.NewRxDevice(pin, irdump.Adapt(d, sm))
func Adapt(handlers ...PairHandler) irtrx.RxStateMachine {
	sms := make([]irtrx.RxStateMachine, len(handlers))
	for i, h := range handlers {
		sms[i] = pairAdapter{h}
	}
	return irtrx.MultiRxStateMachine(sms...)
}

type pairAdapter struct {
	h PairHandler
}

func (a pairAdapter) HandleTimePair(pair irtrx.TimePair) {
	a.h.HandlePair(pair[0], pair[1])
}

// MarshalFrame implements irtrx.FrameMarshaller so a capture can be
// replayed through an irtrx.TxDevice. The leading gap entry is skipped;
// the final mark is paired with a zero space.
func (c Capture) MarshalFrame() []irtrx.TimePair {
	out := make([]irtrx.TimePair, 0, c.Len()/2)
	for i := 1; i < c.Len(); i += 2 {
		pair := irtrx.TimePair{micros(c.Raw[i]), 0}
		if i+1 < c.Len() {
			pair[1] = micros(c.Raw[i+1])
		}
		out = append(out, pair)
	}
	return out
}

// MarshalFrame implements irtrx.FrameMarshaller for a dumped rawData
// literal. Placeholder zero entries from overflow splitting come through
// as zero-length spaces, which transmit as nothing, so a split duration
// replays as one contiguous mark.
func (rd RawData) MarshalFrame() []irtrx.TimePair {
	out := make([]irtrx.TimePair, 0, (len(rd)+1)/2)
	for i := 0; i < len(rd); i += 2 {
		pair := irtrx.TimePair{time.Duration(rd[i]) * time.Microsecond, 0}
		if i+1 < len(rd) {
			pair[1] = time.Duration(rd[i+1]) * time.Microsecond
		}
		out = append(out, pair)
	}
	return out
}

func micros(ticks uint16) time.Duration {
	return time.Duration(Micros(ticks)) * time.Microsecond
}
