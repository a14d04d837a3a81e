// samsung implements an irdump.PairHandler that decodes Samsung TV
// remote frames into capture summaries. Frames lead with a long
// mark/space pair and carry 32 LSB-first bits: a 16-bit address, then a
// 16-bit command. Bit value is in the space length; marks are fixed.
package samsung

import (
	"time"

	"github.com/sparques/irdump"
)

type StateMachine struct {
	// SummaryHandler is called once per decoded frame, usually from an
	// interrupt handler; keep it quick and non-blocking.
	SummaryHandler func(irdump.Summary)

	collecting bool
	buf        uint32
	bitcount   int
}

func NewStateMachine(summaryHandler func(irdump.Summary)) *StateMachine {
	return &StateMachine{SummaryHandler: summaryHandler}
}

// HandlePair implements the irdump.PairHandler interface.
func (sm *StateMachine) HandlePair(mark, space time.Duration) {
	if mark > 200*time.Millisecond {
		return
	}
	if mark > 3*time.Millisecond {
		// start of frame
		if space > 2*time.Millisecond {
			sm.collecting = true
			sm.buf = 0
			sm.bitcount = 0
		}
		return
	}
	if !sm.collecting {
		return
	}

	// a short space is a one, a long space is a zero
	if space < 1100*time.Microsecond {
		sm.buf |= 1 << sm.bitcount
	}
	sm.bitcount++

	if sm.bitcount != 32 {
		return
	}
	sm.collecting = false
	sm.SummaryHandler(irdump.Summary{
		Protocol: irdump.Samsung,
		Value:    uint64(sm.buf),
		Bits:     32,
		Address:  sm.buf & 0xFFFF,
		Command:  sm.buf >> 16,
	})
}
