// nec implements an irdump.PairHandler that decodes NEC IR frames into
// capture summaries. Frames are a 9ms leader mark, a 4.5ms space, 32
// LSB-first bits (address low, address high, command, inverted command),
// and a trailing mark. A repeat code replaces the bits with a 2.25ms
// space and resends the previous frame's summary with the Repeat flag.
package nec

import (
	"time"

	"github.com/sparques/irdump"
	irp "tinygo.org/x/drivers/irprotocol"
)

type StateMachine struct {
	// SummaryHandler is called once per decoded frame. Calls come from
	// whatever context feeds HandlePair — usually an interrupt handler —
	// so keep it quick and non-blocking.
	SummaryHandler func(irdump.Summary)

	collecting bool
	buf        uint32
	bitcount   int
	last       irdump.Summary
	haveLast   bool
}

func NewStateMachine(summaryHandler func(irdump.Summary)) *StateMachine {
	return &StateMachine{SummaryHandler: summaryHandler}
}

// HandlePair implements the irdump.PairHandler interface.
func (sm *StateMachine) HandlePair(mark, space time.Duration) {
	if near(mark, irp.NEC_lead_mark) {
		switch {
		case near(space, irp.NEC_lead_space):
			// start of frame
			sm.collecting = true
			sm.buf = 0
			sm.bitcount = 0
		case near(space, irp.NEC_repeat_space):
			sm.repeat()
		}
		return
	}

	if !sm.collecting {
		return
	}
	if !near(mark, irp.NEC_bit_mark) {
		sm.collecting = false
		return
	}

	switch {
	case near(space, irp.NEC_bit_1_space):
		sm.buf |= 1 << sm.bitcount
	case near(space, irp.NEC_bit_0_space):
		// zero bit
	default:
		sm.collecting = false
		return
	}
	sm.bitcount++

	if sm.bitcount != 32 {
		return
	}
	sm.collecting = false
	sm.emit()
}

func (sm *StateMachine) emit() {
	s := irdump.Summary{
		Protocol: irdump.NEC,
		Value:    uint64(sm.buf),
		Bits:     32,
	}
	strict, addr, cmd := irp.SplitRawNECData(sm.buf)
	if strict {
		s.Address = uint32(addr)
		s.Command = uint32(cmd)
	} else {
		// command failed inverse validation; the bits are still worth
		// reporting but address/command can't be trusted
		s.Protocol = irdump.NECLike
	}
	sm.last = s
	sm.haveLast = true
	sm.SummaryHandler(s)
}

func (sm *StateMachine) repeat() {
	if !sm.haveLast {
		return
	}
	s := sm.last
	s.Repeat = true
	sm.SummaryHandler(s)
}

// near reports whether d is within 25% of ref, loose enough for the
// variance cheap demodulating receivers show.
func near(d, ref time.Duration) bool {
	return d > ref-ref/4 && d < ref+ref/4
}
