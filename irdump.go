// irdump captures IR remote-control pulse trains and renders them three
// ways: a decoded protocol summary, a raw timing table, and a compilable
// uint16_t array literal suitable for later replay. Receiving and
// transmitting the actual signals is github.com/sparques/irtrx's job;
// this package only records, formats, and replays captures.
package irdump

import "math"

const (
	// MaxPulse is the longest duration, in microseconds, that a single
	// entry of a rawData literal can encode. Longer durations are split
	// across multiple entries; see SplitMicros.
	MaxPulse = math.MaxUint16

	// DefaultBufSize is the default capture buffer size, in timing
	// entries. Large enough for air conditioner remotes, which send the
	// longest frames in common use.
	DefaultBufSize = 1024
)

// TickUS is the timer tick period in microseconds. Raw capture durations
// are stored in ticks and multiplied by TickUS when rendered. Set it once
// during initialization, before any capture is recorded; it must not
// change afterwards.
var TickUS uint32 = 2

// Micros converts a tick-domain duration to microseconds.
func Micros(ticks uint16) uint32 {
	return uint32(ticks) * TickUS
}
