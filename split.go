package irdump

// SplitMicros breaks a microsecond duration into entries that each fit in
// a uint16. While the value exceeds MaxPulse it emits the pair
// (MaxPulse, 0) and subtracts MaxPulse; the remainder is the final entry.
//
// The zero in each pair is a deliberate placeholder: consumers of rawData
// literals track mark/space polarity by array index, so every split must
// add an even number of entries to keep subsequent indices aligned. The
// zero-duration pulse it implies is meaningless but must be preserved for
// output compatibility.
//
// The sum of the returned entries always equals us exactly.
func SplitMicros(us uint32) []uint16 {
	out := make([]uint16, 0, 1+2*(us>>16))
	for ; us > MaxPulse; us -= MaxPulse {
		out = append(out, MaxPulse, 0)
	}
	return append(out, uint16(us))
}

// CookedLength returns the number of entries the rawData literal for c
// will contain: one per rendered duration, plus two (placeholder and
// chunk) for every extra MaxPulse-sized chunk an over-long duration
// needs. DumpCode sizes its array declaration with this; the count is
// exactly the number of entries it emits.
func CookedLength(c Capture) int {
	n := c.Len() - 1
	for _, t := range c.Raw[1:] {
		if us := Micros(t); us > MaxPulse {
			n += 2 * int((us-1)/MaxPulse)
		}
	}
	return n
}
