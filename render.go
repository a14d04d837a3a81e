package irdump

import (
	"fmt"
	"io"
	"runtime"
)

// Yield is called every 100th entry while rendering a timing table so a
// long capture doesn't starve the rest of the program on a cooperative
// scheduler. Replace it if the deployment environment needs something
// other than runtime.Gosched; it has no correctness role.
var Yield = runtime.Gosched

// entries per printed table row
const tableRow = 8

// yield interval, in entries, while walking a capture
const yieldEvery = 100

// DumpInfo writes the encoding name and decoded code of c to w. Captures
// no decoder recognized dump as UNKNOWN with a zero code.
func DumpInfo(w io.Writer, c Capture) {
	var value uint64
	var bits int
	if c.Summary != nil {
		value = c.Summary.Value
		bits = c.Summary.Bits
	}
	fmt.Fprintf(w, "Encoding  : %s\n", encodingName(c.Summary))
	fmt.Fprintf(w, "Code      : %X (%d bits)\n", value, bits)
}

// DumpTiming writes c as a human-readable timing table: microsecond
// durations prefixed + for marks and - for spaces, eight to a row. The
// leading gap entry is skipped. An overflowed capture gets a warning
// line first.
func DumpTiming(w io.Writer, c Capture) {
	if c.Overflow {
		fmt.Fprintf(w, "WARNING: IR code too big for buffer (>= %d). "+
			"These results shouldn't be trusted until this is resolved. "+
			"Increase the capture buffer size.\n", c.BufSize)
	}
	fmt.Fprintf(w, "Timing[%d]: \n", c.Len()-1)
	for i := 1; i < c.Len(); i++ {
		if i%yieldEvery == 0 {
			Yield()
		}
		if i%2 == 0 {
			fmt.Fprint(w, "-")
		} else {
			fmt.Fprint(w, "   +")
		}
		fmt.Fprintf(w, "%6d", Micros(c.Raw[i]))
		if i < c.Len()-1 {
			fmt.Fprint(w, ", ")
		}
		if i%tableRow == 0 {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w)
}

// DumpCode writes c as a compilable uint16_t array literal in the
// microsecond domain, sized by CookedLength and annotated with the
// decoded protocol and value. Durations beyond MaxPulse are expanded
// through SplitMicros. When a known protocol was decoded, address and
// command declarations follow — unless both are zero, which is
// indistinguishable from absent and never emitted — and then the full
// decoded value as a data declaration.
func DumpCode(w io.Writer, c Capture) {
	fmt.Fprintf(w, "uint16_t rawData[%d] = {", CookedLength(c))
	for i := 1; i < c.Len(); i++ {
		for j, us := range SplitMicros(Micros(c.Raw[i])) {
			if j > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%d", us)
		}
		if i < c.Len()-1 {
			fmt.Fprint(w, ", ")
		}
		if i%2 == 0 {
			// extra space after even entries, a cosmetic quirk of the
			// format that downstream tooling expects
			fmt.Fprint(w, " ")
		}
	}
	fmt.Fprint(w, "};")

	var value uint64
	if c.Summary != nil {
		value = c.Summary.Value
	}
	fmt.Fprintf(w, "  // %s %#x\n", encodingName(c.Summary), value)

	s := c.Summary
	if s == nil || s.Protocol == Unknown {
		return
	}
	if s.Address > 0 || s.Command > 0 {
		fmt.Fprintf(w, "uint32_t address = %#x;\n", s.Address)
		fmt.Fprintf(w, "uint32_t command = %#x;\n", s.Command)
	}
	fmt.Fprintf(w, "uint64_t data = %#x;\n", s.Value)
}

// encodingName resolves the display name for a capture's summary,
// appending the repeat qualifier when set.
func encodingName(s *Summary) string {
	if s == nil {
		return Unknown.String()
	}
	name := s.Protocol.String()
	if s.Repeat {
		name += " (Repeat)"
	}
	return name
}
