package irdump

import (
	"bytes"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestDumper(t *testing.T) {
	c := qt.New(t)
	setTick(c, 1)

	var buf bytes.Buffer
	d, err := NewDumper(&buf, 64)
	c.Assert(err, qt.IsNil)

	// a decoder reports its summary before the recorder sees the gap
	d.HandlePair(us(9000), us(4500))
	d.HandleSummary(Summary{Protocol: NEC, Value: 0x10ef, Bits: 32,
		Address: 4, Command: 8})
	d.HandlePair(us(560), 20*time.Millisecond)

	out := buf.String()
	c.Assert(strings.Contains(out, "Encoding  : NEC\n"), qt.IsTrue)
	c.Assert(strings.Contains(out, "Timing[3]: \n"), qt.IsTrue)
	c.Assert(strings.Contains(out, "uint16_t rawData[3] = "), qt.IsTrue)
	c.Assert(strings.Contains(out, "uint32_t address = 0x4;\n"), qt.IsTrue)
	c.Assert(strings.HasSuffix(out, "uint64_t data = 0x10ef;\n\n"), qt.IsTrue)

	// the summary was consumed; the next capture dumps as UNKNOWN
	buf.Reset()
	d.HandlePair(us(9000), 20*time.Millisecond)
	c.Assert(strings.Contains(buf.String(), "Encoding  : UNKNOWN\n"), qt.IsTrue)

	_, err = NewDumper(&buf, 0)
	c.Assert(err, qt.Equals, ErrBufSize)
}
