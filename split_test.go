package irdump

import (
	"bytes"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func setTick(c *qt.C, us uint32) {
	old := TickUS
	TickUS = us
	c.Cleanup(func() { TickUS = old })
}

func TestSplitMicros(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		us   uint32
		want []uint16
	}{
		{0, []uint16{0}},
		{1, []uint16{1}},
		{618, []uint16{618}},
		{65535, []uint16{65535}},
		{65536, []uint16{65535, 0, 1}},
		{70000, []uint16{65535, 0, 4465}},
		{131070, []uint16{65535, 0, 65535}},
		{131071, []uint16{65535, 0, 65535, 0, 1}},
		{200000, []uint16{65535, 0, 65535, 0, 65535, 0, 3395}},
	}
	for _, test := range tests {
		c.Assert(SplitMicros(test.us), qt.DeepEquals, test.want,
			qt.Commentf("us=%d", test.us))
	}
}

// Every entry fits a uint16 and the entries sum back to the original
// duration with no rounding loss.
func TestSplitMicrosSumAndBound(t *testing.T) {
	c := qt.New(t)

	for _, us := range []uint32{0, 1, 442, 65534, 65535, 65536, 65537,
		70000, 100000, 131069, 131070, 131071, 1 << 20, 1<<24 + 12345} {
		var sum uint32
		for _, e := range SplitMicros(us) {
			c.Assert(e <= MaxPulse, qt.IsTrue)
			sum += uint32(e)
		}
		c.Assert(sum, qt.Equals, us, qt.Commentf("us=%d", us))
	}
}

func TestCookedLength(t *testing.T) {
	c := qt.New(t)
	setTick(c, 1)

	tests := []struct {
		name string
		raw  []uint16
		want int
	}{
		{"no splits", []uint16{3846, 1392, 618, 1138}, 3},
		{"gap entry not counted", []uint16{65535, 618}, 1},
		{"single entry at bound", []uint16{0, 65535}, 1},
		{"two entries", []uint16{0, 1392, 618}, 2},
	}
	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			got := CookedLength(Capture{Raw: test.raw})
			c.Assert(got, qt.Equals, test.want)
		})
	}

	// with 2us ticks a full-scale tick count needs one extra chunk:
	// 65535 ticks = 131070us = 65535 + 0 + 65535
	setTick(c, 2)
	c.Assert(CookedLength(Capture{Raw: []uint16{0, 65535, 221}}), qt.Equals, 4)
}

// The predicted entry count must equal the number of entries DumpCode
// actually emits, split placeholders included.
func TestCookedLengthMatchesDumpCode(t *testing.T) {
	c := qt.New(t)
	setTick(c, 2)

	captures := [][]uint16{
		{3846, 1392, 618, 1138},
		{65535, 65535, 618, 40000, 221},
		{0, 65535},
		{12, 35000, 35000, 35000, 9},
	}
	for _, raw := range captures {
		cpt := Capture{Raw: raw}
		var buf bytes.Buffer
		DumpCode(&buf, cpt)

		body := buf.String()
		body = body[strings.Index(body, "{")+1 : strings.Index(body, "}")]
		c.Assert(strings.Count(body, ",")+1, qt.Equals, CookedLength(cpt),
			qt.Commentf("raw=%v", raw))
	}
}
