package art

import "testing"

func TestExtractBits(t *testing.T) {
	addr := []byte{0b10110100, 0b01010101, 0b11110000}
	cases := []struct {
		startBit, nBits int
		want            uint32
	}{
		{0, 8, 0b10110100},
		{0, 4, 0b1011},
		{4, 4, 0b0100},
		{0, 16, 0b1011010001010101},
		{4, 8, 0b01000101},
		{4, 16, 0b010001010101_1111},
		{20, 4, 0b0000},
	}
	for _, c := range cases {
		got := extractBits(addr, c.startBit, c.nBits)
		if got != c.want {
			t.Errorf("extractBits(%08b, start=%d, n=%d) = %b, want %b", addr, c.startBit, c.nBits, got, c.want)
		}
	}
}

func TestBaseIndexAndFringeIndex(t *testing.T) {
	// An 8-bit stride starting at bit 0: classic 4-bit trie example from
	// the ART paper, scaled to a full byte.
	addr := []byte{0b10100000}
	// plen 0 within this stride (withinBits=0) -> index 1 (the default).
	if got := baseIndexAt(addr, 0, 0, 8); got != 1 {
		t.Errorf("baseIndexAt withinBits=0 = %d, want 1", got)
	}
	// plen exactly 8 (withinBits=8) -> a fringe index.
	k := baseIndexAt(addr, 0, 8, 8)
	if k < 256 || k >= 512 {
		t.Errorf("baseIndexAt withinBits=8 = %d, want a fringe index in [256,512)", k)
	}
	if got := fringeIndexAt(addr, 0, 8); got != k {
		t.Errorf("fringeIndexAt = %d, want %d (same as full-length baseIndex)", got, k)
	}
	// A 3-bit prefix (withinBits=3) over 10100000 is 101 -> index 0b101 + 2^3 = 13.
	if got := baseIndexAt(addr, 0, 3, 8); got != 13 {
		t.Errorf("baseIndexAt withinBits=3 = %d, want 13", got)
	}
}

func TestCmpAddrAndFirstDiffBit(t *testing.T) {
	a := []byte{0b11110000, 0b00001111}
	b := []byte{0b11110000, 0b00000000}
	if !cmpAddr(a, b, 8) {
		t.Error("expected agreement over first byte")
	}
	if cmpAddr(a, b, 16) {
		t.Error("expected disagreement once the second byte is included")
	}
	if got := firstDiffBit(a, b, 16); got != 12 {
		t.Errorf("firstDiffBit = %d, want 12", got)
	}
	if got := firstDiffBit(a, b, 8); got != 8 {
		t.Errorf("firstDiffBit with limit 8 = %d, want 8 (no difference within limit)", got)
	}
}

func TestPlen2Level(t *testing.T) {
	schedule := buildStrideSchedule([]int{8, 8, 8, 8})
	cases := []struct {
		plen int
		want int
	}{
		{1, 0}, {8, 0}, {9, 1}, {16, 1}, {17, 2}, {32, 3},
	}
	for _, c := range cases {
		if got := plen2level(schedule, c.plen); got != c.want {
			t.Errorf("plen2level(%d) = %d, want %d", c.plen, got, c.want)
		}
	}
}
