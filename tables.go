package bitvec

import "math/bits"

// popcount maps a byte value to its number of set bits. Written once during
// package initialization, read-only thereafter.
var popcount [256]uint8

// swapHiLo maps a byte value v to 16*(v%16) + v/16, i.e. swaps its four high
// and four low bits. The mapping is an involution.
var swapHiLo [256]byte

func init() {
	for i := range popcount {
		popcount[i] = uint8(bits.OnesCount8(uint8(i)))
	}
	for i := range swapHiLo {
		swapHiLo[i] = byte(16*(i%16) + i/16)
	}
}

// SwapHiLo returns b with its high and low nibble exchanged.
func SwapHiLo(b byte) byte {
	return swapHiLo[b]
}

// SwapHiLoBytes returns the 256-entry nibble-swap translate table as a fresh
// slice, suitable for byte-translation lookups by collaborators doing
// nibble-order conversion. The returned slice is the caller's to keep; the
// underlying table is never mutated.
func SwapHiLoBytes() []byte {
	table := make([]byte, 256)
	copy(table, swapHiLo[:])
	return table
}
