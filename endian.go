package bitvec

import "fmt"

// Endianness is the convention mapping a logical bit index to a position
// within its containing byte. It is fixed for a vector's lifetime.
type Endianness uint8

const (
	// LittleEndian stores bit 0 of a byte in its least-significant bit.
	LittleEndian Endianness = iota
	// BigEndian stores bit 0 of a byte in its most-significant bit.
	BigEndian
)

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(e))
	}
}

// BytesFor returns the number of bytes necessary to store nbits bits.
func BytesFor(nbits int) int {
	if nbits == 0 {
		return 0
	}
	return (nbits-1)/8 + 1
}

// mask returns the intra-byte mask selecting logical bit index i.
// Pure function of (endianness, index); never depends on vector content.
func mask(e Endianness, i int) byte {
	if e == LittleEndian {
		return 1 << (i % 8)
	}
	return 0x80 >> (i % 8)
}

// getBit reports logical bit i of v. Callers guarantee 0 <= i < v.Len().
func getBit(v Vector, i int) bool {
	return v.Bytes()[i/8]&mask(v.Endianness(), i) != 0
}

// clearBit clears logical bit i of v in place.
func clearBit(v Vector, i int) {
	v.Bytes()[i/8] &^= mask(v.Endianness(), i)
}

// Bit returns logical bit i of v. It fails with ErrRange when i is outside
// [0, v.Len()).
func Bit(v Vector, i int) (bool, error) {
	if err := validate(v); err != nil {
		return false, err
	}
	if i < 0 || i >= v.Len() {
		return false, fmt.Errorf("%w: index %d outside [0, %d)", ErrRange, i, v.Len())
	}
	return getBit(v, i), nil
}

// SanitizeTail clears every bit in storage positions [v.Len(), 8*cap) of the
// final partial byte, where cap is the number of buffer bytes covering the
// logical length. Stale bits beyond the logical length would otherwise leak
// into whole-byte scans. Idempotent; only the trailing partial byte is
// touched.
func SanitizeTail(v Vector) {
	for i, n := v.Len(), 8*BytesFor(v.Len()); i < n; i++ {
		clearBit(v, i)
	}
}
