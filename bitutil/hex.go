package bitutil

import (
	"encoding/hex"
	"fmt"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/buffer"
)

// ToHex returns the hexadecimal representation of v. Each hex digit encodes
// four bits in the vector's own bit order: most-significant-first for
// big-endian vectors, least-significant-first for little-endian ones, where
// the byte stream is routed through the nibble-swap table. The vector's
// length must be a multiple of 4.
func ToHex(v bitvec.Vector) (string, error) {
	nbits := v.Len()
	if nbits%4 != 0 {
		return "", fmt.Errorf("%w: length %d not a multiple of 4", bitvec.ErrRange, nbits)
	}

	// Copy before sanitizing so the caller's padding is left alone.
	tmp, err := buffer.FromBytes(v.Bytes(), nbits, v.Endianness())
	if err != nil {
		return "", err
	}

	buf := tmp.Bytes()
	if tmp.Endianness() == bitvec.LittleEndian {
		table := bitvec.SwapHiLoBytes()
		for i, b := range buf {
			buf[i] = table[b]
		}
	}

	s := hex.EncodeToString(buf)
	if nbits%8 == 4 {
		s = s[:len(s)-1]
	}
	return s, nil
}

// FromHex returns the bit-vector encoded by the hex string s under the given
// endianness. The result holds exactly 4*len(s) bits; s may contain any
// number of upper or lower case hex digits.
func FromHex(s string, endianness bitvec.Endianness) (*buffer.Vector, error) {
	nbits := 4 * len(s)
	if len(s)%2 == 1 {
		s += "0"
	}

	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bitvec.ErrRange, err)
	}
	if endianness == bitvec.LittleEndian {
		table := bitvec.SwapHiLoBytes()
		for i, b := range data {
			data[i] = table[b]
		}
	}

	return buffer.FromBytes(data, nbits, endianness)
}
