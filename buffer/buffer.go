package buffer

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/hupe1980/bitvec"
)

func init() {
	bitvec.Register(&Vector{})
}

// Vector is a packed bit-vector over a fixed-size byte buffer.
type Vector struct {
	buf        []byte
	nbits      int
	endianness bitvec.Endianness
}

// New creates a vector of nbits bits, all clear.
func New(nbits int, endianness bitvec.Endianness) (*Vector, error) {
	if nbits < 0 {
		return nil, fmt.Errorf("%w: non-negative length expected, got %d", bitvec.ErrRange, nbits)
	}
	return &Vector{
		buf:        make([]byte, bitvec.BytesFor(nbits)),
		nbits:      nbits,
		endianness: endianness,
	}, nil
}

// FromBytes creates a vector of nbits bits over a copy of data. data must
// hold at least BytesFor(nbits) bytes; excess bytes are ignored.
func FromBytes(data []byte, nbits int, endianness bitvec.Endianness) (*Vector, error) {
	if nbits < 0 {
		return nil, fmt.Errorf("%w: non-negative length expected, got %d", bitvec.ErrRange, nbits)
	}
	if len(data) < bitvec.BytesFor(nbits) {
		return nil, fmt.Errorf("%w: %d bytes cannot hold %d bits", bitvec.ErrRange, len(data), nbits)
	}

	v := &Vector{
		buf:        make([]byte, bitvec.BytesFor(nbits)),
		nbits:      nbits,
		endianness: endianness,
	}
	copy(v.buf, data)
	bitvec.SanitizeTail(v)

	return v, nil
}

// FromBits creates a vector holding the given bits in order.
func FromBits(values []bool, endianness bitvec.Endianness) *Vector {
	v, _ := New(len(values), endianness)
	for i, b := range values {
		if b {
			_ = v.Set(i, true)
		}
	}
	return v
}

// Bytes returns the backing buffer. Mutations write through to the vector.
func (v *Vector) Bytes() []byte { return v.buf }

// Len returns the number of logical bits.
func (v *Vector) Len() int { return v.nbits }

// Endianness returns the vector's bit endianness.
func (v *Vector) Endianness() bitvec.Endianness { return v.endianness }

// Get returns bit i.
func (v *Vector) Get(i int) (bool, error) {
	if i < 0 || i >= v.nbits {
		return false, fmt.Errorf("%w: index %d outside [0, %d)", bitvec.ErrRange, i, v.nbits)
	}
	return v.buf[i/8]&v.mask(i) != 0, nil
}

// Set assigns bit i.
func (v *Vector) Set(i int, value bool) error {
	if i < 0 || i >= v.nbits {
		return fmt.Errorf("%w: index %d outside [0, %d)", bitvec.ErrRange, i, v.nbits)
	}
	if value {
		v.buf[i/8] |= v.mask(i)
	} else {
		v.buf[i/8] &^= v.mask(i)
	}
	return nil
}

// Count returns the vector's total population count.
func (v *Vector) Count() int {
	bitvec.SanitizeTail(v)
	total := 0
	for _, b := range v.buf {
		total += bits.OnesCount8(b)
	}
	return total
}

// Clone returns a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	c := &Vector{
		buf:        make([]byte, len(v.buf)),
		nbits:      v.nbits,
		endianness: v.endianness,
	}
	copy(c.buf, v.buf)
	return c
}

// String renders the bits in logical order, e.g. "010011".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.nbits)
	for i := 0; i < v.nbits; i++ {
		if v.buf[i/8]&v.mask(i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (v *Vector) mask(i int) byte {
	if v.endianness == bitvec.LittleEndian {
		return 1 << (i % 8)
	}
	return 0x80 >> (i % 8)
}
