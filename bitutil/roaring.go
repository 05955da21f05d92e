package bitutil

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/buffer"
)

// ToBitmap returns a compressed roaring bitmap holding the indices of v's
// set bits.
func ToBitmap(v bitvec.Vector) (*roaring.Bitmap, error) {
	if v.Len() > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bits exceed the 32-bit index space", bitvec.ErrRange, v.Len())
	}

	// Copy before sanitizing so the caller's padding is left alone.
	tmp, err := buffer.FromBytes(v.Bytes(), v.Len(), v.Endianness())
	if err != nil {
		return nil, err
	}

	rb := roaring.New()
	for i := 0; i < tmp.Len(); i++ {
		set, err := tmp.Get(i)
		if err != nil {
			return nil, err
		}
		if set {
			rb.Add(uint32(i))
		}
	}

	return rb, nil
}

// FromBitmap builds a packed vector of nbits bits whose set positions are
// the members of rb. A nil bitmap yields an all-zero vector. It fails with
// ErrRange when rb holds an index at or beyond nbits.
func FromBitmap(rb *roaring.Bitmap, nbits int, endianness bitvec.Endianness) (*buffer.Vector, error) {
	v, err := buffer.New(nbits, endianness)
	if err != nil {
		return nil, err
	}
	if rb == nil || rb.IsEmpty() {
		return v, nil
	}
	if uint64(rb.Maximum()) >= uint64(nbits) {
		return nil, fmt.Errorf("%w: bitmap index %d outside [0, %d)", bitvec.ErrRange, rb.Maximum(), nbits)
	}

	it := rb.Iterator()
	for it.HasNext() {
		if err := v.Set(int(it.Next()), true); err != nil {
			return nil, err
		}
	}

	return v, nil
}
