package bitutil

import (
	"fmt"
	"math/big"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/buffer"
)

// ToBigInt converts v to a non-negative integer. The bit endianness is
// respected: a big-endian vector puts bit 0 at the most significant
// position, a little-endian vector weights bit i with 2^i.
func ToBigInt(v bitvec.Vector) (*big.Int, error) {
	nbits := v.Len()
	if nbits == 0 {
		return nil, fmt.Errorf("%w: non-empty bit-vector expected", bitvec.ErrRange)
	}

	tmp, err := buffer.FromBytes(v.Bytes(), nbits, v.Endianness())
	if err != nil {
		return nil, err
	}
	buf := tmp.Bytes()

	x := new(big.Int)
	if tmp.Endianness() == bitvec.BigEndian {
		// Logical bits occupy the high end of the byte stream; shift the
		// padding back out.
		x.SetBytes(buf)
		x.Rsh(x, uint(8*len(buf)-nbits))
	} else {
		rev := make([]byte, len(buf))
		for i, b := range buf {
			rev[len(buf)-1-i] = b
		}
		x.SetBytes(rev)
	}

	return x, nil
}

// FromBigInt converts the non-negative integer x into a bit-vector of
// exactly nbits bits under the given endianness. It fails with ErrRange
// when x is negative or cannot be represented within nbits bits.
func FromBigInt(x *big.Int, nbits int, endianness bitvec.Endianness) (*buffer.Vector, error) {
	if x == nil || x.Sign() < 0 {
		return nil, fmt.Errorf("%w: non-negative integer expected", bitvec.ErrRange)
	}
	if nbits <= 0 {
		return nil, fmt.Errorf("%w: positive length expected, got %d", bitvec.ErrRange, nbits)
	}
	if x.BitLen() > nbits {
		return nil, fmt.Errorf("%w: cannot represent %d-bit integer in %d bits", bitvec.ErrRange, x.BitLen(), nbits)
	}

	v, err := buffer.New(nbits, endianness)
	if err != nil {
		return nil, err
	}
	for i := 0; i < x.BitLen(); i++ {
		if x.Bit(i) == 1 {
			pos := i
			if endianness == bitvec.BigEndian {
				pos = nbits - 1 - i
			}
			if err := v.Set(pos, true); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}
