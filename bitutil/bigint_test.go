package bitutil_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/bitutil"
	"github.com/hupe1980/bitvec/buffer"
	"github.com/hupe1980/bitvec/testutil"
)

func TestToBigInt(t *testing.T) {
	tests := []struct {
		name       string
		bits       string
		endianness bitvec.Endianness
		expected   int64
	}{
		{"BigMSBFirst", "110", bitvec.BigEndian, 6},
		{"LittleLSBFirst", "110", bitvec.LittleEndian, 3},
		{"BigByteAligned", "00000001", bitvec.BigEndian, 1},
		{"LittleByteAligned", "00000001", bitvec.LittleEndian, 128},
		{"BigMultiByte", "100000000", bitvec.BigEndian, 256},
		{"AllZero", "0000", bitvec.BigEndian, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := bitutil.ToBigInt(fromString(t, tt.bits, tt.endianness))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, x.Int64())
		})
	}
}

func TestToBigIntEmpty(t *testing.T) {
	v, err := buffer.New(0, bitvec.BigEndian)
	require.NoError(t, err)

	_, err = bitutil.ToBigInt(v)
	assert.ErrorIs(t, err, bitvec.ErrRange)
}

func TestFromBigInt(t *testing.T) {
	v, err := bitutil.FromBigInt(big.NewInt(6), 3, bitvec.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, "110", v.String())

	v, err = bitutil.FromBigInt(big.NewInt(6), 4, bitvec.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, "0110", v.String())

	v, err = bitutil.FromBigInt(big.NewInt(0), 5, bitvec.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, "00000", v.String())
}

func TestFromBigIntErrors(t *testing.T) {
	_, err := bitutil.FromBigInt(big.NewInt(-1), 8, bitvec.BigEndian)
	assert.ErrorIs(t, err, bitvec.ErrRange)

	_, err = bitutil.FromBigInt(nil, 8, bitvec.BigEndian)
	assert.ErrorIs(t, err, bitvec.ErrRange)

	_, err = bitutil.FromBigInt(big.NewInt(1), 0, bitvec.BigEndian)
	assert.ErrorIs(t, err, bitvec.ErrRange)

	// 16 needs five bits.
	_, err = bitutil.FromBigInt(big.NewInt(16), 4, bitvec.BigEndian)
	assert.ErrorIs(t, err, bitvec.ErrRange)
}

func TestBigIntRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(5)

	for _, endianness := range []bitvec.Endianness{bitvec.BigEndian, bitvec.LittleEndian} {
		for _, nbits := range []int{1, 3, 8, 9, 65, 200} {
			v := rng.RandomVector(nbits, endianness, 0.5)

			x, err := bitutil.ToBigInt(v)
			require.NoError(t, err)

			back, err := bitutil.FromBigInt(x, nbits, endianness)
			require.NoError(t, err)
			assert.Equal(t, v.String(), back.String(), "endianness=%s nbits=%d", endianness, nbits)
		}
	}
}
