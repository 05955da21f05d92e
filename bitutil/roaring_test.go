package bitutil_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/bitutil"
	"github.com/hupe1980/bitvec/testutil"
)

func TestToBitmap(t *testing.T) {
	v := fromString(t, "0100100001", bitvec.LittleEndian)

	rb, err := bitutil.ToBitmap(v)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), rb.GetCardinality())
	assert.Equal(t, []uint32{1, 4, 9}, rb.ToArray())
}

func TestFromBitmap(t *testing.T) {
	rb := roaring.BitmapOf(1, 4, 9)

	v, err := bitutil.FromBitmap(rb, 10, bitvec.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, "0100100001", v.String())

	// Index at or beyond nbits is rejected.
	_, err = bitutil.FromBitmap(rb, 9, bitvec.BigEndian)
	assert.ErrorIs(t, err, bitvec.ErrRange)
}

func TestFromBitmapNil(t *testing.T) {
	v, err := bitutil.FromBitmap(nil, 5, bitvec.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, "00000", v.String())
}

func TestBitmapRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(77)

	for _, endianness := range []bitvec.Endianness{bitvec.BigEndian, bitvec.LittleEndian} {
		for _, density := range []float64{0, 0.01, 0.5, 1} {
			v := rng.RandomVector(1000, endianness, density)

			rb, err := bitutil.ToBitmap(v)
			require.NoError(t, err)
			assert.Equal(t, uint64(v.Count()), rb.GetCardinality())

			back, err := bitutil.FromBitmap(rb, v.Len(), endianness)
			require.NoError(t, err)
			assert.Equal(t, v.String(), back.String(), "endianness=%s density=%f", endianness, density)
		}
	}
}
