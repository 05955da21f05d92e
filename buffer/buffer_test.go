package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/buffer"
)

func TestNew(t *testing.T) {
	v, err := buffer.New(12, bitvec.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, 12, v.Len())
	assert.Equal(t, bitvec.BigEndian, v.Endianness())
	assert.Len(t, v.Bytes(), 2)
	assert.Equal(t, 0, v.Count())

	_, err = buffer.New(-1, bitvec.BigEndian)
	assert.ErrorIs(t, err, bitvec.ErrRange)
}

func TestFromBytes(t *testing.T) {
	v, err := buffer.FromBytes([]byte{0b10100000}, 3, bitvec.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, "101", v.String())

	// Tail padding is cleared on construction.
	assert.Equal(t, byte(0b10100000), v.Bytes()[0])

	// The input slice is copied.
	data := []byte{0xff}
	v, err = buffer.FromBytes(data, 8, bitvec.LittleEndian)
	require.NoError(t, err)
	data[0] = 0x00
	assert.Equal(t, 8, v.Count())

	_, err = buffer.FromBytes([]byte{0xff}, 9, bitvec.BigEndian)
	assert.ErrorIs(t, err, bitvec.ErrRange)
}

func TestFromBytesSanitizes(t *testing.T) {
	v, err := buffer.FromBytes([]byte{0xff}, 3, bitvec.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, byte(0b00000111), v.Bytes()[0])
	assert.Equal(t, 3, v.Count())
}

func TestSetGet(t *testing.T) {
	for _, endianness := range []bitvec.Endianness{bitvec.BigEndian, bitvec.LittleEndian} {
		v, err := buffer.New(10, endianness)
		require.NoError(t, err)

		require.NoError(t, v.Set(0, true))
		require.NoError(t, v.Set(9, true))
		require.NoError(t, v.Set(9, false))

		b, err := v.Get(0)
		require.NoError(t, err)
		assert.True(t, b)
		b, err = v.Get(9)
		require.NoError(t, err)
		assert.False(t, b)

		assert.ErrorIs(t, v.Set(10, true), bitvec.ErrRange)
		assert.ErrorIs(t, v.Set(-1, true), bitvec.ErrRange)
		_, err = v.Get(10)
		assert.ErrorIs(t, err, bitvec.ErrRange)
	}
}

func TestEndiannessLayout(t *testing.T) {
	big := buffer.FromBits([]bool{true, false, false, false, false, false, false, false}, bitvec.BigEndian)
	assert.Equal(t, byte(0x80), big.Bytes()[0])

	little := buffer.FromBits([]bool{true, false, false, false, false, false, false, false}, bitvec.LittleEndian)
	assert.Equal(t, byte(0x01), little.Bytes()[0])
}

func TestCountIgnoresPoisonedPadding(t *testing.T) {
	v, err := buffer.New(9, bitvec.BigEndian)
	require.NoError(t, err)
	require.NoError(t, v.Set(2, true))

	v.Bytes()[1] |= 0x7f
	assert.Equal(t, 1, v.Count())
}

func TestClone(t *testing.T) {
	v := buffer.FromBits([]bool{true, false, true}, bitvec.BigEndian)
	c := v.Clone()

	require.NoError(t, c.Set(1, true))
	assert.Equal(t, "101", v.String())
	assert.Equal(t, "111", c.String())
}

func TestString(t *testing.T) {
	v := buffer.FromBits([]bool{false, true, true, false, true}, bitvec.LittleEndian)
	assert.Equal(t, "01101", v.String())

	empty, err := buffer.New(0, bitvec.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, "", empty.String())
}
