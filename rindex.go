package bitvec

import "fmt"

// FindLast returns the highest index holding the given bit value. It fails
// with ErrRange when the vector is empty or the value is not present.
func FindLast(v Vector, value bool) (int, error) {
	if err := validate(v); err != nil {
		return 0, err
	}

	i, ok := findLast(v, value)
	if !ok {
		return 0, fmt.Errorf("%w: %t not in bit-vector", ErrRange, value)
	}
	return i, nil
}

// findLast scans the possibly-partial top byte bit by bit, then skips whole
// bytes that cannot contain the value (0x00 when searching for true, 0xff
// when searching for false), then scans the first differing byte bit by bit.
// The byte skip is what keeps reverse search cheap on sparse vectors.
func findLast(v Vector, value bool) (int, bool) {
	nbits := v.Len()
	if nbits == 0 {
		return 0, false
	}

	// top is the first bit of the trailing partial byte, or nbits when the
	// vector is byte-aligned.
	top := 8 * (nbits / 8)
	for i := nbits - 1; i >= top; i-- {
		if getBit(v, i) == value {
			return i, true
		}
	}
	if top == 0 {
		return 0, false
	}

	var skip byte = 0xff
	if value {
		skip = 0x00
	}

	buf := v.Bytes()
	j := top/8 - 1
	for ; j >= 0; j-- {
		if buf[j] != skip {
			break
		}
	}
	if j < 0 {
		return 0, false
	}

	// The byte differs from the skip constant, so a match exists in it.
	for i := 8*j + 7; i >= 8*j; i-- {
		if getBit(v, i) == value {
			return i, true
		}
	}
	return 0, false
}
