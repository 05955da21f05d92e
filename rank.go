package bitvec

import "fmt"

// blockBits is the span of the coarse tier of the rank locator. Counting
// whole blocks through the popcount table saves per-byte comparisons on
// large vectors.
const blockBits = 8192

// LocateRank returns the smallest index i for which the population count of
// bits [0, i) equals n. LocateRank(v, 0) is always 0. It fails with ErrRange
// when n is negative, larger than v.Len(), or exceeds the vector's total
// population count.
func LocateRank(v Vector, n int) (int, error) {
	if err := validate(v); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: non-negative count expected, got %d", ErrRange, n)
	}
	if n > v.Len() {
		return 0, fmt.Errorf("%w: count %d larger than bit-vector length %d", ErrRange, n, v.Len())
	}

	i, ok := locateRank(v, n)
	if !ok {
		return 0, fmt.Errorf("%w: count %d exceeds total population", ErrRange, n)
	}
	return i, nil
}

// locateRank scans coarse-to-fine: whole 8192-bit blocks, then whole bytes,
// then single bits. A tier never commits a span whose inclusion would reach
// n; it falls through to the next finer tier at that span's first bit, so
// the returned prefix length is always the smallest one. ok is false when n
// exceeds the total population count.
func locateRank(v Vector, n int) (int, bool) {
	if n == 0 {
		return 0, true
	}

	var (
		buf   = v.Bytes()
		nbits = v.Len()
		i     int // candidate prefix length, multiple of 8 until the bit tier
		j     int // population count of bits [0, i)
	)

	for i+blockBits < nbits {
		m := 0
		for k, stop := i/8, i/8+blockBits/8; k < stop; k++ {
			m += int(popcount[buf[k]])
		}
		if j+m >= n {
			break
		}
		j += m
		i += blockBits
	}

	for i+8 < nbits {
		m := int(popcount[buf[i/8]])
		if j+m >= n {
			break
		}
		j += m
		i += 8
	}

	for j < n && i < nbits {
		if getBit(v, i) {
			j++
		}
		i++
	}

	if j < n {
		return 0, false
	}
	return i, true
}
