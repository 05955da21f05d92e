package bitvec

import "fmt"

// Op is a boolean operator applied byte-wise by the pairwise reducer.
type Op int

const (
	OpAnd Op = iota
	OpOr
	OpXor
)

func (op Op) String() string {
	switch op {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	default:
		return fmt.Sprintf("Unknown(%d)", int(op))
	}
}

// Count returns the population count of the byte-wise combination of a and b
// under op, without materializing an intermediate vector. The operands must
// have equal length and endianness; both have their tail padding cleared
// before the scan.
func Count(op Op, a, b Vector) (int, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}

	SanitizeTail(a)
	SanitizeTail(b)

	var (
		ab, bb = a.Bytes(), b.Bytes()
		nbytes = BytesFor(a.Len())
		total  int
	)

	switch op {
	case OpAnd:
		for i := 0; i < nbytes; i++ {
			total += int(popcount[ab[i]&bb[i]])
		}
	case OpOr:
		for i := 0; i < nbytes; i++ {
			total += int(popcount[ab[i]|bb[i]])
		}
	case OpXor:
		for i := 0; i < nbytes; i++ {
			total += int(popcount[ab[i]^bb[i]])
		}
	default:
		return 0, fmt.Errorf("%w: unknown operator %s", ErrRange, op)
	}

	return total, nil
}

// CountAnd returns the number of positions set in both a and b.
func CountAnd(a, b Vector) (int, error) {
	return Count(OpAnd, a, b)
}

// CountOr returns the number of positions set in a or b.
func CountOr(a, b Vector) (int, error) {
	return Count(OpOr, a, b)
}

// CountXor returns the number of positions set in exactly one of a and b.
func CountXor(a, b Vector) (int, error) {
	return Count(OpXor, a, b)
}

// Subset reports whether every set bit of a is also set in b. It is
// equivalent to CountAnd(a, b) == population(a), but stops at the first
// byte that violates the predicate.
func Subset(a, b Vector) (bool, error) {
	if err := validatePair(a, b); err != nil {
		return false, err
	}

	SanitizeTail(a)
	SanitizeTail(b)

	ab, bb := a.Bytes(), b.Bytes()
	for i, n := 0, BytesFor(a.Len()); i < n; i++ {
		if ab[i]&bb[i] != ab[i] {
			return false, nil
		}
	}
	return true, nil
}
