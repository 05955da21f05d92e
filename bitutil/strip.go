package bitutil

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/buffer"
)

// StripMode selects which end of a vector Strip trims.
type StripMode int

const (
	StripRight StripMode = iota
	StripLeft
	StripBoth
)

func (m StripMode) String() string {
	switch m {
	case StripRight:
		return "right"
	case StripLeft:
		return "left"
	case StripBoth:
		return "both"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Strip returns a copy of v with zero bits trimmed from the selected ends.
// A vector without set bits strips to an empty vector. The first set bit is
// located through the rank locator, the last one through the reverse finder.
func Strip(v bitvec.Vector, mode StripMode) (*buffer.Vector, error) {
	if mode != StripRight && mode != StripLeft && mode != StripBoth {
		return nil, fmt.Errorf("%w: unknown strip mode %s", bitvec.ErrRange, mode)
	}

	first := 0
	last := v.Len() - 1

	if mode == StripLeft || mode == StripBoth {
		i, err := bitvec.LocateRank(v, 1)
		switch {
		case errors.Is(err, bitvec.ErrRange):
			return buffer.New(0, v.Endianness())
		case err != nil:
			return nil, err
		}
		first = i - 1
	}
	if mode == StripRight || mode == StripBoth {
		i, err := bitvec.FindLast(v, true)
		switch {
		case errors.Is(err, bitvec.ErrRange):
			return buffer.New(0, v.Endianness())
		case err != nil:
			return nil, err
		}
		last = i
	}

	out, err := buffer.New(last-first+1, v.Endianness())
	if err != nil {
		return nil, err
	}
	for i := first; i <= last; i++ {
		b, err := bitvec.Bit(v, i)
		if err != nil {
			return nil, err
		}
		if b {
			if err := out.Set(i-first, true); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
