package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrType is returned when an argument is not a recognized bit-vector.
	ErrType = errors.New("bit-vector expected")

	// ErrRange is returned when a numeric argument is out of range, or when
	// the requested rank or value does not exist in the vector.
	ErrRange = errors.New("out of range")

	// ErrShape is returned when the operands of a pairwise operation differ
	// in logical length or endianness.
	ErrShape = errors.New("shape mismatch")
)

// ErrUnexpectedType indicates an argument that is not an instance of the
// registered bit-vector implementation.
//
// Unwraps to ErrType.
type ErrUnexpectedType struct {
	Got any
}

func (e *ErrUnexpectedType) Error() string {
	if e.Got == nil {
		return "bit-vector expected, got nil"
	}
	return fmt.Sprintf("bit-vector expected, got %T", e.Got)
}

func (e *ErrUnexpectedType) Unwrap() error { return ErrType }

// ErrShapeMismatch indicates two operands of a pairwise operation that
// differ in logical length or endianness.
//
// Unwraps to ErrShape.
type ErrShapeMismatch struct {
	ALen        int
	BLen        int
	AEndianness Endianness
	BEndianness Endianness
}

func (e *ErrShapeMismatch) Error() string {
	if e.ALen != e.BLen {
		return fmt.Sprintf("bit-vectors of equal length expected, got %d and %d", e.ALen, e.BLen)
	}
	return fmt.Sprintf("bit-vectors of equal endianness expected, got %s and %s", e.AEndianness, e.BEndianness)
}

func (e *ErrShapeMismatch) Unwrap() error { return ErrShape }
