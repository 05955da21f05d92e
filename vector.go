package bitvec

import (
	"fmt"
	"reflect"
	"sync"
)

// Vector is the read view the engine requires of a packed bit-vector.
//
// Implementations own their storage; the engine never allocates, resizes, or
// retains a vector across calls. Callers must guarantee that Len and
// Endianness are stable for the duration of a call, that the buffer returned
// by Bytes holds at least BytesFor(Len()) bytes, and that no other goroutine
// mutates the buffer while a call is in flight.
type Vector interface {
	// Bytes returns the backing buffer. The engine writes to it only to
	// clear tail padding via SanitizeTail.
	Bytes() []byte
	// Len returns the number of logical bits.
	Len() int
	// Endianness returns the vector's bit endianness.
	Endianness() Endianness
}

var (
	registerMu     sync.Mutex
	registeredType reflect.Type
)

// Register records the concrete Vector implementation the engine validates
// arguments against. It is called once during initialization, typically from
// the implementing package's init function. Registering the same type again
// is a no-op; registering a second, different type is a programming error
// and panics.
func Register(proto Vector) {
	if proto == nil {
		panic("bitvec: Register called with nil Vector")
	}
	t := reflect.TypeOf(proto)

	registerMu.Lock()
	defer registerMu.Unlock()
	if registeredType != nil && registeredType != t {
		panic(fmt.Sprintf("bitvec: Register called twice with different types (%s, then %s)", registeredType, t))
	}
	registeredType = t
}

// validate checks v against the registered implementation type and the
// buffer-size obligation. It runs before any algorithmic work.
func validate(v Vector) error {
	if v == nil {
		return &ErrUnexpectedType{Got: nil}
	}

	registerMu.Lock()
	want := registeredType
	registerMu.Unlock()
	if want != nil && reflect.TypeOf(v) != want {
		return &ErrUnexpectedType{Got: v}
	}

	if v.Len() < 0 {
		return fmt.Errorf("%w: negative length %d", ErrRange, v.Len())
	}
	if len(v.Bytes()) < BytesFor(v.Len()) {
		return fmt.Errorf("%w: buffer holds %d bytes, need %d for %d bits",
			ErrType, len(v.Bytes()), BytesFor(v.Len()), v.Len())
	}

	return nil
}

// validatePair checks both operands of a pairwise reduction: recognized
// vectors of identical length and endianness.
func validatePair(a, b Vector) error {
	if err := validate(a); err != nil {
		return err
	}
	if err := validate(b); err != nil {
		return err
	}
	if a.Len() != b.Len() || a.Endianness() != b.Endianness() {
		return &ErrShapeMismatch{
			ALen:        a.Len(),
			BLen:        b.Len(),
			AEndianness: a.Endianness(),
			BEndianness: b.Endianness(),
		}
	}
	return nil
}
