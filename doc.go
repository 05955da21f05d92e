// Package bitvec provides a computation engine for byte-packed bit-vectors.
//
// The package operates directly on packed bit buffers supplied by the
// caller: it answers rank queries, locates values from the right, and
// reduces pairs of equal-shaped vectors under boolean operators without
// materializing intermediate results. Storage allocation, resizing, and
// serialization of bit-vectors are the caller's concern; the engine only
// requires the obligations stated on the Vector interface.
//
// # Data Model
//
// A bit-vector is a logical sequence of n boolean values backed by a
// contiguous buffer of at least BytesFor(n) bytes, together with a bit
// Endianness fixed for the vector's lifetime:
//
//   - BigEndian: bit 0 of a byte is its most-significant bit
//   - LittleEndian: bit 0 of a byte is its least-significant bit
//
// Bits in storage beyond the logical length ("tail bits") are cleared on
// demand by SanitizeTail before any whole-byte scan, so stale padding never
// participates in a count or comparison.
//
// # Operations
//
// Rank lookup:
//
//	i, err := bitvec.LocateRank(v, n)  // smallest i with v[0:i] holding n set bits
//
// Reverse search:
//
//	i, err := bitvec.FindLast(v, true) // rightmost set bit
//
// Pairwise reductions (no intermediate vector is ever built):
//
//	c, err := bitvec.CountAnd(a, b)
//	c, err := bitvec.CountOr(a, b)
//	c, err := bitvec.CountXor(a, b)
//	ok, err := bitvec.Subset(a, b)     // every set bit of a also set in b
//
// Batch reduction over many pairs, bounded by errgroup:
//
//	counts, err := bitvec.CountBatch(ctx, bitvec.OpAnd, pairs)
//
// # Errors
//
// All validation happens before any algorithmic work. Failures unwrap to one
// of three kinds: ErrType (argument is not a recognized bit-vector), ErrRange
// (numeric argument out of range, or the requested rank/value does not
// exist), and ErrShape (operands differ in length or endianness). Match with
// errors.Is.
//
// # Concurrency
//
// All operations are synchronous and run to completion on the calling
// goroutine. They are pure functions of their input buffers except for the
// tail sanitizer's in-place clearing of padding bits. The engine takes no
// locks; callers must not mutate a vector concurrently with an in-flight
// operation on it.
package bitvec
