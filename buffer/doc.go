// Package buffer provides a minimal in-memory bit-vector backing the bitvec
// engine.
//
// Vector owns a fixed-size packed byte buffer with a bit endianness chosen
// at construction. It is the concrete implementation registered with the
// engine's argument validation; it deliberately has no resizing, growth, or
// slicing surface.
package buffer
