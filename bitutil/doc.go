// Package bitutil provides conversions between packed bit-vectors and other
// representations: hexadecimal strings, arbitrary-precision integers, and
// compressed roaring bitmaps, plus zero-stripping.
//
// All conversions respect the vector's bit endianness and never let tail
// padding leak into a result.
package bitutil
