// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only. It provides
// a seeded generator for random bit-vectors and naive linear-scan reference
// implementations (prefix counting, rank lookup, reverse search,
// combine-then-count) used as ground truth by property tests.
package testutil
