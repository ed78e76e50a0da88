// Package hash wraps the xxHash64 primitives used for expression hashing.
package hash

import "github.com/cespare/xxhash/v2"

// Digest is a streaming xxHash64 state.
type Digest = xxhash.Digest

// Sum computes the xxHash64 of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// New returns a streaming digest for incremental hashing.
func New() *Digest {
	return xxhash.New()
}
