// Package rdhash defines the hash abstraction behind the rdgen hash chain.
//
// Concrete implementations live in subpackages
// ([github.com/gordian-engine/rdgen/rdhash/rdblake2b] and friends),
// and [github.com/gordian-engine/rdgen/rdhash/rdhashtest]
// holds a compliance suite every implementation should pass.
package rdhash

import (
	"fmt"
	"hash"
)

// Size is the digest width, in bytes, that every Hasher must produce.
// It is also the width of each block emitted by the hash chain.
const Size = 64

// Hasher is the user-defined interface for the hash function
// that digests the seed and advances the chain state.
//
// Each call to New must return an independent, freshly reset hash
// whose Sum appends exactly [Size] bytes.
// The returned hash is owned by the caller and is not shared,
// but New itself must be safe to call concurrently.
type Hasher interface {
	New() hash.Hash
}

// MustNew returns h.New(),
// panicking if the resulting hash does not produce [Size]-byte digests.
func MustNew(h Hasher) hash.Hash {
	hh := h.New()
	if sz := hh.Size(); sz != Size {
		panic(fmt.Errorf(
			"BUG: hasher %T must produce %d-byte digests (got %d)",
			h, Size, sz,
		))
	}
	return hh
}
