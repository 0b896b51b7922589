// Package rdblake2b provides an [rdhash.Hasher] backed by BLAKE2b-512.
//
// This is the default hasher for rdgen,
// and the one that published test vectors are computed with.
package rdblake2b

import (
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

const HashSize = blake2b.Size

// Hasher is a [rdhash.Hasher] backed by unkeyed BLAKE2b-512 hashes.
type Hasher struct{}

func (Hasher) New() hash.Hash {
	h, err := blake2b.New512(nil)
	if err != nil {
		// Only possible with an oversized key, and we never pass one.
		panic(fmt.Errorf("BUG: failed to create unkeyed BLAKE2b-512 hash: %w", err))
	}
	return h
}
