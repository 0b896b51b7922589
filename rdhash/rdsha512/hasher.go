package rdsha512

import (
	"crypto/sha512"
	"hash"
)

const HashSize = sha512.Size

// Hasher is a [rdhash.Hasher] backed by SHA-512 hashes.
type Hasher struct{}

func (Hasher) New() hash.Hash {
	return sha512.New()
}
