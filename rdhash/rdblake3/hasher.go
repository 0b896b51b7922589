// Package rdblake3 provides an [rdhash.Hasher] backed by BLAKE3.
//
// BLAKE3 natively produces 32-byte digests,
// so this package reads the first 64 bytes of the extendable output instead.
// The result matches [blake3.Sum512].
package rdblake3

import (
	"hash"

	"github.com/zeebo/blake3"
)

const HashSize = 64

// Hasher is a [rdhash.Hasher] backed by BLAKE3 with 64-byte output.
type Hasher struct{}

func (Hasher) New() hash.Hash {
	return &digest{h: blake3.New()}
}

// digest adapts a *blake3.Hasher to a 64-byte [hash.Hash].
type digest struct {
	h *blake3.Hasher
}

func (d *digest) Write(p []byte) (int, error) {
	return d.h.Write(p)
}

// Sum appends the first HashSize bytes of the extendable output to b.
// Like every hash.Hash, it does not change the underlying state.
func (d *digest) Sum(b []byte) []byte {
	var out [HashSize]byte
	_, _ = d.h.Digest().Read(out[:])
	return append(b, out[:]...)
}

func (d *digest) Reset() {
	d.h.Reset()
}

func (d *digest) Size() int {
	return HashSize
}

func (d *digest) BlockSize() int {
	return d.h.BlockSize()
}
