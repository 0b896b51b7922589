package rdgen

import (
	"io"

	"github.com/gordian-engine/rdgen/rdhash"
)

// seedReadSize is the chunk size used when reading a seed source.
const seedReadSize = 4096

// SeedDigest reads r until EOF, in fixed-size chunks,
// and returns the digest of everything read according to h.
//
// The source is never held in memory all at once.
// If any read fails, SeedDigest returns a [DataStreamError].
func SeedDigest(h rdhash.Hasher, r io.Reader) ([rdhash.Size]byte, error) {
	var out [rdhash.Size]byte

	hh := rdhash.MustNew(h)
	buf := make([]byte, seedReadSize)

	// Writes to a hash.Hash never fail,
	// so any error here came from reading r.
	if _, err := io.CopyBuffer(hh, r, buf); err != nil {
		return out, DataStreamError{Err: err}
	}

	hh.Sum(out[:0])
	return out, nil
}

// SeedDigestBytes returns the digest of seed according to h.
// It is equivalent to calling [SeedDigest] with a reader over seed,
// but it cannot fail.
func SeedDigestBytes(h rdhash.Hasher, seed []byte) [rdhash.Size]byte {
	var out [rdhash.Size]byte

	hh := rdhash.MustNew(h)
	_, _ = hh.Write(seed)
	hh.Sum(out[:0])

	return out
}
